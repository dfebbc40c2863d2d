package service

import (
	"github.com/MKhiriev/go-api-hub/internal/config"
	"github.com/MKhiriev/go-api-hub/internal/events"
	"github.com/MKhiriev/go-api-hub/internal/logger"
	"github.com/MKhiriev/go-api-hub/internal/store"
	"github.com/MKhiriev/go-api-hub/models"
)

type Services struct {
	TokenService   TokenService
	AuthService    AuthService
	TodoService    TodoService
	NoteService    NoteService
	URLService     URLService
	AppInfoService AppInfoService
}

// NewServices builds every service on top of storages. recorder may be nil,
// in which case last-used stamps are written inline during validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, publisher events.Publisher, recorder LastUsedRecorder, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	tokenService := NewTokenService(storages.TokenRepository, storages.UserRepository, publisher, recorder, cfg.App, logger)

	return &Services{
		TokenService:   tokenService,
		AuthService:    NewAuthService(storages.UserRepository, tokenService, cfg.App, logger),
		TodoService:    NewTodoValidationService().Wrap(NewTodoService(storages.TodoRepository, logger)),
		NoteService:    NewNoteValidationService().Wrap(NewNoteService(storages.NoteRepository, logger)),
		URLService:     NewURLValidationService().Wrap(NewURLService(storages.URLRepository, logger)),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
