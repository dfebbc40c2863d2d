package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-api-hub/internal/config"
	"github.com/MKhiriev/go-api-hub/internal/logger"
	"github.com/MKhiriev/go-api-hub/internal/store"
	"github.com/MKhiriev/go-api-hub/internal/utils"
	"github.com/MKhiriev/go-api-hub/internal/validators"
	"github.com/MKhiriev/go-api-hub/models"
)

const (
	signupTokenDescription = "signup"
	loginTokenDescription  = "login"

	// unknownEmailPassword is hashed once so that a login for an unknown
	// email spends the same bcrypt work as a wrong password.
	unknownEmailPassword = "api-hub-unknown-email"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and profile
// changes, delegating token issuance to a TokenService.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenService issues the token returned by signup and login.
	tokenService TokenService

	// validator checks signup, login and profile input.
	validator validators.Validator

	// bcryptCost is the work factor of password hashes.
	bcryptCost int

	// unknownEmailHash is compared against on the unknown email path.
	unknownEmailHash func() string

	// checkPassword compares a stored digest with a login password.
	checkPassword func(hash, password string) (bool, error)

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and TokenService and populated with password policy from cfg.
func NewAuthService(userRepository store.UserRepository, tokenService TokenService, cfg config.App, logger *logger.Logger) AuthService {
	unknownEmailHash := sync.OnceValue(func() string {
		hash, err := utils.HashPassword(unknownEmailPassword, cfg.BcryptCost)
		if err != nil {
			logger.Err(err).Str("func", "NewAuthService").Msg("error hashing unknown email password")
		}
		return hash
	})

	return &authService{
		userRepository:   userRepository,
		tokenService:     tokenService,
		validator:        validators.NewUserValidator(cfg.PasswordMinLength),
		bcryptCost:       cfg.BcryptCost,
		unknownEmailHash: unknownEmailHash,
		checkPassword:    utils.CheckPassword,
		logger:           logger,
	}
}

// Signup creates a new account and issues its first token.
//
// Returns the persisted user and the token or:
//   - ErrValidation if email, password or name are malformed.
//   - ErrEmailTaken if the email is already registered.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.User, models.IssuedToken, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.IssuedToken{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	hash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("error hashing password")
		return models.User{}, models.IssuedToken{}, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.User{}, models.IssuedToken{}, ErrEmailTaken
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("user creation ended with error")
		return models.User{}, models.IssuedToken{}, fromStore(err)
	}

	token, err := a.tokenService.Issue(ctx, user, signupTokenDescription)
	if err != nil {
		return models.User{}, models.IssuedToken{}, err
	}

	return user, token, nil
}

// Login checks the credentials and issues a new token. An unknown email and
// a wrong password are indistinguishable to the caller.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.IssuedToken, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.IssuedToken{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		_, _ = a.checkPassword(a.unknownEmailHash(), req.Password)
		log.Debug().Str("func", "*authService.Login").Msg("unknown email")
		return models.User{}, models.IssuedToken{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, models.IssuedToken{}, fromStore(err)
	}

	ok, err := a.checkPassword(user.PasswordHash, req.Password)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Str("func", "*authService.Login").Msg("error comparing password hash")
		return models.User{}, models.IssuedToken{}, ErrInvalidCredentials
	}
	if !ok {
		log.Debug().Int64("user_id", user.UserID).Str("func", "*authService.Login").Msg("wrong password")
		return models.User{}, models.IssuedToken{}, ErrInvalidCredentials
	}

	description := req.Description
	if description == "" {
		description = loginTokenDescription
	}

	token, err := a.tokenService.Issue(ctx, user, description)
	if err != nil {
		return models.User{}, models.IssuedToken{}, err
	}

	return user, token, nil
}

func (a *authService) Profile(ctx context.Context, caller models.Caller) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, caller.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fromStore(err)
	}

	return user, nil
}

// UpdateProfile replaces the name and/or password of the caller. Issued
// tokens stay valid after a password change; callers that want otherwise
// revoke them explicitly.
func (a *authService) UpdateProfile(ctx context.Context, caller models.Caller, req models.ProfileUpdateRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user, err := a.Profile(ctx, caller)
	if err != nil {
		return models.User{}, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		if user.PasswordHash, err = utils.HashPassword(*req.Password, a.bcryptCost); err != nil {
			log.Err(err).Str("func", "*authService.UpdateProfile").Msg("error hashing password")
			return models.User{}, fmt.Errorf("error hashing password: %w", err)
		}
	}

	updated, err := a.userRepository.UpdateUser(ctx, user)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.UpdateProfile").Msg("profile update failed")
		return models.User{}, fromStore(err)
	}

	return updated, nil
}
