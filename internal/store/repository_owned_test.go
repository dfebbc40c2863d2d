package store

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-api-hub/internal/config"
	"github.com/MKhiriev/go-api-hub/internal/logger"
	"github.com/MKhiriev/go-api-hub/models"
)

type ownedFixture struct {
	storages *Storages
	alice    int64
	bob      int64
}

func newOwnedFixture(t *testing.T) *ownedFixture {
	t.Helper()

	db := newSQLiteStore(t)
	s := NewStorages(db, config.App{DefaultPageSize: 2, MaxPageSize: 3}, logger.Nop())

	ctx := context.Background()
	alice, err := s.UserRepository.CreateUser(ctx, models.User{Email: "alice@example.com", PasswordHash: "x"})
	require.NoError(t, err)
	bob, err := s.UserRepository.CreateUser(ctx, models.User{Email: "bob@example.com", PasswordHash: "x"})
	require.NoError(t, err)

	return &ownedFixture{storages: s, alice: alice.UserID, bob: bob.UserID}
}

func (f *ownedFixture) todo(t *testing.T, owner int64, title string, public, completed bool) models.Todo {
	t.Helper()

	item := models.Todo{Title: title, Completed: completed}
	item.IsPublic = public
	created, err := f.storages.TodoRepository.Create(context.Background(), item, &owner)
	require.NoError(t, err)
	return created
}

func titles(items []models.Todo) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Title)
	}
	return out
}

func TestOwnedRepository_CreatePresentsOwner(t *testing.T) {
	f := newOwnedFixture(t)

	created := f.todo(t, f.alice, "write report", false, false)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "1", created.Owner)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestOwnedRepository_FindAppliesVisibility(t *testing.T) {
	f := newOwnedFixture(t)
	repo := f.storages.TodoRepository
	ctx := context.Background()

	f.todo(t, f.alice, "alice public", true, false)
	f.todo(t, f.alice, "alice private", false, false)
	f.todo(t, f.bob, "bob private", false, false)

	guest, err := repo.Find(ctx, FindOptions{CallerID: models.Guest, Sort: "title"})
	require.NoError(t, err)
	assert.Equal(t, []string{"alice public"}, titles(guest))
	assert.Equal(t, models.AnonymousOwner, guest[0].Owner)

	bob, err := repo.Find(ctx, FindOptions{CallerID: f.bob, Sort: "title"})
	require.NoError(t, err)
	assert.Equal(t, []string{"alice public", "bob private"}, titles(bob))
	assert.Equal(t, models.AnonymousOwner, bob[0].Owner)
	assert.Equal(t, "2", bob[1].Owner)

	alice, err := repo.Find(ctx, FindOptions{CallerID: f.alice, Sort: "-title"})
	require.NoError(t, err)
	assert.Equal(t, []string{"alice public", "alice private"}, titles(alice))

	all, err := repo.Find(ctx, FindOptions{IncludePrivate: true})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	n, err := repo.Count(ctx, FindOptions{CallerID: f.bob})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestOwnedRepository_FindFiltersAndRejectsUnknownFields(t *testing.T) {
	f := newOwnedFixture(t)
	repo := f.storages.TodoRepository
	ctx := context.Background()

	f.todo(t, f.alice, "done", false, true)
	f.todo(t, f.alice, "open", false, false)

	done, err := repo.Find(ctx, FindOptions{CallerID: f.alice, Filter: map[string]any{"completed": "true"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"done"}, titles(done))

	_, err = repo.Find(ctx, FindOptions{CallerID: f.alice, Filter: map[string]any{"owner_id": 1}})
	assert.ErrorIs(t, err, ErrInvalidField)

	_, err = repo.Find(ctx, FindOptions{CallerID: f.alice, Filter: map[string]any{"completed": "maybe"}})
	assert.ErrorIs(t, err, ErrInvalidField)

	_, err = repo.Find(ctx, FindOptions{CallerID: f.alice, Sort: "-passwordHash"})
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestOwnedRepository_FindByID(t *testing.T) {
	f := newOwnedFixture(t)
	repo := f.storages.TodoRepository
	ctx := context.Background()

	public := f.todo(t, f.alice, "public", true, false)
	private := f.todo(t, f.alice, "private", false, false)

	got, err := repo.FindByID(ctx, public.ID, AccessOptions{CallerID: models.Guest})
	require.NoError(t, err)
	assert.Equal(t, models.AnonymousOwner, got.Owner)

	_, err = repo.FindByID(ctx, private.ID, AccessOptions{CallerID: f.bob})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = repo.FindByID(ctx, private.ID, AccessOptions{CallerID: models.Guest})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = repo.FindByID(ctx, public.ID, AccessOptions{CallerID: f.bob, RequireOwnership: true})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	got, err = repo.FindByID(ctx, private.ID, AccessOptions{CallerID: f.alice, RequireOwnership: true})
	require.NoError(t, err)
	assert.Equal(t, "private", got.Title)

	_, err = repo.FindByID(ctx, 9999, AccessOptions{CallerID: f.alice})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOwnedRepository_UpdateOwnershipWins(t *testing.T) {
	f := newOwnedFixture(t)
	repo := f.storages.TodoRepository
	ctx := context.Background()

	public := f.todo(t, f.alice, "public", true, false)

	_, err := repo.Update(ctx, public.ID, map[string]any{"title": "x"}, models.Guest)
	assert.ErrorIs(t, err, ErrAuthenticationRequired)

	_, err = repo.Update(ctx, public.ID, map[string]any{"title": "x"}, f.bob)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = repo.Update(ctx, 9999, map[string]any{"title": "x"}, f.alice)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Update(ctx, public.ID, map[string]any{"completed": "nope"}, f.alice)
	assert.ErrorIs(t, err, ErrInvalidField)

	updated, err := repo.Update(ctx, public.ID, map[string]any{
		"title":     "renamed",
		"completed": true,
		"isPublic":  false,
		"ownerId":   f.bob,
		"id":        int64(42),
	}, f.alice)
	require.NoError(t, err)
	assert.Equal(t, public.ID, updated.ID)
	assert.Equal(t, "renamed", updated.Title)
	assert.True(t, updated.Completed)
	assert.False(t, updated.IsPublic)
	assert.Equal(t, "1", updated.Owner)
	assert.False(t, updated.UpdatedAt.Before(public.UpdatedAt))

	// no longer visible to bob
	_, err = repo.FindByID(ctx, public.ID, AccessOptions{CallerID: f.bob})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestOwnedRepository_Delete(t *testing.T) {
	f := newOwnedFixture(t)
	repo := f.storages.TodoRepository
	ctx := context.Background()

	item := f.todo(t, f.alice, "doomed", true, false)

	assert.ErrorIs(t, repo.Delete(ctx, item.ID, models.Guest), ErrAuthenticationRequired)
	assert.ErrorIs(t, repo.Delete(ctx, item.ID, f.bob), ErrPermissionDenied)
	require.NoError(t, repo.Delete(ctx, item.ID, f.alice))
	assert.ErrorIs(t, repo.Delete(ctx, item.ID, f.alice), ErrNotFound)

	_, err := repo.FindByID(ctx, item.ID, AccessOptions{CallerID: f.alice})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOwnedRepository_Paginate(t *testing.T) {
	f := newOwnedFixture(t)
	repo := f.storages.TodoRepository
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c", "d", "e"} {
		f.todo(t, f.alice, title, false, false)
	}

	page, err := repo.Paginate(ctx, PageOptions{FindOptions: FindOptions{CallerID: f.alice, Sort: "title"}})
	require.NoError(t, err)
	assert.EqualValues(t, 5, page.Total)
	assert.Equal(t, 2, page.PageSize)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, []string{"a", "b"}, titles(page.Items))
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrev)

	page, err = repo.Paginate(ctx, PageOptions{FindOptions: FindOptions{CallerID: f.alice, Sort: "title"}, Page: 2, PageSize: 50})
	require.NoError(t, err)
	assert.Equal(t, 3, page.PageSize)
	assert.Equal(t, []string{"d", "e"}, titles(page.Items))
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrev)

	page, err = repo.Paginate(ctx, PageOptions{FindOptions: FindOptions{CallerID: f.bob}})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)

	_, err = repo.Paginate(ctx, PageOptions{FindOptions: FindOptions{CallerID: f.alice}, Page: math.MaxInt/2 + 1})
	assert.ErrorIs(t, err, ErrPageOutOfRange)
	_, err = repo.Search(ctx, "a", PageOptions{FindOptions: FindOptions{CallerID: f.alice}, Page: math.MaxInt, PageSize: 3})
	assert.ErrorIs(t, err, ErrPageOutOfRange)
}

func TestOwnedRepository_Search(t *testing.T) {
	f := newOwnedFixture(t)
	ctx := context.Background()
	notes := f.storages.NoteRepository

	for _, n := range []models.Note{
		{Title: "Groceries", Content: "milk and EGGS"},
		{Title: "Work", Content: "ship the release"},
	} {
		n.IsPublic = true
		_, err := notes.Create(ctx, n, &f.alice)
		require.NoError(t, err)
	}
	hidden := models.Note{Title: "eggs secret", Content: "private"}
	_, err := notes.Create(ctx, hidden, &f.alice)
	require.NoError(t, err)

	page, err := notes.Search(ctx, "eggs", PageOptions{FindOptions: FindOptions{CallerID: f.bob}})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Groceries", page.Items[0].Title)

	page, err = notes.Search(ctx, "EGGS", PageOptions{FindOptions: FindOptions{CallerID: f.alice}})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)

	page, err = notes.Search(ctx, "  ", PageOptions{FindOptions: FindOptions{CallerID: models.Guest}})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
}

func TestOwnedRepository_SearchWildcardsAreLiteral(t *testing.T) {
	f := newOwnedFixture(t)
	ctx := context.Background()
	notes := f.storages.NoteRepository

	for _, n := range []models.Note{
		{Title: "Discount", Content: "50% off"},
		{Title: "Snake", Content: "snake_case names"},
		{Title: "Plain", Content: "nothing special"},
		{Title: "Path", Content: `C:\temp`},
	} {
		n.IsPublic = true
		_, err := notes.Create(ctx, n, &f.alice)
		require.NoError(t, err)
	}

	tests := []struct {
		term string
		want []string
	}{
		{"%", []string{"Discount"}},
		{"_", []string{"Snake"}},
		{"0%", []string{"Discount"}},
		{`\`, []string{"Path"}},
		{"e_c", []string{"Snake"}},
		{"x%y", nil},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			page, err := notes.Search(ctx, tt.term, PageOptions{FindOptions: FindOptions{CallerID: models.Guest, Sort: "title"}, PageSize: 3})
			require.NoError(t, err)

			var got []string
			for _, item := range page.Items {
				got = append(got, item.Title)
			}
			assert.Equal(t, tt.want, got)
			assert.EqualValues(t, len(tt.want), page.Total)
		})
	}
}

func TestOwnedRepository_BulkUpdateIsOwnerScoped(t *testing.T) {
	f := newOwnedFixture(t)
	repo := f.storages.TodoRepository
	ctx := context.Background()

	a1 := f.todo(t, f.alice, "a1", true, false)
	a2 := f.todo(t, f.alice, "a2", false, false)
	b1 := f.todo(t, f.bob, "b1", true, false)

	_, err := repo.BulkUpdate(ctx, []int64{a1.ID}, map[string]any{"completed": true}, models.Guest)
	assert.ErrorIs(t, err, ErrAuthenticationRequired)

	n, err := repo.BulkUpdate(ctx, []int64{a1.ID, a2.ID, b1.ID}, map[string]any{"completed": true}, f.alice)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	b, err := repo.FindByID(ctx, b1.ID, AccessOptions{CallerID: f.bob})
	require.NoError(t, err)
	assert.False(t, b.Completed)

	n, err = repo.BulkUpdate(ctx, nil, map[string]any{"completed": true}, f.alice)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOwnedRepository_Aggregate(t *testing.T) {
	f := newOwnedFixture(t)
	repo := f.storages.TodoRepository
	ctx := context.Background()

	f.todo(t, f.alice, "a", false, true)
	f.todo(t, f.alice, "b", false, true)
	f.todo(t, f.alice, "c", false, false)
	f.todo(t, f.bob, "d", false, true)

	groups, err := repo.Aggregate(ctx, "completed", FindOptions{CallerID: f.alice})
	require.NoError(t, err)
	assert.Equal(t, []models.GroupCount{
		{Value: "false", Count: 1},
		{Value: "true", Count: 2},
	}, groups)

	_, err = repo.Aggregate(ctx, "title", FindOptions{CallerID: f.alice})
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestOwnedRepository_URLs(t *testing.T) {
	f := newOwnedFixture(t)
	repo := f.storages.URLRepository
	ctx := context.Background()

	anon := models.URL{ShortCode: "abc1234", OriginalURL: "https://example.com"}
	anon.IsPublic = true
	created, err := repo.Create(ctx, anon, nil)
	require.NoError(t, err)
	assert.Equal(t, models.AnonymousOwner, created.Owner)

	_, err = repo.Create(ctx, anon, &f.alice)
	assert.ErrorIs(t, err, ErrConflict)

	// anonymous resources cannot be mutated by anybody
	_, err = repo.Update(ctx, created.ID, map[string]any{"originalUrl": "https://evil.example"}, f.alice)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	require.NoError(t, repo.Increment(ctx, created.ID, "clicks", 1))
	require.NoError(t, repo.Increment(ctx, created.ID, "clicks", 1))

	got, err := repo.FindOneBy(ctx, "shortCode", "abc1234", AccessOptions{CallerID: models.Guest})
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.Clicks)

	_, err = repo.FindOneBy(ctx, "shortCode", "zzzzzzz", AccessOptions{CallerID: models.Guest})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Increment(ctx, created.ID, "originalUrl", 1), ErrInvalidField)
	assert.ErrorIs(t, repo.Increment(ctx, 9999, "clicks", 1), ErrNotFound)

	// clicks are not in the mutable allow-list
	owned := models.URL{ShortCode: "own0001", OriginalURL: "https://example.org"}
	mine, err := repo.Create(ctx, owned, &f.alice)
	require.NoError(t, err)
	updated, err := repo.Update(ctx, mine.ID, map[string]any{"clicks": 1000, "shortCode": "hijack1"}, f.alice)
	require.NoError(t, err)
	assert.Zero(t, updated.Clicks)
	assert.Equal(t, "own0001", updated.ShortCode)
}
