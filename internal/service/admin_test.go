package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nroberts/museums-of-london/backend/internal/catalogue"
	"github.com/nroberts/museums-of-london/backend/internal/domain"
	"github.com/nroberts/museums-of-london/backend/internal/repo"
	"github.com/nroberts/museums-of-london/backend/internal/service"
)

const testPIN = "1234"

// ---- mock repo -------------------------------------------------------------

// mockMuseumRepo is a hand-written test double for repo.MuseumRepo.
type mockMuseumRepo struct {
	inserted []domain.Museum
	upserted []domain.Museum
	deleted  []string
	err      error
}

func (m *mockMuseumRepo) Insert(_ context.Context, museum domain.Museum) error {
	if m.err != nil {
		return m.err
	}
	m.inserted = append(m.inserted, museum)
	return nil
}
func (m *mockMuseumRepo) Upsert(_ context.Context, museum domain.Museum) error {
	if m.err != nil {
		return m.err
	}
	m.upserted = append(m.upserted, museum)
	return nil
}
func (m *mockMuseumRepo) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

// compile-time check: mockMuseumRepo must satisfy repo.MuseumRepo.
var _ repo.MuseumRepo = (*mockMuseumRepo)(nil)

func newAdmin(store *catalogue.Store, museums repo.MuseumRepo) *service.AdminService {
	return service.NewAdminService(store, museums, service.NewStaticPINAuthorizer(testPIN))
}

func fields(name string) domain.Museum {
	return domain.Museum{Name: name, Category: "Art", Rating: 4.5}
}

// ---- Verify ----------------------------------------------------------------

func TestAdminService_Verify(t *testing.T) {
	svc := newAdmin(testCatalogue(), &mockMuseumRepo{})

	require.NoError(t, svc.Verify(testPIN))
	assert.ErrorIs(t, svc.Verify("0000"), domain.ErrUnauthorized)
	assert.ErrorIs(t, svc.Verify(""), domain.ErrUnauthorized)
}

// ---- Create ----------------------------------------------------------------

func TestAdminService_Create_WrongPIN(t *testing.T) {
	store := testCatalogue()
	museums := &mockMuseumRepo{}
	svc := newAdmin(store, museums)

	_, err := svc.Create(context.Background(), fields("New"), "wrong")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 3, store.Len()) // catalogue unchanged
	assert.Empty(t, museums.inserted)
}

// A catalogue with numeric ids 1..3 yields "4"; the record lands in both the
// mirror collection and the in-memory store.
func TestAdminService_Create_OK(t *testing.T) {
	store := testCatalogue()
	museums := &mockMuseumRepo{}
	svc := newAdmin(store, museums)

	created, err := svc.Create(context.Background(), fields("Postal Museum"), testPIN)

	require.NoError(t, err)
	assert.Equal(t, "4", created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.NotNil(t, created.Transport)
	assert.NotNil(t, created.NearbyEateries)

	assert.Equal(t, 4, store.Len())
	stored, err := store.Get("4")
	require.NoError(t, err)
	assert.Equal(t, "Postal Museum", stored.Name)

	require.Len(t, museums.inserted, 1)
	assert.Equal(t, created, museums.inserted[0])
}

func TestAdminService_Create_SequentialIDs(t *testing.T) {
	store := testCatalogue()
	svc := newAdmin(store, &mockMuseumRepo{})

	first, err := svc.Create(context.Background(), fields("A"), testPIN)
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), fields("B"), testPIN)
	require.NoError(t, err)

	assert.Equal(t, "4", first.ID)
	assert.Equal(t, "5", second.ID)
}

// ---- Update ----------------------------------------------------------------

func TestAdminService_Update_WrongPIN(t *testing.T) {
	svc := newAdmin(testCatalogue(), &mockMuseumRepo{})

	_, err := svc.Update(context.Background(), "1", fields("Renamed"), "wrong")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAdminService_Update_NotFound(t *testing.T) {
	museums := &mockMuseumRepo{}
	svc := newAdmin(testCatalogue(), museums)

	_, err := svc.Update(context.Background(), "999", fields("Renamed"), testPIN)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, museums.upserted)
}

// Update is a full replacement keeping id and creation timestamp.
func TestAdminService_Update_OK(t *testing.T) {
	store := testCatalogue()
	original, err := store.Get("2")
	require.NoError(t, err)

	museums := &mockMuseumRepo{}
	svc := newAdmin(store, museums)

	updated, err := svc.Update(context.Background(), "2", fields("Renamed"), testPIN)

	require.NoError(t, err)
	assert.Equal(t, "2", updated.ID)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)

	stored, err := store.Get("2")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Name)

	require.Len(t, museums.upserted, 1)
	assert.Equal(t, updated, museums.upserted[0])
}

// ---- Delete ----------------------------------------------------------------

func TestAdminService_Delete_WrongPIN(t *testing.T) {
	store := testCatalogue()
	svc := newAdmin(store, &mockMuseumRepo{})

	err := svc.Delete(context.Background(), "1", "wrong")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 3, store.Len())
}

func TestAdminService_Delete_NotFound(t *testing.T) {
	museums := &mockMuseumRepo{}
	svc := newAdmin(testCatalogue(), museums)

	err := svc.Delete(context.Background(), "999", testPIN)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, museums.deleted)
}

func TestAdminService_Delete_OK(t *testing.T) {
	store := testCatalogue()
	museums := &mockMuseumRepo{}
	svc := newAdmin(store, museums)

	require.NoError(t, svc.Delete(context.Background(), "2", testPIN))

	assert.Equal(t, 2, store.Len())
	_, err := store.Get("2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, []string{"2"}, museums.deleted)
}
