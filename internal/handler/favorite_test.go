package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nroberts/museums-of-london/backend/internal/domain"
	"github.com/nroberts/museums-of-london/backend/internal/handler"
	"github.com/nroberts/museums-of-london/backend/internal/service"
)

type mockFavoriteServicer struct {
	add        func(ctx context.Context, museumID string) (service.AddResult, error)
	remove     func(ctx context.Context, museumID string) error
	list       func(ctx context.Context) ([]domain.Museum, error)
	isFavorite func(ctx context.Context, museumID string) (bool, error)
}

func (m *mockFavoriteServicer) Add(ctx context.Context, id string) (service.AddResult, error) {
	return m.add(ctx, id)
}
func (m *mockFavoriteServicer) Remove(ctx context.Context, id string) error { return m.remove(ctx, id) }
func (m *mockFavoriteServicer) List(ctx context.Context) ([]domain.Museum, error) {
	return m.list(ctx)
}
func (m *mockFavoriteServicer) IsFavorite(ctx context.Context, id string) (bool, error) {
	return m.isFavorite(ctx, id)
}

var _ handler.FavoriteServicer = (*mockFavoriteServicer)(nil)

// ---- POST /favorites/{id} ----------------------------------------------------

func TestAddFavorite_200_Added(t *testing.T) {
	svc := &mockFavoriteServicer{
		add: func(_ context.Context, id string) (service.AddResult, error) {
			assert.Equal(t, "3", id)
			return service.AddResult{ID: "fav-1"}, nil
		},
	}
	h := newRouter(nil, svc, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/favorites/3", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Added to favorites", body["message"])
	assert.Equal(t, "fav-1", body["id"])
}

func TestAddFavorite_200_AlreadyExists(t *testing.T) {
	svc := &mockFavoriteServicer{
		add: func(_ context.Context, _ string) (service.AddResult, error) {
			return service.AddResult{ID: "fav-1", AlreadyExists: true}, nil
		},
	}
	h := newRouter(nil, svc, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/favorites/3", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Already in favorites", body["message"])
	assert.Equal(t, "fav-1", body["id"])
}

func TestAddFavorite_404_UnknownMuseum(t *testing.T) {
	svc := &mockFavoriteServicer{
		add: func(_ context.Context, _ string) (service.AddResult, error) {
			return service.AddResult{}, domain.ErrNotFound
		},
	}
	h := newRouter(nil, svc, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/favorites/999", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Museum not found", decodeDetail(t, rec))
}

func TestAddFavorite_500_RepoError(t *testing.T) {
	svc := &mockFavoriteServicer{
		add: func(_ context.Context, _ string) (service.AddResult, error) {
			return service.AddResult{}, errors.New("connection reset")
		},
	}
	h := newRouter(nil, svc, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/favorites/3", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	// The raw error must not leak to the client.
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

// ---- DELETE /favorites/{id} --------------------------------------------------

func TestRemoveFavorite_200(t *testing.T) {
	svc := &mockFavoriteServicer{
		remove: func(_ context.Context, id string) error {
			assert.Equal(t, "3", id)
			return nil
		},
	}
	h := newRouter(nil, svc, nil, nil)

	req := httptest.NewRequest(http.MethodDelete, "/favorites/3", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Removed from favorites", body["message"])
}

func TestRemoveFavorite_404(t *testing.T) {
	svc := &mockFavoriteServicer{
		remove: func(_ context.Context, _ string) error { return domain.ErrNotFound },
	}
	h := newRouter(nil, svc, nil, nil)

	req := httptest.NewRequest(http.MethodDelete, "/favorites/3", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Favorite not found", decodeDetail(t, rec))
}

// ---- GET /favorites ----------------------------------------------------------

func TestListFavorites_200(t *testing.T) {
	svc := &mockFavoriteServicer{
		list: func(_ context.Context) ([]domain.Museum, error) {
			return []domain.Museum{museumFixture("1", "British Museum")}, nil
		},
	}
	h := newRouter(nil, svc, nil, nil)

	rec := doGet(t, h, "/favorites")

	require.Equal(t, http.StatusOK, rec.Code)
	var body []domain.Museum
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "British Museum", body[0].Name)
}

func TestListFavorites_200_Empty(t *testing.T) {
	svc := &mockFavoriteServicer{
		list: func(_ context.Context) ([]domain.Museum, error) { return []domain.Museum{}, nil },
	}
	h := newRouter(nil, svc, nil, nil)

	rec := doGet(t, h, "/favorites")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

// ---- GET /favorites/check/{id} -----------------------------------------------

func TestCheckFavorite_200_True(t *testing.T) {
	svc := &mockFavoriteServicer{
		isFavorite: func(_ context.Context, id string) (bool, error) {
			assert.Equal(t, "3", id)
			return true, nil
		},
	}
	h := newRouter(nil, svc, nil, nil)

	rec := doGet(t, h, "/favorites/check/3")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"is_favorite": true}`, rec.Body.String())
}

func TestCheckFavorite_200_False(t *testing.T) {
	svc := &mockFavoriteServicer{
		isFavorite: func(_ context.Context, _ string) (bool, error) { return false, nil },
	}
	h := newRouter(nil, svc, nil, nil)

	rec := doGet(t, h, "/favorites/check/999")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"is_favorite": false}`, rec.Body.String())
}
