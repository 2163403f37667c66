package catalogue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nroberts/museums-of-london/backend/internal/catalogue"
	"github.com/nroberts/museums-of-london/backend/internal/domain"
)

func museum(id, name string) domain.Museum {
	return domain.Museum{
		ID:             id,
		Name:           name,
		Transport:      []domain.TransportLink{},
		NearbyEateries: []domain.NearbyEatery{},
	}
}

func newStore(ids ...string) *catalogue.Store {
	museums := make([]domain.Museum, len(ids))
	for i, id := range ids {
		museums[i] = museum(id, "Museum "+id)
	}
	return catalogue.NewStore(museums, nil)
}

func TestStore_Get(t *testing.T) {
	s := newStore("1", "2")

	m, err := s.Get("2")
	require.NoError(t, err)
	assert.Equal(t, "Museum 2", m.Name)
}

func TestStore_Get_NotFound(t *testing.T) {
	s := newStore("1")

	_, err := s.Get("does-not-exist")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_All_InsertionOrder(t *testing.T) {
	s := newStore("3", "1", "2")

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "3", all[0].ID)
	assert.Equal(t, "1", all[1].ID)
	assert.Equal(t, "2", all[2].ID)
}

// All must return a copy: mutating the returned slice must not affect the store.
func TestStore_All_ReturnsCopy(t *testing.T) {
	s := newStore("1", "2")

	all := s.All()
	all[0] = museum("99", "Mutated")

	m, err := s.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "Museum 1", m.Name)
}

func TestStore_Append(t *testing.T) {
	s := newStore("1")

	s.Append(museum("2", "Museum 2"))

	assert.Equal(t, 2, s.Len())
	all := s.All()
	assert.Equal(t, "2", all[1].ID)
}

func TestStore_Replace(t *testing.T) {
	s := newStore("1", "2", "3")

	updated := museum("2", "Renamed")
	require.NoError(t, s.Replace("2", updated))

	all := s.All()
	// Position preserved, fields replaced.
	assert.Equal(t, "Renamed", all[1].Name)
}

func TestStore_Replace_NotFound(t *testing.T) {
	s := newStore("1")

	err := s.Replace("42", museum("42", "Nope"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Remove(t *testing.T) {
	s := newStore("1", "2", "3")

	require.NoError(t, s.Remove("2"))

	assert.Equal(t, 2, s.Len())
	_, err := s.Get("2")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Remaining order unchanged.
	all := s.All()
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "3", all[1].ID)
}

func TestStore_Remove_NotFound(t *testing.T) {
	s := newStore("1")

	assert.ErrorIs(t, s.Remove("42"), domain.ErrNotFound)
}

// ---- NextID ----------------------------------------------------------------

func TestStore_NextID_MaxPlusOne(t *testing.T) {
	s := newStore("1", "2", "21", "3")

	assert.Equal(t, "22", s.NextID())
}

// Non-numeric ids are skipped in the max computation, not an error.
func TestStore_NextID_SkipsNonNumeric(t *testing.T) {
	s := newStore("1", "abc", "5")

	assert.Equal(t, "6", s.NextID())
}

func TestStore_NextID_NoNumericIDs(t *testing.T) {
	s := newStore("abc", "def")

	assert.Equal(t, "1", s.NextID())
}

func TestStore_NextID_Empty(t *testing.T) {
	s := newStore()

	assert.Equal(t, "1", s.NextID())
}

// ---- tours -----------------------------------------------------------------

func TestStore_Tours(t *testing.T) {
	tours := []domain.WalkingTour{
		{ID: "a", Name: "Tour A", MuseumIDs: []string{"1"}},
		{ID: "b", Name: "Tour B", MuseumIDs: []string{"2"}},
	}
	s := catalogue.NewStore(nil, tours)

	got := s.Tours()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)

	tour, err := s.Tour("b")
	require.NoError(t, err)
	assert.Equal(t, "Tour B", tour.Name)

	_, err = s.Tour("c")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
