package repository_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"hotel-console/internal/model"
	"hotel-console/internal/repository"
)

func newHotelRepo(t *testing.T) (*repository.HotelRepo, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hotels.json")
	r := repository.NewHotelRepo(path, zerolog.Nop())
	require.NoError(t, r.Load())
	return r, path
}

func TestHotelRepo_RoundTrip(t *testing.T) {
	r, _ := newHotelRepo(t)
	h := model.Hotel{
		ID:            "HTL-0001",
		Name:          "Harbor View",
		Stars:         4,
		Address:       "1 Quay St",
		BaseRateCents: 12900,
		ManagerUserID: "USR-7",
	}
	require.NoError(t, r.Upsert(h))
	require.NoError(t, r.SaveAll())

	require.NoError(t, r.Load())
	got, ok := r.Get("HTL-0001")
	require.True(t, ok)
	require.Equal(t, h, got)
}

func TestHotelRepo_StarsDefaultAndClamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotels.json")
	raw := `[{"id":"H1","name":"No Stars"},{"id":"H2","stars":9},{"id":"H3","stars":0}]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	r := repository.NewHotelRepo(path, zerolog.Nop())
	require.NoError(t, r.Load())

	h1, _ := r.Get("H1")
	require.Equal(t, 3, h1.Stars)
	h2, _ := r.Get("H2")
	require.Equal(t, 5, h2.Stars)
	h3, _ := r.Get("H3")
	require.Equal(t, 1, h3.Stars)
}

func TestHotelRepo_RejectsEmptyID(t *testing.T) {
	r, _ := newHotelRepo(t)
	require.ErrorIs(t, r.Upsert(model.Hotel{Name: "Nameless"}), repository.ErrMissingID)
}

func TestHotelRepo_ListManagedBy(t *testing.T) {
	r, _ := newHotelRepo(t)
	require.NoError(t, r.Upsert(model.Hotel{ID: "H1", ManagerUserID: "U1"}))
	require.NoError(t, r.Upsert(model.Hotel{ID: "H2", ManagerUserID: "U2"}))
	require.NoError(t, r.Upsert(model.Hotel{ID: "H3", ManagerUserID: "U1"}))

	managed := r.ListManagedBy("U1")
	require.Len(t, managed, 2)
	require.Equal(t, "H1", managed[0].ID)
	require.Equal(t, "H3", managed[1].ID)
	require.Empty(t, r.ListManagedBy("U9"))
}
