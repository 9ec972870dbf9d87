package repository_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hotel-console/internal/model"
	"hotel-console/internal/repository"
	"hotel-console/internal/utils"
)

func newUserRepo(t *testing.T) (*repository.UserRepo, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	r := repository.NewUserRepo(path, bcrypt.MinCost, zerolog.Nop())
	require.NoError(t, r.Load())
	return r, path
}

func TestUserRepo_RoundTripPreservesFields(t *testing.T) {
	r, _ := newUserRepo(t)
	u := model.User{
		UserID:       "USR-1",
		FirstName:    "Ada",
		LastName:     "Quinn",
		Address:      "12 Pier Rd",
		Phone:        "555-0101",
		Login:        "ada",
		PasswordHash: "$2a$04$fakehashfakehashfakehash",
		Role:         model.RoleAdmin,
		Active:       true,
	}
	require.NoError(t, r.Upsert(u))
	require.NoError(t, r.SaveAll())

	require.NoError(t, r.Load())
	got, ok := r.GetByID("USR-1")
	require.True(t, ok)
	require.Equal(t, u, got)
}

func TestUserRepo_SaveNeverWritesCleartextPasswords(t *testing.T) {
	r, path := newUserRepo(t)
	u := model.User{
		UserID:       "USR-1",
		Login:        "ada",
		Password:     "should-not-persist",
		PasswordHash: "$2a$04$fakehashfakehashfakehash",
		Role:         model.RoleGuest,
		Active:       true,
	}
	require.NoError(t, r.Upsert(u))
	require.NoError(t, r.SaveAll())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), `"password"`)
	require.NotContains(t, string(data), "should-not-persist")
	require.Contains(t, string(data), `"passwordHash"`)
}

func TestUserRepo_MigratesLegacyCleartextPassword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	legacy := `[{"userId":"USR-9","login":"olduser","password":"s3cret","role":"GUEST"}]`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	r := repository.NewUserRepo(path, bcrypt.MinCost, zerolog.Nop())
	require.NoError(t, r.Load())

	u, ok := r.GetByLogin("olduser")
	require.True(t, ok)
	require.Empty(t, u.Password)
	require.NotEmpty(t, u.PasswordHash)
	require.True(t, utils.VerifyPassword(u.PasswordHash, "s3cret"))

	require.NoError(t, r.SaveAll())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "s3cret")
	require.Contains(t, string(data), `"passwordHash"`)
}

func TestUserRepo_RejectsEmptyUserID(t *testing.T) {
	r, _ := newUserRepo(t)

	err := r.Upsert(model.User{Login: "nobody"})
	require.ErrorIs(t, err, repository.ErrMissingID)
}

func TestUserRepo_RejectsLoginHeldByAnotherUser(t *testing.T) {
	r, _ := newUserRepo(t)
	require.NoError(t, r.Upsert(model.User{UserID: "U1", Login: "ada"}))
	require.NoError(t, r.Upsert(model.User{UserID: "U2", Login: "grace"}))

	err := r.Upsert(model.User{UserID: "U2", Login: "ada"})
	require.ErrorIs(t, err, repository.ErrLoginTaken)

	// The collection is unchanged by the rejected upsert.
	u2, ok := r.GetByID("U2")
	require.True(t, ok)
	require.Equal(t, "grace", u2.Login)
}

func TestUserRepo_AllowsRekeyingOwnLogin(t *testing.T) {
	r, _ := newUserRepo(t)
	require.NoError(t, r.Upsert(model.User{UserID: "U1", Login: "ada"}))

	require.NoError(t, r.Upsert(model.User{UserID: "U1", Login: "ada.quinn"}))

	u, ok := r.GetByID("U1")
	require.True(t, ok)
	require.Equal(t, "ada.quinn", u.Login)
}

func TestUserRepo_RemoveByIDAndLogin(t *testing.T) {
	r, _ := newUserRepo(t)
	require.NoError(t, r.Upsert(model.User{UserID: "U1", Login: "ada"}))
	require.NoError(t, r.Upsert(model.User{UserID: "U2", Login: "grace"}))

	require.True(t, r.RemoveByID("U1"))
	require.False(t, r.RemoveByID("U1"))
	require.True(t, r.RemoveByLogin("grace"))
	require.False(t, r.RemoveByLogin("grace"))
	require.Empty(t, r.List())
}

func TestUserRepo_DecodeDefaultsRoleAndActive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	raw := `[{"userId":"U1","login":"ada","role":"WIZARD"},{"userId":"U2","login":"bob","active":false}]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	r := repository.NewUserRepo(path, bcrypt.MinCost, zerolog.Nop())
	require.NoError(t, r.Load())

	u1, ok := r.GetByID("U1")
	require.True(t, ok)
	require.Equal(t, model.RoleGuest, u1.Role)
	require.True(t, u1.Active)

	u2, ok := r.GetByID("U2")
	require.True(t, ok)
	require.False(t, u2.Active)
}

func TestUserRepo_SkipsRecordsWithoutUserID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	raw := `[{"login":"ghost"},{"userId":"U1","login":"ada"}]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	r := repository.NewUserRepo(path, bcrypt.MinCost, zerolog.Nop())
	require.NoError(t, r.Load())
	require.Len(t, r.List(), 1)
}

func TestUserRepo_ListByRole(t *testing.T) {
	r, _ := newUserRepo(t)
	require.NoError(t, r.Upsert(model.User{UserID: "U1", Login: "a", Role: model.RoleAdmin}))
	require.NoError(t, r.Upsert(model.User{UserID: "U2", Login: "b", Role: model.RoleGuest}))
	require.NoError(t, r.Upsert(model.User{UserID: "U3", Login: "c", Role: model.RoleAdmin}))

	admins := r.ListByRole(model.RoleAdmin)
	require.Len(t, admins, 2)
	require.Equal(t, "U1", admins[0].UserID)
	require.Equal(t, "U3", admins[1].UserID)
}
