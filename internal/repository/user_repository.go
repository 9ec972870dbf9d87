package repository

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"hotel-console/internal/model"
	"hotel-console/internal/utils"
)

// UserRepo persists the users collection.  On top of the generic
// store it enforces login uniqueness across distinct user ids and
// migrates legacy records that still carry a cleartext password.
type UserRepo struct {
	store      *Store[model.User]
	bcryptCost int
}

// NewUserRepo builds a repository over path.  cost is the bcrypt
// cost used when hashing legacy cleartext passwords found on disk.
func NewUserRepo(path string, cost int, logger zerolog.Logger) *UserRepo {
	r := &UserRepo{bcryptCost: cost}
	r.store = NewStore(Config[model.User]{
		Path:   path,
		Key:    func(u model.User) string { return u.UserID },
		Encode: encodeUser,
		Decode: r.decodeUser,
		Check:  checkUser,
		Logger: logger.With().Str("collection", "users").Logger(),
	})
	return r
}

func (r *UserRepo) Load() error { return r.store.Load() }

func (r *UserRepo) SaveAll() error { return r.store.SaveAll() }

func (r *UserRepo) ResolvedPath() string { return r.store.ResolvedPath() }

// GetByID returns the user with the given id.
func (r *UserRepo) GetByID(userID string) (model.User, bool) {
	return r.store.Get(userID)
}

// GetByLogin returns the user with the given login.
func (r *UserRepo) GetByLogin(login string) (model.User, bool) {
	for _, u := range r.store.ListWhere(func(u model.User) bool { return u.Login == login }) {
		return u, true
	}
	return model.User{}, false
}

// List returns all users in insertion order.
func (r *UserRepo) List() []model.User { return r.store.List() }

// ListByRole returns the users holding the given role.
func (r *UserRepo) ListByRole(role model.Role) []model.User {
	return r.store.ListWhere(func(u model.User) bool { return u.Role == role })
}

// Upsert adds or replaces a user.  Rejects an empty UserID with
// ErrMissingID and a login held by a different user with
// ErrLoginTaken; renaming a user's own login is allowed.
func (r *UserRepo) Upsert(u model.User) error { return r.store.Upsert(u) }

// RemoveByID deletes a user by id.
func (r *UserRepo) RemoveByID(userID string) bool { return r.store.Remove(userID) }

// RemoveByLogin deletes a user by login.
func (r *UserRepo) RemoveByLogin(login string) bool {
	u, ok := r.GetByLogin(login)
	if !ok {
		return false
	}
	return r.store.Remove(u.UserID)
}

func checkUser(items []model.User, next model.User) error {
	if next.UserID == "" {
		return ErrMissingID
	}
	if next.Login == "" {
		return nil
	}
	for _, u := range items {
		if u.Login == next.Login && u.UserID != next.UserID {
			return ErrLoginTaken
		}
	}
	return nil
}

type userDoc struct {
	UserID       string `json:"userId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Login        string `json:"login"`
	PasswordHash string `json:"passwordHash"`
	Password     string `json:"password,omitempty"` // legacy cleartext, read only
	Role         string `json:"role"`
	Active       *bool  `json:"active,omitempty"`
}

func encodeUser(u model.User) any {
	active := u.Active
	return userDoc{
		UserID:       u.UserID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Address:      u.Address,
		Phone:        u.Phone,
		Login:        u.Login,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Active:       &active,
	}
}

func (r *UserRepo) decodeUser(raw json.RawMessage) (model.User, error) {
	var doc userDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.User{}, err
	}
	if doc.UserID == "" {
		return model.User{}, fmt.Errorf("user: %w", ErrMissingID)
	}

	u := model.User{
		UserID:       doc.UserID,
		FirstName:    doc.FirstName,
		LastName:     doc.LastName,
		Address:      doc.Address,
		Phone:        doc.Phone,
		Login:        doc.Login,
		PasswordHash: doc.PasswordHash,
		Role:         model.ParseRole(doc.Role),
		Active:       true,
	}
	if doc.Active != nil {
		u.Active = *doc.Active
	}

	// Legacy records stored the password in the clear.  Hash it once
	// here; the cleartext never survives past decode.
	if u.PasswordHash == "" && doc.Password != "" {
		hash, err := utils.HashPassword(doc.Password, r.bcryptCost)
		if err != nil {
			return model.User{}, fmt.Errorf("user %s: migrate legacy password: %w", doc.UserID, err)
		}
		u.PasswordHash = hash
	}
	u.Password = ""
	return u, nil
}
