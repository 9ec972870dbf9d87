package model

// Role enumerates the access levels a user account can hold.
// Unknown stored values parse to RoleGuest so that records written
// by older versions keep loading.
type Role string

const (
	RoleGuest        Role = "GUEST"
	RoleHotelManager Role = "HOTEL_MANAGER"
	RoleAdmin        Role = "ADMIN"
)

// ParseRole maps a stored role string to a Role, defaulting to
// RoleGuest for empty or unrecognized input.
func ParseRole(s string) Role {
	switch s {
	case string(RoleAdmin):
		return RoleAdmin
	case string(RoleHotelManager):
		return RoleHotelManager
	default:
		return RoleGuest
	}
}

// User represents an account in the users collection.  The store
// keys users by UserID; Login is additionally unique across the
// collection (enforced by the user repository on upsert).
//
// Fields:
//  UserID       – primary key, assigned by the caller.
//  FirstName    – given name.
//  LastName     – family name.
//  Address      – postal address (free text).
//  Phone        – contact phone (free text).
//  Login        – unique login name.
//  Password     – transient cleartext input (registration form or a
//                 legacy record); never persisted, cleared on decode.
//  PasswordHash – bcrypt hash of the password.
//  Role         – access level (GUEST, HOTEL_MANAGER, ADMIN).
//  Active       – whether the account may sign in.
type User struct {
	UserID    string
	FirstName string
	LastName  string
	Address   string
	Phone     string

	Login        string
	Password     string
	PasswordHash string

	Role   Role
	Active bool
}

// FullName joins the first and last name for display.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
