package model

// Hotel represents a property in the hotels collection.
//
// Fields:
//  ID            – primary key, pattern "HTL-nnnn".
//  Name          – display name.
//  Stars         – rating, 1 to 5.
//  Address       – postal address.
//  BaseRateCents – default nightly rate in minor currency units,
//                  used when a room's type carries no rate of its own.
//  ManagerUserID – optional reference to a User with role
//                  HOTEL_MANAGER.  At most one hotel per manager is a
//                  console-level policy, not a store invariant.
type Hotel struct {
	ID            string
	Name          string
	Stars         int
	Address       string
	BaseRateCents int64
	ManagerUserID string
}
