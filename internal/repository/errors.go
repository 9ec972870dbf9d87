// Package repository implements the persistence layer: a generic
// in-memory record store backed by one JSON file per entity type,
// plus an entity-specific facade for each collection.  This file
// defines the rejection errors shared across facades.  These
// sentinel values let the console distinguish a validation problem
// (show a message, keep going) from an I/O failure (the save or
// load itself went wrong), via errors.Is.
package repository

import "errors"

// ErrMissingID is returned by upsert when the record carries no
// primary key.  Key generation is the caller's job, not the
// store's.
var ErrMissingID = errors.New("missing record id")

// ErrLoginTaken is returned when a user upsert would give two
// different user ids the same login.  Re-upserting the same user
// under its own login is allowed.
var ErrLoginTaken = errors.New("login already taken")

// ErrUnknownItemKind is returned when a booking item document
// carries an unrecognized "kind" discriminant.  The store skips
// such items on load rather than failing the booking.
var ErrUnknownItemKind = errors.New("unknown booking item kind")
