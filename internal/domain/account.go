package domain

import "time"

// Account is a user_authentication row: the login identity every other
// record refers to through user_id.
type Account struct {
	ID           int64      `db:"id"            json:"id"`
	Email        string     `db:"email"         json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	UserAuthID   string     `db:"user_auth_id"  json:"user_auth_id"`
	CreatedAt    time.Time  `db:"created_at"    json:"created_at"`
	LastLogin    *time.Time `db:"last_login"    json:"last_login"`
}

// RecordID returns the surrogate primary key.
func (a Account) RecordID() int64 { return a.ID }

// AccountSummary is the read-only subset of an Account shown next to a Profile.
type AccountSummary struct {
	Email     string     `db:"email"      json:"email"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	LastLogin *time.Time `db:"last_login" json:"last_login"`
}
