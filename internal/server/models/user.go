// Package models defines the persistent records of the server.
package models

import "time"

// User is the credential record: the hash of the password and the most
// recently issued token for the account.
//
// CurrentToken is overwritten on each successful login and kept only for
// observation; token validity is decided from the token itself, never from
// this field.
type User struct {
	ID             string
	UserName       string
	HashedPassword string
	CurrentToken   string
	CreatedAt      time.Time
}
