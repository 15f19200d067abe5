package models

// User is an account in the user registry. Email is the identity key; the
// record created at first registration is never updated by later logins.
type User struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
	Level  string `json:"level"`
	XP     int    `json:"xp"`
}
