package models

// User is an operator allowed to change the sauna when auth is enabled.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
