package entity

import "time"

type User struct {
	ID        string
	Username  string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserLoginData is the subset of the user carried in JWT claims and
// stored in fiber locals by the token middleware.
type UserLoginData struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}
