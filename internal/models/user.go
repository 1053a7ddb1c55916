package models

import "time"

// User is a row of the users table. The password hash never appears in a
// response body.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Age          *int      `json:"age"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile is the restricted view returned by the profile endpoints.
type Profile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Age      *int   `json:"age"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

func (u User) Profile() Profile {
	return Profile{
		ID:       u.ID,
		Username: u.Username,
		Age:      u.Age,
		Phone:    u.Phone,
		Email:    u.Email,
	}
}
