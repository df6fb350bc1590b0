package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered player. The password is kept alongside the
// identity record in the store but never serialized into responses.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	HighScore int       `json:"highScore"`
	CreatedAt time.Time `json:"createdAt"`
	Password  string    `json:"-"`
}

// NewUser constructs a user with a generated id and creation timestamp
func NewUser(email, password, username string) *User {
	return &User{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		Password:  password,
		CreatedAt: time.Now(),
	}
}

// Credentials represents an auth request body. Username is only required
// on signup.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username,omitempty"`
}
