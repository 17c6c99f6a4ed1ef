package models

import "time"

// User is an account that owns tasks and preferences.
// Password only carries the plaintext between the caller and the store on
// registration; users read back from the store never expose the hash.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) GetID() int {
	return u.ID
}
