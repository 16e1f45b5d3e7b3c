package entity

import "time"

// User is the aggregate root for the user domain.
// Password holds a bcrypt hash, never the plaintext.
//
// Users are immutable after sign-up and are never deleted by any
// exposed operation.
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Password    string    `json:"password"`
	Name        string    `json:"name"`
	Birthdate   time.Time `json:"birthdate"`
	Nationality string    `json:"nationality"`
}
