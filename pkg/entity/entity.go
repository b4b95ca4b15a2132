package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash []byte
	PasswordSalt []byte
}

// PublicView projects the user onto the fields safe to serialize.
// Password material never leaves the service boundary.
func (u *User) PublicView() PublicUser {
	return PublicUser{
		ID:   u.ID,
		Name: u.Name,
	}
}

type PublicUser struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"username"`
}

type Habit struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"uid"`
	Name      string       `json:"name"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Entries   []HabitEntry `json:"entries"`
}

type HabitEntry struct {
	ID        int64     `json:"id"`
	HabitID   uuid.UUID `json:"habit_id"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}
