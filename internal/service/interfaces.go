package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/steadyapp/steady/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,max=72"`
}

type HabitRequest struct {
	Name string `validate:"required,min=1,max=200"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, gives back user's data with ID
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type HabitsServiceI interface {
	// Persists new habit owned by uid. Returns it with generated id and empty entries
	CreateHabit(ctx context.Context, uid uuid.UUID, req HabitRequest) (*entity.Habit, error)
	// Lists habits owned by uid with their entries attached
	GetUserHabits(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error)
	// Returns habit with its entries if owned by userID
	GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error)
	// Renames habit if owned by userID
	UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, req HabitRequest) error
	// Deletes habit and its entries if owned by userID
	DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error
}

type EntriesServiceI interface {
	// Records a completion entry on habitID for the given date if owned by userID
	AddEntry(ctx context.Context, habitID, userID uuid.UUID, date time.Time, completed bool) (*entity.HabitEntry, error)
	// Lists entries of habitID ascending by date if owned by userID
	GetHabitEntries(ctx context.Context, habitID, userID uuid.UUID) ([]entity.HabitEntry, error)
}
