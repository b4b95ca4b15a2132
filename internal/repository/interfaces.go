package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/steadyapp/steady/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
}

type HabitsRepositoryI interface {
	// Creates new habit in database. Only UserID and Name are necessary. Returns generated id
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	// Searches habit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists habits owned by user with uid
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error)
	// Updates habit's name by ID (ID in habit is necessary)
	Update(ctx context.Context, habit *entity.Habit) error
	// Deletes habit with id. Entries go with it (FK cascade)
	Delete(ctx context.Context, id uuid.UUID) error
}

type EntriesRepositoryI interface {
	// Creates new entry for its HabitID. Fills in generated ID and CreatedAt
	Create(ctx context.Context, entry *entity.HabitEntry) error
	// Provides entries of habitID ordered ascending by date
	GetByHabitID(ctx context.Context, habitID uuid.UUID) ([]entity.HabitEntry, error)
	// Inspects if entry for (habitID, date) exists
	Exists(ctx context.Context, habitID uuid.UUID, date time.Time) (bool, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
