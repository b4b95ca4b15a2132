package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/steadyapp/steady/internal/error_values"
	"github.com/steadyapp/steady/pkg/cleanup"
	"github.com/steadyapp/steady/pkg/entity"
)

type EntriesRepository struct {
	conn PgConnection
}

func NewEntriesRepo(cfg DBConfig) *EntriesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for entriesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for entriesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &EntriesRepository{
		conn: pool,
	}
}

func NewEntriesRepoWithConn(conn PgConnection) *EntriesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for entriesRepo: " + err.Error())
	}
	return &EntriesRepository{
		conn: conn,
	}
}

func (er *EntriesRepository) Create(ctx context.Context, entry *entity.HabitEntry) error {
	if entry == nil {
		return errors.New("entry is nil")
	}
	row := er.conn.QueryRow(
		ctx,
		`INSERT INTO habit_entries (habit_id, entry_date, completed) VALUES ($1, $2, $3) RETURNING id, created_at;`,
		entry.HabitID,
		entry.Date,
		entry.Completed,
	)
	if err := row.Scan(&entry.ID, &entry.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrEntryExists
			// FK violation
			case "23503":
				return errorvalues.ErrHabitNotFound
			}
		}
		return errors.New("creating entry db error: " + err.Error())
	}
	return nil
}

func (er *EntriesRepository) GetByHabitID(ctx context.Context, habitID uuid.UUID) ([]entity.HabitEntry, error) {
	rows, err := er.conn.Query(
		ctx,
		`SELECT id, habit_id, entry_date, completed, created_at FROM habit_entries WHERE habit_id = $1 ORDER BY entry_date ASC;`,
		habitID,
	)
	if err != nil {
		return nil, errors.New("getting entries by habit id error: " + err.Error())
	}
	defer rows.Close()
	entries := make([]entity.HabitEntry, 0)
	for rows.Next() {
		e := entity.HabitEntry{}
		err = rows.Scan(&e.ID, &e.HabitID, &e.Date, &e.Completed, &e.CreatedAt)
		if err != nil {
			return nil, errors.New("entry row parsing error: " + err.Error())
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected entry rows error: " + rows.Err().Error())
	}
	return entries, nil
}

func (er *EntriesRepository) Exists(ctx context.Context, habitID uuid.UUID, date time.Time) (bool, error) {
	var exists bool
	row := er.conn.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM habit_entries WHERE habit_id = $1 AND entry_date = $2);`,
		habitID,
		date,
	)
	err := row.Scan(&exists)
	if err != nil {
		return false, errors.New("inspecting if entry exists error: " + err.Error())
	}
	return exists, nil
}
