package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/steadyapp/steady/internal/error_values"
	"github.com/steadyapp/steady/internal/repository"
	"github.com/steadyapp/steady/pkg/entity"
)

type EntriesService struct {
	habitsRepo  repository.HabitsRepositoryI
	entriesRepo repository.EntriesRepositoryI
}

func NewEntriesService(habitsRepo repository.HabitsRepositoryI, entriesRepo repository.EntriesRepositoryI) *EntriesService {
	if habitsRepo == nil || entriesRepo == nil {
		log.Fatal("provided nil repos to entries service")
	}
	return &EntriesService{
		habitsRepo:  habitsRepo,
		entriesRepo: entriesRepo,
	}
}

func (es *EntriesService) AddEntry(ctx context.Context, habitID, userID uuid.UUID, date time.Time, completed bool) (*entity.HabitEntry, error) {
	habit, err := es.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	exist, err := es.entriesRepo.Exists(ctx, habitID, date)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if exist {
		return nil, errorvalues.ErrEntryExists
	}
	entry := entity.HabitEntry{
		HabitID:   habitID,
		Date:      date,
		Completed: completed,
	}
	err = es.entriesRepo.Create(ctx, &entry)
	if err != nil {
		// Racing insert can still hit the unique index
		if errors.Is(err, errorvalues.ErrEntryExists) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return &entry, nil
}

func (es *EntriesService) GetHabitEntries(ctx context.Context, habitID, userID uuid.UUID) ([]entity.HabitEntry, error) {
	habit, err := es.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	entries, err := es.entriesRepo.GetByHabitID(ctx, habitID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return entries, nil
}
