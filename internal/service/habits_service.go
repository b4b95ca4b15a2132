package service

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/steadyapp/steady/internal/error_values"
	"github.com/steadyapp/steady/internal/repository"
	"github.com/steadyapp/steady/pkg/entity"
)

type HabitsService struct {
	habitsRepo  repository.HabitsRepositoryI
	entriesRepo repository.EntriesRepositoryI
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI, entriesRepo repository.EntriesRepositoryI) *HabitsService {
	if habitsRepo == nil || entriesRepo == nil {
		log.Fatal("provided nil repos to habits service")
	}
	return &HabitsService{
		habitsRepo:  habitsRepo,
		entriesRepo: entriesRepo,
	}
}

func (hs *HabitsService) CreateHabit(ctx context.Context, uid uuid.UUID, req HabitRequest) (*entity.Habit, error) {
	if err := validateHabitRequest(req); err != nil {
		return nil, err
	}
	h := entity.Habit{
		UserID: uid,
		Name:   req.Name,
	}
	id, err := hs.habitsRepo.Create(ctx, &h)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	habit, err := hs.habitsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	habit.Entries = make([]entity.HabitEntry, 0)
	return habit, nil
}

func (hs *HabitsService) GetUserHabits(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error) {
	habits, err := hs.habitsRepo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	for _, h := range habits {
		entries, err := hs.entriesRepo.GetByHabitID(ctx, h.ID)
		if err != nil {
			return nil, errors.New("entries repository error: " + err.Error())
		}
		h.Entries = entries
	}
	return habits, nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	entries, err := hs.entriesRepo.GetByHabitID(ctx, habitID)
	if err != nil {
		return nil, errors.New("entries repository error: " + err.Error())
	}
	habit.Entries = entries
	return habit, nil
}

func (hs *HabitsService) UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, req HabitRequest) error {
	if err := validateHabitRequest(req); err != nil {
		return err
	}
	habit, err := hs.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return err
	}
	habit.Name = req.Name
	err = hs.habitsRepo.Update(ctx, habit)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error {
	_, err := hs.ownedHabit(ctx, habitID, userID)
	if err != nil {
		return err
	}
	err = hs.habitsRepo.Delete(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}

// ownedHabit loads the habit and enforces the owner check. Wrong owner
// stays a distinct sentinel here; handlers surface it as not found.
func (hs *HabitsService) ownedHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}

func validateHabitRequest(req HabitRequest) error {
	err := validate.Struct(req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errorvalues.ErrValidation
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return err
		}
		return errors.New("validation unexpected error: " + err.Error())
	}
	return nil
}
