package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cptrack/internal/domain"
)

type routineService struct {
	session *Session
}

func NewRoutineService(session *Session) RoutineService {
	return &routineService{session: session}
}

func (s *routineService) List() []domain.RoutineDay {
	return s.session.Snapshot().Routine.SortedDays()
}

// Today returns today's day, creating it when absent. Friday through Sunday
// start as grind days.
func (s *routineService) Today(ctx context.Context) (domain.RoutineDay, error) {
	today := s.session.Now().UTC()
	date := today.Format(domain.DateLayout)
	st := s.session.Snapshot()
	if day, ok := st.Routine.ByDate(date); ok {
		return *day, nil
	}
	return s.Add(ctx, date, domain.DayTypeFor(today))
}

func (s *routineService) Add(ctx context.Context, date string, t domain.DayType) (domain.RoutineDay, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return domain.RoutineDay{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !domain.ValidDayTypes[t] {
		return domain.RoutineDay{}, fmt.Errorf("%w: invalid day type %q", ErrInvalidInput, t)
	}
	var out domain.RoutineDay
	err := s.session.Mutate(ctx, "routine-add", func(m *Mutation) error {
		out = domain.NewRoutineDay(m.NextID(), date, t)
		m.State.Routine.Put(out)
		m.Fields["date"] = date
		m.Fields["type"] = string(t)
		return nil
	})
	return out, err
}

func (s *routineService) Duplicate(ctx context.Context, dayID int64) (domain.RoutineDay, error) {
	var out domain.RoutineDay
	err := s.session.Mutate(ctx, "routine-duplicate", func(m *Mutation) error {
		src, ok := m.State.Routine.ByID(dayID)
		if !ok {
			return fmt.Errorf("routine day %d: %w", dayID, ErrNotFound)
		}
		dup, err := m.State.Routine.DuplicateInto(*src, m.NextID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		out = dup
		m.Fields["from"] = src.Date
		m.Fields["date"] = dup.Date
		return nil
	})
	return out, err
}

// ChangeType resets the day to the canonical list for t, discarding
// completion. changed is false, and nothing is written, when t is the
// current type.
func (s *routineService) ChangeType(ctx context.Context, dayID int64, t domain.DayType) (domain.RoutineDay, bool, error) {
	if !domain.ValidDayTypes[t] {
		return domain.RoutineDay{}, false, fmt.Errorf("%w: invalid day type %q", ErrInvalidInput, t)
	}
	st := s.session.Snapshot()
	day, ok := st.Routine.ByID(dayID)
	if !ok {
		return domain.RoutineDay{}, false, fmt.Errorf("routine day %d: %w", dayID, ErrNotFound)
	}
	if day.Type == t {
		return *day, false, nil
	}

	var out domain.RoutineDay
	err := s.session.Mutate(ctx, "routine-change-type", func(m *Mutation) error {
		d, ok := m.State.Routine.ByID(dayID)
		if !ok {
			return fmt.Errorf("routine day %d: %w", dayID, ErrNotFound)
		}
		d.ChangeType(t)
		out = *d
		m.Fields["date"] = d.Date
		m.Fields["type"] = string(t)
		return nil
	})
	return out, err == nil, err
}

func (s *routineService) ToggleTask(ctx context.Context, dayID, taskID int64) (bool, error) {
	var done bool
	err := s.session.Mutate(ctx, "routine-toggle-task", func(m *Mutation) error {
		d, ok := m.State.Routine.ByID(dayID)
		if !ok {
			return fmt.Errorf("routine day %d: %w", dayID, ErrNotFound)
		}
		var err error
		done, err = d.ToggleTask(taskID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		m.Fields["date"] = d.Date
		m.Fields["task_id"] = taskID
		m.Fields["completed"] = done
		return nil
	})
	return done, err
}

func (s *routineService) Remove(ctx context.Context, dayID int64) error {
	return s.session.Mutate(ctx, "routine-remove", func(m *Mutation) error {
		if !m.State.Routine.Remove(dayID) {
			return fmt.Errorf("routine day %d: %w", dayID, ErrNotFound)
		}
		m.Fields["day_id"] = dayID
		return nil
	})
}
