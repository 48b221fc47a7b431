package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/alexanderramin/cptrack/internal/domain"
	"github.com/alexanderramin/cptrack/internal/repository"
)

// taskService edits the data/tasks document directly; it is not part of
// the session aggregate.
type taskService struct {
	mu      sync.Mutex
	tasks   repository.TaskListRepo
	session *Session
}

func NewTaskService(session *Session, tasks repository.TaskListRepo) TaskService {
	return &taskService{tasks: tasks, session: session}
}

func (s *taskService) List(ctx context.Context) ([]domain.TaskItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *taskService) Add(ctx context.Context, text string) ([]domain.TaskItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: task text is required", ErrInvalidInput)
	}
	return s.edit(ctx, "task-add", func(items []domain.TaskItem) ([]domain.TaskItem, error) {
		return append(items, domain.TaskItem{Text: text}), nil
	})
}

func (s *taskService) Toggle(ctx context.Context, index int) ([]domain.TaskItem, error) {
	return s.edit(ctx, "task-toggle", func(items []domain.TaskItem) ([]domain.TaskItem, error) {
		if index < 0 || index >= len(items) {
			return nil, fmt.Errorf("task %d: %w", index+1, ErrNotFound)
		}
		items[index].Done = !items[index].Done
		return items, nil
	})
}

func (s *taskService) Remove(ctx context.Context, index int) ([]domain.TaskItem, error) {
	return s.edit(ctx, "task-remove", func(items []domain.TaskItem) ([]domain.TaskItem, error) {
		if index < 0 || index >= len(items) {
			return nil, fmt.Errorf("task %d: %w", index+1, ErrNotFound)
		}
		return append(items[:index:index], items[index+1:]...), nil
	})
}

// edit loads, applies fn and saves. A failed save is recorded and the edited
// list is still returned.
func (s *taskService) edit(ctx context.Context, name string, fn func([]domain.TaskItem) ([]domain.TaskItem, error)) ([]domain.TaskItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	items, err = fn(items)
	if err != nil {
		return nil, err
	}
	if err := s.tasks.Save(ctx, items); err != nil {
		s.session.RecordStoreError(ctx, name, err)
	}
	return items, nil
}

func (s *taskService) load(ctx context.Context) ([]domain.TaskItem, error) {
	items, err := s.tasks.Load(ctx)
	if err != nil {
		s.session.RecordStoreError(ctx, "task-load", err)
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	return items, nil
}
