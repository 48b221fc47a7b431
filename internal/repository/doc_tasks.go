package repository

import (
	"context"

	"github.com/alexanderramin/cptrack/internal/docstore"
	"github.com/alexanderramin/cptrack/internal/domain"
)

// DocTaskListRepo implements TaskListRepo on data/tasks, stored as
// {"tasks": [...]}.
type DocTaskListRepo struct {
	store docstore.Store
}

func NewDocTaskListRepo(store docstore.Store) *DocTaskListRepo {
	return &DocTaskListRepo{store: store}
}

type taskListDoc struct {
	Tasks []domain.TaskItem `json:"tasks"`
}

func (r *DocTaskListRepo) Load(ctx context.Context) ([]domain.TaskItem, error) {
	snap, err := r.store.Get(ctx, TaskListRef)
	if err != nil {
		return nil, &StoreReadError{Ref: TaskListRef, Err: err}
	}
	if !snap.Exists {
		items := []domain.TaskItem{}
		if err := r.Save(ctx, items); err != nil {
			return items, err
		}
		return items, nil
	}
	var doc taskListDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, &StoreReadError{Ref: TaskListRef, Err: err}
	}
	if doc.Tasks == nil {
		doc.Tasks = []domain.TaskItem{}
	}
	return doc.Tasks, nil
}

func (r *DocTaskListRepo) Save(ctx context.Context, items []domain.TaskItem) error {
	if items == nil {
		items = []domain.TaskItem{}
	}
	fields, err := docstore.EncodeFields(taskListDoc{Tasks: items})
	if err != nil {
		return &StoreWriteError{Ref: TaskListRef, Err: err}
	}
	if err := r.store.Set(ctx, TaskListRef, fields); err != nil {
		return &StoreWriteError{Ref: TaskListRef, Err: err}
	}
	return nil
}

var _ TaskListRepo = (*DocTaskListRepo)(nil)
