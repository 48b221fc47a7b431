package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/cptrack/internal/domain"
	"github.com/alexanderramin/cptrack/internal/repository"
)

type csesService struct {
	session  *Session
	progress repository.CSESProgressRepo
}

func NewCSESService(session *Session, progress repository.CSESProgressRepo) CSESService {
	return &csesService{session: session, progress: progress}
}

func (s *csesService) List(filter domain.CSESFilter) []domain.CSESProblem {
	return domain.FilterCSES(s.session.Snapshot().CSES.Problems, filter)
}

func (s *csesService) Add(ctx context.Context, p domain.CSESProblem) (domain.CSESProblem, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)
	if p.Status == "" {
		p.Status = domain.StatusUnsolved
	}
	if err := validateCSES(&p); err != nil {
		return domain.CSESProblem{}, err
	}

	var solved int
	err := s.session.Mutate(ctx, "cses-add", func(m *Mutation) error {
		p.ID = m.NextID()
		p.DateAdded = m.Now
		m.State.CSES.Problems = append(m.State.CSES.Problems, p)
		solved = recountCSES(m.State)
		m.Fields["problem_id"] = p.ID
		return nil
	})
	if err != nil {
		return domain.CSESProblem{}, err
	}
	s.pushSolved(ctx, solved)
	return p, nil
}

func (s *csesService) Toggle(ctx context.Context, id int64) (domain.CSESProblem, error) {
	var out domain.CSESProblem
	var solved int
	err := s.session.Mutate(ctx, "cses-toggle", func(m *Mutation) error {
		p, err := findCSES(m.State, id)
		if err != nil {
			return err
		}
		p.ToggleStatus()
		out = *p
		solved = recountCSES(m.State)
		m.Fields["problem_id"] = id
		m.Fields["status"] = string(p.Status)
		return nil
	})
	if err != nil {
		return domain.CSESProblem{}, err
	}
	s.pushSolved(ctx, solved)
	return out, nil
}

func (s *csesService) Edit(ctx context.Context, id int64, patch CSESPatch) (domain.CSESProblem, error) {
	var out domain.CSESProblem
	var solved int
	err := s.session.Mutate(ctx, "cses-edit", func(m *Mutation) error {
		p, err := findCSES(m.State, id)
		if err != nil {
			return err
		}
		if patch.Name != nil {
			p.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Category != nil {
			p.Category = strings.TrimSpace(*patch.Category)
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.Notes != nil {
			p.Notes = *patch.Notes
		}
		if patch.Approach != nil {
			p.Approach = *patch.Approach
		}
		if err := validateCSES(p); err != nil {
			return err
		}
		out = *p
		solved = recountCSES(m.State)
		m.Fields["problem_id"] = id
		return nil
	})
	if err != nil {
		return domain.CSESProblem{}, err
	}
	s.pushSolved(ctx, solved)
	return out, nil
}

func (s *csesService) Delete(ctx context.Context, id int64) error {
	var solved int
	err := s.session.Mutate(ctx, "cses-delete", func(m *Mutation) error {
		problems := m.State.CSES.Problems
		for i := range problems {
			if problems[i].ID == id {
				m.State.CSES.Problems = append(problems[:i:i], problems[i+1:]...)
				solved = recountCSES(m.State)
				m.Fields["problem_id"] = id
				return nil
			}
		}
		return fmt.Errorf("cses problem %d: %w", id, ErrNotFound)
	})
	if err != nil {
		return err
	}
	s.pushSolved(ctx, solved)
	return nil
}

func (s *csesService) Progress(ctx context.Context) (domain.CSESProgress, error) {
	p, err := s.progress.LoadOrInit(ctx)
	if err != nil {
		s.session.RecordStoreError(ctx, "cses-progress", err)
		return domain.CSESProgress{}, fmt.Errorf("loading cses progress: %w", err)
	}
	return p, nil
}

func (s *csesService) Increment(ctx context.Context) (domain.CSESProgress, error) {
	return s.adjust(ctx, "cses-increment", (*domain.CSESProgress).Increment)
}

func (s *csesService) Decrement(ctx context.Context) (domain.CSESProgress, error) {
	return s.adjust(ctx, "cses-decrement", (*domain.CSESProgress).Decrement)
}

func (s *csesService) Reset(ctx context.Context) (domain.CSESProgress, error) {
	return s.adjust(ctx, "cses-reset", (*domain.CSESProgress).Reset)
}

// adjust is a read-modify-write of the progress counter. The read must
// succeed; a failed write is recorded and the computed value still returned.
func (s *csesService) adjust(ctx context.Context, name string, op func(*domain.CSESProgress)) (domain.CSESProgress, error) {
	p, err := s.Progress(ctx)
	if err != nil {
		return domain.CSESProgress{}, err
	}
	op(&p)
	if err := s.progress.SetSolved(ctx, p.Solved); err != nil {
		s.session.RecordStoreError(ctx, name, err)
	}
	err = s.session.Mutate(ctx, name, func(m *Mutation) error {
		m.State.CSES.Solved = p.Solved
		m.Fields["solved"] = p.Solved
		m.Fields["total"] = p.Total
		return nil
	})
	return p, err
}

// pushSolved mirrors the list's solved count into progress/cses, clamped to
// the stored total. A clamped count is written back to the session too.
func (s *csesService) pushSolved(ctx context.Context, solved int) {
	p, err := s.progress.LoadOrInit(ctx)
	if err != nil {
		s.session.RecordStoreError(ctx, "cses-push-solved", err)
		return
	}
	p.SetSolved(solved)
	if err := s.progress.SetSolved(ctx, p.Solved); err != nil {
		s.session.RecordStoreError(ctx, "cses-push-solved", err)
	}
	if p.Solved == solved {
		return
	}
	_ = s.session.Mutate(ctx, "cses-clamp-solved", func(m *Mutation) error {
		m.State.CSES.Solved = p.Solved
		m.Fields["solved"] = p.Solved
		m.Fields["total"] = p.Total
		return nil
	})
}

func recountCSES(st *domain.AppState) int {
	st.CSES.Solved = domain.CountSolved(st.CSES.Problems)
	return st.CSES.Solved
}

func findCSES(st *domain.AppState, id int64) (*domain.CSESProblem, error) {
	for i := range st.CSES.Problems {
		if st.CSES.Problems[i].ID == id {
			return &st.CSES.Problems[i], nil
		}
	}
	return nil, fmt.Errorf("cses problem %d: %w", id, ErrNotFound)
}

func validateCSES(p *domain.CSESProblem) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if p.Status != domain.StatusSolved && p.Status != domain.StatusUnsolved {
		return fmt.Errorf("%w: invalid status %q", ErrInvalidInput, p.Status)
	}
	return nil
}
