package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/cptrack/internal/domain"
)

type codeforcesService struct {
	session *Session
}

func NewCodeforcesService(session *Session) CodeforcesService {
	return &codeforcesService{session: session}
}

func (s *codeforcesService) List(filter domain.ProblemFilter) []domain.Problem {
	return domain.FilterProblems(s.session.Snapshot().Codeforces.Problems, filter)
}

func (s *codeforcesService) Add(ctx context.Context, p domain.Problem) (domain.Problem, error) {
	p.Contest = strings.TrimSpace(p.Contest)
	p.ProblemID = strings.TrimSpace(p.ProblemID)
	p.ProblemName = strings.TrimSpace(p.ProblemName)
	if p.Division == "" {
		p.Division = domain.ClassifyContestLabel(p.Contest)
	}
	p.Source = domain.SourceManual
	if err := p.Validate(); err != nil {
		return domain.Problem{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err := s.session.Mutate(ctx, "cf-add", func(m *Mutation) error {
		p.ID = m.NextID()
		p.DateAdded = m.Now
		m.State.Codeforces.Problems = append(m.State.Codeforces.Problems, p)
		m.State.Codeforces.Contests = domain.DistinctContests(m.State.Codeforces.Problems)
		m.Fields["problem_id"] = p.ID
		m.Fields["division"] = string(p.Division)
		return nil
	})
	if err != nil {
		return domain.Problem{}, err
	}
	return p, nil
}

func (s *codeforcesService) Edit(ctx context.Context, id int64, patch ProblemPatch) (domain.Problem, error) {
	var out domain.Problem
	err := s.session.Mutate(ctx, "cf-edit", func(m *Mutation) error {
		p, err := findProblem(m.State, id)
		if err != nil {
			return err
		}
		if patch.Contest != nil {
			p.Contest = strings.TrimSpace(*patch.Contest)
		}
		if patch.Division != nil {
			p.Division = *patch.Division
		}
		if patch.ProblemID != nil {
			p.ProblemID = strings.TrimSpace(*patch.ProblemID)
		}
		if patch.ProblemName != nil {
			p.ProblemName = strings.TrimSpace(*patch.ProblemName)
		}
		if patch.Notes != nil {
			p.Notes = *patch.Notes
		}
		if patch.Tricks != nil {
			p.Tricks = *patch.Tricks
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		m.State.Codeforces.Contests = domain.DistinctContests(m.State.Codeforces.Problems)
		out = p.Clone()
		m.Fields["problem_id"] = id
		return nil
	})
	if err != nil {
		return domain.Problem{}, err
	}
	return out, nil
}

func (s *codeforcesService) Delete(ctx context.Context, id int64) error {
	return s.session.Mutate(ctx, "cf-delete", func(m *Mutation) error {
		problems := m.State.Codeforces.Problems
		for i := range problems {
			if problems[i].ID == id {
				m.State.Codeforces.Problems = append(problems[:i:i], problems[i+1:]...)
				m.State.Codeforces.Contests = domain.DistinctContests(m.State.Codeforces.Problems)
				m.Fields["problem_id"] = id
				return nil
			}
		}
		return fmt.Errorf("codeforces problem %d: %w", id, ErrNotFound)
	})
}

func (s *codeforcesService) SetHandle(ctx context.Context, handle string) error {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return ErrEmptyHandle
	}
	return s.session.Mutate(ctx, "cf-set-handle", func(m *Mutation) error {
		m.State.Codeforces.Username = handle
		m.Fields["handle"] = handle
		return nil
	})
}

func findProblem(st *domain.AppState, id int64) (*domain.Problem, error) {
	for i := range st.Codeforces.Problems {
		if st.Codeforces.Problems[i].ID == id {
			return &st.Codeforces.Problems[i], nil
		}
	}
	return nil, fmt.Errorf("codeforces problem %d: %w", id, ErrNotFound)
}
