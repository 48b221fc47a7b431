package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cptrack/internal/domain"
)

type courseService struct {
	session *Session
}

func NewCourseService(session *Session) CourseService {
	return &courseService{session: session}
}

func (s *courseService) List() []domain.CourseStat {
	st := s.session.Snapshot()
	out := make([]domain.CourseStat, 0, len(s.session.Courses()))
	for _, spec := range s.session.Courses() {
		p, ok := st.Courses[spec.Key]
		if !ok {
			p = domain.CourseProgress{Total: spec.Total}
		}
		out = append(out, domain.CourseStat{Spec: spec, Progress: p})
	}
	return out
}

// Set stores completed for the course, clamped to [0, total]. The catalog
// total replaces whatever total was stored.
func (s *courseService) Set(ctx context.Context, key string, completed int) (domain.CourseProgress, error) {
	spec, err := domain.FindCourse(s.session.Courses(), key)
	if err != nil {
		return domain.CourseProgress{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	var out domain.CourseProgress
	err = s.session.Mutate(ctx, "course-set", func(m *Mutation) error {
		p := domain.CourseProgress{Total: spec.Total}
		p.SetCompleted(completed)
		m.State.Courses[spec.Key] = p
		out = p
		m.Fields["course"] = spec.Key
		m.Fields["completed"] = p.Completed
		return nil
	})
	return out, err
}
