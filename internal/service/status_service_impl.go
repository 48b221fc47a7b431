package service

import (
	"context"

	"github.com/alexanderramin/cptrack/internal/domain"
	"github.com/alexanderramin/cptrack/internal/repository"
)

type statusService struct {
	session  *Session
	progress repository.CSESProgressRepo
}

func NewStatusService(session *Session, progress repository.CSESProgressRepo) StatusService {
	return &statusService{session: session, progress: progress}
}

// Dashboard summarizes the session. When the progress document cannot be
// read the session's own solved count is shown against the default total
// and the failure is recorded.
func (s *statusService) Dashboard(ctx context.Context) (domain.DashboardStats, error) {
	st := s.session.Snapshot()
	cses, err := s.progress.LoadOrInit(ctx)
	if err != nil {
		s.session.RecordStoreError(ctx, "dashboard-cses-progress", err)
		cses = domain.CSESProgress{Solved: st.CSES.Solved, Total: domain.DefaultCSESTotal}
		cses.Clamp()
	}
	return domain.BuildDashboard(st, cses, s.session.Courses(), s.session.Now()), nil
}
