package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/cptrack/internal/codeforces"
	"github.com/alexanderramin/cptrack/internal/domain"
)

type syncService struct {
	session        *Session
	fetcher        codeforces.SubmissionFetcher
	maxSubmissions int
	observer       UseCaseObserver
}

// NewSyncService builds the judge sync. maxSubmissions <= 0 means
// codeforces.DefaultMaxSubmissions.
func NewSyncService(
	session *Session,
	fetcher codeforces.SubmissionFetcher,
	maxSubmissions int,
	observers ...UseCaseObserver,
) SyncService {
	if maxSubmissions <= 0 {
		maxSubmissions = codeforces.DefaultMaxSubmissions
	}
	return &syncService{
		session:        session,
		fetcher:        fetcher,
		maxSubmissions: maxSubmissions,
		observer:       useCaseObserverOrNoop(observers),
	}
}

func (s *syncService) Sync(ctx context.Context, handle string) (result SyncResult, err error) {
	startedAt := s.session.Now()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "cf-fetch",
			StartedAt: startedAt,
			Duration:  s.session.Now().Sub(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	handle = strings.TrimSpace(handle)
	if handle == "" {
		handle = strings.TrimSpace(s.session.Snapshot().Codeforces.Username)
	}
	if handle == "" {
		return SyncResult{}, ErrEmptyHandle
	}
	fields["handle"] = handle

	// The fetch runs without the session lock so the UI stays responsive.
	subs, err := s.fetcher.UserStatus(ctx, handle, 1, s.maxSubmissions)
	if err != nil {
		return SyncResult{}, fmt.Errorf("fetching submissions for %s: %w", handle, err)
	}
	solved := domain.UniqueAccepted(subs)
	fields["fetched"] = len(subs)
	fields["accepted_unique"] = len(solved)

	result = SyncResult{Handle: handle, Fetched: len(subs), Accepted: len(solved)}
	err = s.session.Mutate(ctx, "cf-sync", func(m *Mutation) error {
		cf := &m.State.Codeforces
		result.Added = cf.MergeSolved(solved, m.NextID)
		cf.Contests = domain.DistinctContests(cf.Problems)
		cf.Username = handle
		now := m.Now
		cf.LastSync = &now
		result.SyncedAt = now
		m.Fields["handle"] = handle
		m.Fields["added"] = result.Added
		return nil
	})
	if err != nil {
		return SyncResult{}, err
	}
	fields["added"] = result.Added
	return result, nil
}
