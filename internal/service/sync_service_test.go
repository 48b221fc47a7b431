package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/cptrack/internal/codeforces"
	"github.com/alexanderramin/cptrack/internal/domain"
	"github.com/alexanderramin/cptrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSync_ImportsAcceptedOnceAndClassifies(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	at := testutil.FixedNow.Add(-24 * time.Hour)
	wrong := testutil.Accepted(1350, "B", at)
	wrong.Verdict = "WRONG_ANSWER"
	h.fetcher.subs = []domain.Submission{
		testutil.Accepted(1350, "A", at),
		testutil.Accepted(1350, "A", at.Add(time.Hour)),
		wrong,
	}

	res, err := h.sync.Sync(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "x", res.Handle)
	assert.Equal(t, 3, res.Fetched)
	assert.Equal(t, 1, res.Accepted)
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, testutil.FixedNow, res.SyncedAt)

	cf := h.session.Snapshot().Codeforces
	require.Len(t, cf.Problems, 1)
	p := cf.Problems[0]
	assert.Equal(t, "Contest 1350", p.Contest)
	assert.Equal(t, "A", p.ProblemID)
	assert.Equal(t, domain.DivisionEducational, p.Division)
	assert.Equal(t, domain.SourceAPI, p.Source)
	assert.Equal(t, at, p.DateAdded)
	assert.Equal(t, "x", cf.Username)
	assert.Equal(t, 1, cf.Contests)
	require.NotNil(t, cf.LastSync)

	again, err := h.sync.Sync(ctx, "x")
	require.NoError(t, err)
	assert.Zero(t, again.Added)
	assert.Len(t, h.session.Snapshot().Codeforces.Problems, 1)

	persisted := h.reload(t).Snapshot().Codeforces
	assert.Len(t, persisted.Problems, 1)
	assert.Equal(t, "x", persisted.Username)
}

func TestSync_BlankHandleUsesRemembered(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	require.NoError(t, h.cf.SetHandle(ctx, "  tourist "))

	res, err := h.sync.Sync(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "tourist", res.Handle)
	assert.Equal(t, []string{"tourist"}, h.fetcher.handles)
}

func TestSync_EmptyHandleFailsBeforeFetching(t *testing.T) {
	h := newHarness(t)

	_, err := h.sync.Sync(context.Background(), "   ")
	require.ErrorIs(t, err, ErrEmptyHandle)
	assert.Zero(t, h.fetcher.calls())

	events := h.observer.named("cf-fetch")
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
}

func TestSync_FetchErrorLeavesStateUnchanged(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, err := h.cf.Add(ctx, domain.Problem{Contest: "Contest 2000", ProblemID: "A", ProblemName: "Existing"})
	require.NoError(t, err)

	before := h.session.Snapshot()
	writes := h.store.Writes()
	h.fetcher.err = &codeforces.NetworkError{StatusCode: 400, Comment: "handle: User with handle x not found"}

	_, err = h.sync.Sync(ctx, "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, codeforces.ErrNetwork)
	assert.Contains(t, err.Error(), "not found")

	assert.Equal(t, before, h.session.Snapshot())
	assert.Equal(t, writes, h.store.Writes())
}

func TestSync_SaveFailureStillReportsResult(t *testing.T) {
	h := newHarness(t)
	h.fetcher.subs = []domain.Submission{testutil.Accepted(2000, "C", testutil.FixedNow)}
	h.store.WriteErr = errors.New("offline")

	res, err := h.sync.Sync(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Added)
	assert.Len(t, h.session.Snapshot().Codeforces.Problems, 1)
	assert.Error(t, h.session.LastStoreError())
}
