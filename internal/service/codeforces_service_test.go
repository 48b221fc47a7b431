package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/cptrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeforces_AddClassifiesBlankDivision(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	p, err := h.cf.Add(ctx, domain.Problem{Contest: " Contest 1350 ", ProblemID: "B", ProblemName: "Orac and Models"})
	require.NoError(t, err)
	assert.Equal(t, "Contest 1350", p.Contest)
	assert.Equal(t, domain.DivisionEducational, p.Division)
	assert.Equal(t, domain.SourceManual, p.Source)

	explicit, err := h.cf.Add(ctx, domain.Problem{Contest: "Contest 1350", ProblemID: "C", ProblemName: "Orac and LCM", Division: domain.DivisionOne})
	require.NoError(t, err)
	assert.Equal(t, domain.DivisionOne, explicit.Division)

	assert.Equal(t, 1, h.session.Snapshot().Codeforces.Contests)
}

func TestCodeforces_AddRejectsInvalid(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.cf.Add(ctx, domain.Problem{Contest: "Contest 1", ProblemID: "A"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = h.cf.Add(ctx, domain.Problem{Contest: "Contest 1", ProblemID: "A", ProblemName: "Theatre Square", Division: "Div. 7"})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, h.cf.List(domain.ProblemFilter{}))
}

func TestCodeforces_EditAndDelete(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	a, err := h.cf.Add(ctx, domain.Problem{Contest: "Contest 2000", ProblemID: "A", ProblemName: "Alpha"})
	require.NoError(t, err)
	b, err := h.cf.Add(ctx, domain.Problem{Contest: "Contest 2001", ProblemID: "A", ProblemName: "Beta"})
	require.NoError(t, err)
	assert.Equal(t, 2, h.session.Snapshot().Codeforces.Contests)

	contest := "Contest 2000"
	tricks := "binary search the answer"
	got, err := h.cf.Edit(ctx, b.ID, ProblemPatch{Contest: &contest, Tricks: &tricks})
	require.NoError(t, err)
	assert.Equal(t, tricks, got.Tricks)
	assert.Equal(t, 1, h.session.Snapshot().Codeforces.Contests)

	empty := ""
	_, err = h.cf.Edit(ctx, a.ID, ProblemPatch{ProblemName: &empty})
	require.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, h.cf.Delete(ctx, a.ID))
	assert.ErrorIs(t, h.cf.Delete(ctx, a.ID), ErrNotFound)
	_, err = h.cf.Edit(ctx, a.ID, ProblemPatch{})
	assert.ErrorIs(t, err, ErrNotFound)

	left := h.cf.List(domain.ProblemFilter{})
	require.Len(t, left, 1)
	assert.Equal(t, "Beta", left[0].ProblemName)
}

func TestCodeforces_SetHandleRejectsBlank(t *testing.T) {
	h := newHarness(t)
	assert.ErrorIs(t, h.cf.SetHandle(context.Background(), " "), ErrEmptyHandle)
}
