package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/cptrack/internal/docstore"
	"github.com/alexanderramin/cptrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSESProgress_LoadOrInit_CreatesMissing(t *testing.T) {
	store := testutil.NewTestStore(t)
	repo := NewDocCSESProgressRepo(store, 0)
	ctx := context.Background()

	p, err := repo.LoadOrInit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Solved)
	assert.Equal(t, 400, p.Total)
	assert.True(t, p.Initialized)

	snap, err := store.Get(ctx, CSESProgressRef)
	require.NoError(t, err)
	require.True(t, snap.Exists)
	assert.JSONEq(t, `true`, string(snap.Fields["initialized"]))
}

func TestCSESProgress_LoadOrInit_ConfiguredTotal(t *testing.T) {
	repo := NewDocCSESProgressRepo(testutil.NewTestStore(t), 300)

	p, err := repo.LoadOrInit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 300, p.Total)
}

func TestCSESProgress_MigrationRunsOnce(t *testing.T) {
	store := testutil.NewTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, CSESProgressRef, rawFields(t, map[string]string{
		"solved": `57`,
		"total":  `350`,
		"extra":  `"kept"`,
	})))
	repo := NewDocCSESProgressRepo(store, 0)

	p, err := repo.LoadOrInit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Solved)
	assert.Equal(t, 350, p.Total, "stored total survives the repair")
	assert.True(t, p.Initialized)

	snap, err := store.Get(ctx, CSESProgressRef)
	require.NoError(t, err)
	assert.JSONEq(t, `"kept"`, string(snap.Fields["extra"]), "repair is a merge write")

	require.NoError(t, repo.SetSolved(ctx, 1))

	p, err = repo.LoadOrInit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Solved, "second load must not reset the counter")
}

func TestCSESProgress_MigrationFalsyInitialized(t *testing.T) {
	for _, raw := range []string{`false`, `null`, `0`, `""`} {
		t.Run(raw, func(t *testing.T) {
			store := testutil.NewTestStore(t)
			ctx := context.Background()
			require.NoError(t, store.Set(ctx, CSESProgressRef, rawFields(t, map[string]string{
				"solved":      `9`,
				"initialized": raw,
			})))

			p, err := NewDocCSESProgressRepo(store, 0).LoadOrInit(ctx)
			require.NoError(t, err)
			assert.Equal(t, 0, p.Solved)
			assert.Equal(t, 400, p.Total)
		})
	}
}

func TestCSESProgress_StoredValuesClamped(t *testing.T) {
	store := testutil.NewTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, CSESProgressRef, rawFields(t, map[string]string{
		"solved":      `999`,
		"total":       `400`,
		"initialized": `true`,
	})))

	p, err := NewDocCSESProgressRepo(store, 0).LoadOrInit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 400, p.Solved)
}

func TestCSESProgress_SetSolvedMissingDocument(t *testing.T) {
	repo := NewDocCSESProgressRepo(testutil.NewTestStore(t), 0)

	err := repo.SetSolved(context.Background(), 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreWrite)
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}
