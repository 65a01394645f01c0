package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poiroute/internal/model"
)

func TestMemoryPlanRunsPaging(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	for i := 0; i < 5; i++ {
		saved, err := m.SavePlanRun(ctx, model.PlanRun{TenantID: "t_a", POICount: i, Attempts: 1})
		require.NoError(t, err)
		assert.NotEmpty(t, saved.ID)
		assert.NotEmpty(t, saved.CreatedAt)
	}
	_, err := m.SavePlanRun(ctx, model.PlanRun{TenantID: "t_b", POICount: 9})
	require.NoError(t, err)

	page, next, err := m.ListPlanRuns(ctx, "t_a", "", 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 0, page[0].POICount)
	assert.NotEmpty(t, next)

	page, next, err = m.ListPlanRuns(ctx, "t_a", next, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, 2, page[0].POICount)

	page, next, err = m.ListPlanRuns(ctx, "t_a", next, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Empty(t, next)

	other, _, err := m.ListPlanRuns(ctx, "t_b", "", 10)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, 9, other[0].POICount)
}

func TestMemoryUnknownCursor(t *testing.T) {
	m := NewMemory()
	_, _, err := m.ListPlanRuns(context.Background(), "t_a", "missing", 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryEmptyTenant(t *testing.T) {
	m := NewMemory()
	items, next, err := m.ListPlanRuns(context.Background(), "t_none", "", 10)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Empty(t, next)
	assert.NoError(t, m.Ping(context.Background()))
}
