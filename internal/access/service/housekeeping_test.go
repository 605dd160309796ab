package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/opsdeskhq/opsdesk-access/internal/access/domain"
	"github.com/opsdeskhq/opsdesk-access/internal/access/store"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingSweepPrunesOnlyOldTerminalRequests(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	upgrade := &UpgradeService{Store: st}

	old, err := upgrade.Submit(ctx, "u1", domain.RoleHRManager, "old request")
	require.NoError(t, err)
	_, err = upgrade.Review(ctx, old.ID, "admin-1", domain.DecisionReject)
	require.NoError(t, err)

	pendingReq, err := upgrade.Submit(ctx, "u2", domain.RoleArchitect, "still open")
	require.NoError(t, err)

	hk := NewHousekeepingService(st, slog.Default(), time.Hour, 180*24*time.Hour)

	// A cutoff in the future stands in for a review older than the retention
	// window; the pending row must survive it regardless.
	hk.Retention = -time.Hour
	hk.sweep()

	_, err = st.Requests().GetByID(ctx, old.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Requests().GetByID(ctx, pendingReq.ID)
	require.NoError(t, err)
}

func TestHousekeepingStartStop(t *testing.T) {
	st := newTestStore(t)

	hk := NewHousekeepingService(st, slog.Default(), 50*time.Millisecond, time.Hour)
	hk.Start()
	time.Sleep(10 * time.Millisecond)
	hk.Stop()
}
