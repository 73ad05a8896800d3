package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tdevries/vintedwatch/internal/metrics"
	notifyMocks "github.com/tdevries/vintedwatch/internal/notify/mocks"
	storeMocks "github.com/tdevries/vintedwatch/internal/store/mocks"
	vintedMocks "github.com/tdevries/vintedwatch/internal/vinted/mocks"
	domain "github.com/tdevries/vintedwatch/pkg/types"
)

func newTestScheduler(t *testing.T, st *storeMocks.MockStore, opts ...SchedulerOption) *Scheduler {
	t.Helper()

	eng := newTestEngine(st, vintedMocks.NewMockSource(t), notifyMocks.NewMockNotifier(t))
	sched, err := NewScheduler(eng, st, 5*time.Minute, quietLogger(), opts...)
	require.NoError(t, err)
	return sched
}

func TestNewScheduler_RegistersCronEntries(t *testing.T) {
	t.Parallel()

	sched := newTestScheduler(t, storeMocks.NewMockStore(t))

	entries := sched.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, sched.sweepEntryID, entries[0].ID)
}

func TestNewScheduler_RejectsNonPositiveInterval(t *testing.T) {
	t.Parallel()

	st := storeMocks.NewMockStore(t)
	eng := newTestEngine(st, vintedMocks.NewMockSource(t), notifyMocks.NewMockNotifier(t))

	_, err := NewScheduler(eng, st, 0, quietLogger())
	require.Error(t, err)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	sched := newTestScheduler(t, storeMocks.NewMockStore(t))

	sched.Start()
	sched.Start() // second call is a no-op

	stopCtx := sched.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop in time")
	}
}

func TestScheduler_SyncNextRunTimestamps(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	sched := newTestScheduler(t, storeMocks.NewMockStore(t), WithSchedulerMetrics(m))
	sched.Start()
	defer sched.Stop()

	sched.SyncNextRunTimestamps()

	families, err := reg.Gather()
	require.NoError(t, err)

	found := false
	for _, fam := range families {
		if fam.GetName() != "vw_scheduler_next_run_timestamp_seconds" {
			continue
		}
		for _, metric := range fam.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "job" && label.GetValue() == JobSweep {
					found = true
					assert.Greater(t, metric.GetGauge().GetValue(), float64(time.Now().Unix()-1))
				}
			}
		}
	}
	assert.True(t, found, "expected a next-run gauge for the sweep job")
}

func TestScheduler_RunJob_Success(t *testing.T) {
	t.Parallel()

	st := storeMocks.NewMockStore(t)
	sched := newTestScheduler(t, st)

	st.EXPECT().
		AcquireSchedulerLock(mock.Anything, "sweep", sched.holder, 10*time.Minute).
		Return(true, nil)
	st.EXPECT().InsertJobRun(mock.Anything, "sweep").Return("run-1", nil)
	st.EXPECT().CompleteJobRun(mock.Anything, "run-1", "succeeded", "", 3).Return(nil)
	st.EXPECT().ReleaseSchedulerLock(mock.Anything, "sweep", sched.holder).Return(nil)

	err := sched.runJob(context.Background(), JobSweep, 10*time.Minute,
		func(context.Context) (int, error) {
			return 3, nil
		})
	require.NoError(t, err)
}

func TestScheduler_RunJob_Failure(t *testing.T) {
	t.Parallel()

	st := storeMocks.NewMockStore(t)
	sched := newTestScheduler(t, st)

	st.EXPECT().
		AcquireSchedulerLock(mock.Anything, "sweep", sched.holder, 10*time.Minute).
		Return(true, nil)
	st.EXPECT().InsertJobRun(mock.Anything, "sweep").Return("run-2", nil)
	st.EXPECT().
		CompleteJobRun(mock.Anything, "run-2", "failed", "listing watches: connection refused", 0).
		Return(nil)
	st.EXPECT().ReleaseSchedulerLock(mock.Anything, "sweep", sched.holder).Return(nil)

	err := sched.runJob(context.Background(), JobSweep, 10*time.Minute,
		func(context.Context) (int, error) {
			return 0, errors.New("listing watches: connection refused")
		})
	require.Error(t, err)
}

func TestScheduler_RunJob_LockHeldElsewhere(t *testing.T) {
	t.Parallel()

	st := storeMocks.NewMockStore(t)
	sched := newTestScheduler(t, st)

	st.EXPECT().
		AcquireSchedulerLock(mock.Anything, "sweep", sched.holder, 10*time.Minute).
		Return(false, nil)

	ran := false
	err := sched.runJob(context.Background(), JobSweep, 10*time.Minute,
		func(context.Context) (int, error) {
			ran = true
			return 0, nil
		})
	require.NoError(t, err)
	assert.False(t, ran, "job body must not run without the lock")
}

func TestScheduler_RunJob_LockError(t *testing.T) {
	t.Parallel()

	st := storeMocks.NewMockStore(t)
	sched := newTestScheduler(t, st)

	st.EXPECT().
		AcquireSchedulerLock(mock.Anything, "sweep", sched.holder, 10*time.Minute).
		Return(false, errors.New("connection refused"))

	err := sched.runJob(context.Background(), JobSweep, 10*time.Minute,
		func(context.Context) (int, error) {
			return 0, nil
		})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "acquiring lock")
}

func TestScheduler_RunJob_ReleasesLockOnInsertFailure(t *testing.T) {
	t.Parallel()

	st := storeMocks.NewMockStore(t)
	sched := newTestScheduler(t, st)

	st.EXPECT().
		AcquireSchedulerLock(mock.Anything, "sweep", sched.holder, 10*time.Minute).
		Return(true, nil)
	st.EXPECT().InsertJobRun(mock.Anything, "sweep").Return("", errors.New("connection refused"))
	st.EXPECT().ReleaseSchedulerLock(mock.Anything, "sweep", sched.holder).Return(nil)

	err := sched.runJob(context.Background(), JobSweep, 10*time.Minute,
		func(context.Context) (int, error) {
			return 0, nil
		})
	require.Error(t, err)
}

func TestScheduler_SweepTick_RecordsNotifiedCount(t *testing.T) {
	t.Parallel()

	st := storeMocks.NewMockStore(t)
	sched := newTestScheduler(t, st)

	st.EXPECT().
		AcquireSchedulerLock(mock.Anything, "sweep", sched.holder, 10*time.Minute).
		Return(true, nil)
	st.EXPECT().InsertJobRun(mock.Anything, "sweep").Return("run-3", nil)
	st.EXPECT().ListWatches(mock.Anything, true).Return([]domain.Watch{}, nil)
	st.EXPECT().CompleteJobRun(mock.Anything, "run-3", "succeeded", "", 0).Return(nil)
	st.EXPECT().ReleaseSchedulerLock(mock.Anything, "sweep", sched.holder).Return(nil)

	sched.sweepTick()
}

func TestScheduler_RecoverStaleJobRuns(t *testing.T) {
	t.Parallel()

	st := storeMocks.NewMockStore(t)
	sched := newTestScheduler(t, st)

	st.EXPECT().RecoverStaleJobRuns(mock.Anything, 2*time.Hour).Return(2, nil)
	require.NoError(t, sched.RecoverStaleJobRuns(context.Background()))
}

func TestScheduler_RecoverStaleJobRuns_Error(t *testing.T) {
	t.Parallel()

	st := storeMocks.NewMockStore(t)
	sched := newTestScheduler(t, st)

	st.EXPECT().
		RecoverStaleJobRuns(mock.Anything, 2*time.Hour).
		Return(0, errors.New("connection refused"))

	err := sched.RecoverStaleJobRuns(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recovering stale job runs")
}
