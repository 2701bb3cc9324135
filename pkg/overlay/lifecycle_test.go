package overlay_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fenestra-app/fenestra/pkg/errors"
	"github.com/fenestra-app/fenestra/pkg/overlay"
	"github.com/fenestra-app/fenestra/pkg/testutil"
)

func TestShowCapturesForegroundAndFocuses(t *testing.T) {
	surface := testutil.NewFakeSurface()
	tracker := testutil.NewFakeTracker(4242)
	l := overlay.New(surface, tracker)

	require.NoError(t, l.Show())

	assert.True(t, surface.Visible())
	assert.Equal(t, 1, surface.ShowCalls)
	assert.Equal(t, 1, surface.SetFocusCalls)
}

func TestShowWhileVisibleReassertsFocusWithoutRecapture(t *testing.T) {
	surface := testutil.NewFakeSurface()
	tracker := testutil.NewFakeTracker(100)
	l := overlay.New(surface, tracker)

	require.NoError(t, l.Show())

	// The foreground app changes while the pane is up; re-show must not
	// replace the captured holder.
	tracker.Foreground = 200
	require.NoError(t, l.Show())
	assert.Equal(t, 2, surface.SetFocusCalls)

	require.NoError(t, l.Dismiss())
	assert.Equal(t, []overlay.ProcessID{100}, tracker.ReactivatedPIDs())
}

func TestDismissRestoresPreviousFocusHolder(t *testing.T) {
	surface := testutil.NewFakeSurface()
	tracker := testutil.NewFakeTracker(777)
	l := overlay.New(surface, tracker)

	require.NoError(t, l.Show())
	require.NoError(t, l.Dismiss())

	assert.False(t, surface.Visible())
	assert.Equal(t, []overlay.ProcessID{777}, tracker.ReactivatedPIDs())
}

func TestDismissClearsHolderEvenWhenReactivationFails(t *testing.T) {
	surface := testutil.NewFakeSurface()
	tracker := testutil.NewFakeTracker(777)
	tracker.Running = false // process exited between capture and restore
	l := overlay.New(surface, tracker)

	require.NoError(t, l.Show())
	require.NoError(t, l.Dismiss())
	assert.Equal(t, []overlay.ProcessID{777}, tracker.ReactivatedPIDs())

	// A later cycle with no queryable foreground must not replay the
	// stale holder: the slot was reset even though reactivation failed.
	tracker.HasForeground = false
	require.NoError(t, l.Show())
	require.NoError(t, l.Dismiss())
	assert.Equal(t, []overlay.ProcessID{777}, tracker.ReactivatedPIDs())
}

func TestDismissWithoutShowDoesNotReactivate(t *testing.T) {
	surface := testutil.NewFakeSurface()
	tracker := testutil.NewFakeTracker(777)
	l := overlay.New(surface, tracker)

	require.NoError(t, l.Dismiss())
	assert.Empty(t, tracker.ReactivatedPIDs())
}

func TestHideLeavesHolderForLaterDismiss(t *testing.T) {
	surface := testutil.NewFakeSurface()
	tracker := testutil.NewFakeTracker(55)
	l := overlay.New(surface, tracker)

	require.NoError(t, l.Show())
	require.NoError(t, l.Hide())
	assert.Empty(t, tracker.ReactivatedPIDs())

	require.NoError(t, l.Dismiss())
	assert.Equal(t, []overlay.ProcessID{55}, tracker.ReactivatedPIDs())
}

func TestShowWithoutQueryableForeground(t *testing.T) {
	surface := testutil.NewFakeSurface()
	tracker := testutil.NewFakeTracker(0)
	tracker.HasForeground = false
	l := overlay.New(surface, tracker)

	require.NoError(t, l.Show())
	require.NoError(t, l.Dismiss())
	assert.Empty(t, tracker.ReactivatedPIDs())
}

func TestNilTrackerDegradesToPlainVisibility(t *testing.T) {
	surface := testutil.NewFakeSurface()
	l := overlay.New(surface, nil)

	require.NoError(t, l.Show())
	assert.True(t, surface.Visible())
	require.NoError(t, l.Dismiss())
	assert.False(t, surface.Visible())
	require.NoError(t, l.Toggle())
	assert.True(t, surface.Visible())
}

func TestToggleFromHiddenBehavesLikeShow(t *testing.T) {
	surface := testutil.NewFakeSurface()
	tracker := testutil.NewFakeTracker(31)
	l := overlay.New(surface, tracker)

	require.NoError(t, l.Toggle())

	assert.True(t, surface.Visible())
	assert.Equal(t, 1, surface.SetFocusCalls)

	require.NoError(t, l.Dismiss())
	assert.Equal(t, []overlay.ProcessID{31}, tracker.ReactivatedPIDs())
}

func TestToggleFromVisibleBehavesLikeDismiss(t *testing.T) {
	surface := testutil.NewFakeSurface()
	tracker := testutil.NewFakeTracker(31)
	l := overlay.New(surface, tracker)

	require.NoError(t, l.Show())
	require.NoError(t, l.Toggle())

	assert.False(t, surface.Visible())
	assert.Equal(t, []overlay.ProcessID{31}, tracker.ReactivatedPIDs())
}

func TestSurfaceFailuresSurfaceAsErrors(t *testing.T) {
	boom := fmt.Errorf("platform refused")

	t.Run("show", func(t *testing.T) {
		surface := testutil.NewFakeSurface()
		surface.ShowErr = boom
		l := overlay.New(surface, nil)
		assert.True(t, errors.IsErrorCode(l.Show(), errors.ErrSurface))
	})

	t.Run("hide", func(t *testing.T) {
		surface := testutil.NewFakeSurface()
		surface.HideErr = boom
		l := overlay.New(surface, nil)
		assert.True(t, errors.IsErrorCode(l.Hide(), errors.ErrSurface))
	})

	t.Run("toggle visibility query", func(t *testing.T) {
		surface := testutil.NewFakeSurface()
		surface.IsVisibleErr = boom
		l := overlay.New(surface, nil)
		assert.True(t, errors.IsErrorCode(l.Toggle(), errors.ErrSurface))
	})
}

func TestConcurrentTogglesStaySequential(t *testing.T) {
	surface := testutil.NewFakeSurface()
	tracker := testutil.NewFakeTracker(9)
	l := overlay.New(surface, tracker)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.Toggle()
		}()
	}
	wg.Wait()

	// An even number of toggles from hidden always lands back on hidden.
	assert.False(t, surface.Visible())
	// Every dismissal restored the same holder; none replayed a stale one.
	for _, pid := range tracker.ReactivatedPIDs() {
		assert.Equal(t, overlay.ProcessID(9), pid)
	}
}
