package overlay

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/fenestra-app/fenestra/pkg/errors"
	"github.com/fenestra-app/fenestra/pkg/logging"
)

// Lifecycle is the two-state visibility controller for the quick pane.
// The previous-focus-holder slot is set only on the hidden-to-visible
// transition and consumed only on dismissal. A mutex makes each operation,
// including the check-then-act inside Toggle, a single uninterruptible unit.
type Lifecycle struct {
	mu      sync.Mutex
	surface Surface
	tracker FocusTracker
	prevPID atomic.Int32
	logger  zerolog.Logger
}

// New creates a Lifecycle for the given surface. tracker may be nil on
// platforms without foreground-process support.
func New(surface Surface, tracker FocusTracker) *Lifecycle {
	l := &Lifecycle{
		surface: surface,
		tracker: tracker,
		logger:  logging.GetLogger("overlay"),
	}
	l.prevPID.Store(int32(NoProcess))
	return l
}

// Show makes the quick pane visible and gives it input focus. If the pane
// was hidden, the current foreground process is captured first so Dismiss
// can hand focus back. Re-showing an already visible pane re-asserts focus
// but does not re-capture.
func (l *Lifecycle) Show() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.show()
}

// Hide makes the quick pane invisible. The previous-focus-holder slot is
// left untouched.
func (l *Lifecycle) Hide() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logger.Info().Msg("Hiding quick pane")
	if err := l.surface.Hide(); err != nil {
		return errors.Wrap(err, errors.ErrSurface, "failed to hide quick pane")
	}
	return nil
}

// Dismiss hides the quick pane and hands focus back to whichever process was
// foreground when it was shown. The slot is reset to the sentinel whether or
// not reactivation succeeds, so a later unrelated dismiss can never restore
// a stale holder.
func (l *Lifecycle) Dismiss() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dismiss()
}

// Toggle shows the pane when hidden and dismisses it when visible. The
// visibility check and the resulting action run under the same lock, so no
// other operation can interleave between them.
func (l *Lifecycle) Toggle() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logger.Info().Msg("Toggling quick pane")
	visible, err := l.surface.IsVisible()
	if err != nil {
		return errors.Wrap(err, errors.ErrSurface, "failed to check quick pane visibility")
	}

	if visible {
		return l.dismiss()
	}
	return l.show()
}

func (l *Lifecycle) show() error {
	l.logger.Info().Msg("Showing quick pane")

	visible, err := l.surface.IsVisible()
	if err != nil {
		return errors.Wrap(err, errors.ErrSurface, "failed to check quick pane visibility")
	}
	if !visible {
		l.capturePrevious()
	}

	if err := l.surface.Show(); err != nil {
		return errors.Wrap(err, errors.ErrSurface, "failed to show quick pane")
	}
	if err := l.surface.SetFocus(); err != nil {
		return errors.Wrap(err, errors.ErrSurface, "failed to focus quick pane")
	}

	l.logger.Debug().Msg("Quick pane shown")
	return nil
}

func (l *Lifecycle) dismiss() error {
	l.logger.Info().Msg("Dismissing quick pane")

	if err := l.surface.Hide(); err != nil {
		return errors.Wrap(err, errors.ErrSurface, "failed to hide quick pane")
	}

	l.restorePrevious()
	return nil
}

// capturePrevious records the current foreground process. Capture is
// best-effort: no queryable foreground process simply leaves the sentinel.
func (l *Lifecycle) capturePrevious() {
	if l.tracker == nil {
		return
	}
	if pid, ok := l.tracker.ForegroundProcess(); ok {
		l.prevPID.Store(int32(pid))
		l.logger.Debug().Int32("pid", int32(pid)).Msg("Captured previous app")
	}
}

// restorePrevious consumes the slot and tries to reactivate its process.
// A holder that exited between capture and restore is skipped, not an error.
func (l *Lifecycle) restorePrevious() {
	pid := ProcessID(l.prevPID.Swap(int32(NoProcess)))
	if pid == NoProcess || l.tracker == nil {
		return
	}

	if l.tracker.Reactivate(pid) {
		l.logger.Debug().Int32("pid", int32(pid)).Msg("Reactivated previous app")
	} else {
		l.logger.Debug().Int32("pid", int32(pid)).Msg("Previous app no longer running")
	}
}
