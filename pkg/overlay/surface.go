// Package overlay manages the show/hide lifecycle of the quick-pane surface
// and remembers which external process held input focus before the pane
// appeared, so focus can be handed back on dismissal.
package overlay

// ProcessID identifies an external OS process. It is a lookup key only,
// never an owning handle.
type ProcessID int32

// NoProcess is the sentinel meaning "no previous focus holder recorded".
const NoProcess ProcessID = -1

// Surface is the single auxiliary on-screen element whose visibility and
// focus this package manages. The host windowing toolkit provides it; the
// surface owns the ground truth for visibility.
type Surface interface {
	Show() error
	Hide() error
	SetFocus() error
	IsVisible() (bool, error)
}

// FocusTracker is the platform capability for querying and restoring the
// foreground process. Platforms without it pass a nil tracker and the
// lifecycle degrades to plain visibility control.
type FocusTracker interface {
	// ForegroundProcess returns the currently focused process, if any.
	ForegroundProcess() (ProcessID, bool)

	// Reactivate brings the given process back to the foreground and
	// reports whether it succeeded.
	Reactivate(pid ProcessID) bool
}
