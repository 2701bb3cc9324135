// Package testutil provides fakes and fixtures shared by package tests.
package testutil

import (
	"sync"

	"github.com/fenestra-app/fenestra/pkg/overlay"
)

// FakeSurface is an in-memory overlay.Surface that records every call.
type FakeSurface struct {
	mu      sync.Mutex
	visible bool

	ShowCalls     int
	HideCalls     int
	SetFocusCalls int

	// Injectable failures
	ShowErr      error
	HideErr      error
	SetFocusErr  error
	IsVisibleErr error
}

// NewFakeSurface returns a hidden fake surface.
func NewFakeSurface() *FakeSurface {
	return &FakeSurface{}
}

func (f *FakeSurface) Show() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ShowCalls++
	if f.ShowErr != nil {
		return f.ShowErr
	}
	f.visible = true
	return nil
}

func (f *FakeSurface) Hide() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.HideCalls++
	if f.HideErr != nil {
		return f.HideErr
	}
	f.visible = false
	return nil
}

func (f *FakeSurface) SetFocus() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SetFocusCalls++
	return f.SetFocusErr
}

func (f *FakeSurface) IsVisible() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.IsVisibleErr != nil {
		return false, f.IsVisibleErr
	}
	return f.visible, nil
}

// Visible reports the fake's current visibility without an error path.
func (f *FakeSurface) Visible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visible
}

// FakeTracker is an in-memory overlay.FocusTracker. Foreground is the
// process reported as focused; setting HasForeground to false simulates a
// platform with nothing queryable in front.
type FakeTracker struct {
	mu sync.Mutex

	Foreground    overlay.ProcessID
	HasForeground bool

	// Running controls whether Reactivate succeeds.
	Running bool

	Reactivated []overlay.ProcessID
}

// NewFakeTracker returns a tracker reporting pid as the foreground process.
func NewFakeTracker(pid overlay.ProcessID) *FakeTracker {
	return &FakeTracker{Foreground: pid, HasForeground: true, Running: true}
}

func (f *FakeTracker) ForegroundProcess() (overlay.ProcessID, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Foreground, f.HasForeground
}

func (f *FakeTracker) Reactivate(pid overlay.ProcessID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Reactivated = append(f.Reactivated, pid)
	return f.Running
}

// ReactivatedPIDs returns a copy of every pid passed to Reactivate.
func (f *FakeTracker) ReactivatedPIDs() []overlay.ProcessID {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]overlay.ProcessID, len(f.Reactivated))
	copy(out, f.Reactivated)
	return out
}
