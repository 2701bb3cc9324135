package testutil

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/fenestra-app/fenestra/pkg/filesystem"
	"github.com/fenestra-app/fenestra/pkg/paths"
	"github.com/fenestra-app/fenestra/pkg/store"
)

// MemStore returns a store over an in-memory filesystem, plus the fs and
// path layout backing it for direct inspection in tests.
func MemStore(t *testing.T, opts ...store.Option) (*store.Store, filesystem.FS, *paths.Paths) {
	t.Helper()

	fs := filesystem.NewAfero(afero.NewMemMapFs())
	p := paths.NewWithDataDir("/data/fenestra")
	return store.New(fs, p, opts...), fs, p
}

// TempStore returns a store over a real temporary directory, for tests that
// need OS-level rename and modification-time behavior.
func TempStore(t *testing.T, opts ...store.Option) (*store.Store, *paths.Paths) {
	t.Helper()

	p := paths.NewWithDataDir(t.TempDir())
	return store.New(filesystem.NewOS(), p, opts...), p
}
