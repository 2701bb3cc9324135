// Package filesystem provides the filesystem abstraction used by the store.
// Production code runs on the OS filesystem; tests run against an afero
// in-memory filesystem through the same interface.
package filesystem

import "io/fs"

// FS is the minimal filesystem surface the store needs.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error
	Rename(oldpath, newpath string) error
	ReadDir(name string) ([]fs.DirEntry, error)
}
