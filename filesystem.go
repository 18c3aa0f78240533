package imginline

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FileSystem is the read side of the filesystem the Inliner checks images against.
// A path exists when Stat succeeds; its size is FileInfo.Size.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}

// OSFileSystem reads from the host filesystem.
type OSFileSystem struct{}

// Compile-time interface implementation checks.
var (
	_ FileSystem = OSFileSystem{}
	_ FileSystem = (*ioFS)(nil)
)

// Stat implements FileSystem.
func (OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile implements FileSystem.
func (OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) // #nosec G304 -- image paths come from the document being processed
}

// FromFS adapts an io/fs tree (embed.FS, os.DirFS, fstest.MapFS) to FileSystem.
// Paths are cleaned and a leading "./" is dropped; paths that escape the
// tree or are absolute report fs.ErrNotExist.
func FromFS(fsys fs.FS) FileSystem {
	return &ioFS{fsys: fsys}
}

type ioFS struct {
	fsys fs.FS
}

func (f *ioFS) Stat(name string) (fs.FileInfo, error) {
	clean, err := f.clean("stat", name)
	if err != nil {
		return nil, err
	}
	return fs.Stat(f.fsys, clean)
}

func (f *ioFS) ReadFile(name string) ([]byte, error) {
	clean, err := f.clean("read", name)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(f.fsys, clean)
}

func (f *ioFS) clean(op, name string) (string, error) {
	slashed := filepath.ToSlash(name)
	if strings.HasPrefix(slashed, "/") {
		return "", &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}
	clean := path.Clean(slashed)
	if !fs.ValidPath(clean) {
		return "", &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}
	return clean, nil
}
