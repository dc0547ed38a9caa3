// Package entry holds the immutable snapshot taken of each directory item
// during a listing.
package entry

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/dir-tree/internal/utils"
)

// Type is the kind of filesystem object an Entry refers to.
type Type int

const (
	File Type = iota
	Dir
	Symlink
)

func (t Type) String() string {
	switch t {
	case Dir:
		return "directory"
	case Symlink:
		return "symlink"
	default:
		return "file"
	}
}

// Entry is one item of a directory listing. Symlinks are never followed.
type Entry struct {
	name string
	path string
	typ  Type
}

// LstatFunc reads file info without following symlinks, like os.Lstat.
type LstatFunc func(path string) (fs.FileInfo, error)

// New snapshots the item called name found in parent. Its type comes from
// lstat (os.Lstat when nil), so symlinks are never followed. It fails when
// the type cannot be determined.
func New(parent, name string, lstat LstatFunc) (Entry, error) {
	if lstat == nil {
		lstat = os.Lstat
	}

	path := Join(parent, name)
	info, err := lstat(path)
	if err != nil {
		return Entry{}, &utils.IOError{Op: "determine file type of", Path: path, Err: err}
	}
	return Of(path, typeOf(info.Mode())), nil
}

// Of builds an Entry for path without touching the filesystem.
func Of(path string, typ Type) Entry {
	return Entry{name: filepath.Base(path), path: path, typ: typ}
}

func typeOf(mode fs.FileMode) Type {
	switch {
	case mode&fs.ModeSymlink != 0:
		return Symlink
	case mode.IsDir():
		return Dir
	default:
		return File
	}
}

// Join appends name to dir without cleaning dir, so a root given as "./x"
// keeps its leading "./" the way tree prints it with -f.
func Join(dir, name string) string {
	if dir == "" {
		return name
	}
	if strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}

func (e Entry) Name() string { return e.name }
func (e Entry) Path() string { return e.path }
func (e Entry) Type() Type   { return e.typ }

// IsDir reports whether the entry is a directory. Symlinks to directories are
// not directories.
func (e Entry) IsDir() bool { return e.typ == Dir }

// IsHidden reports whether the name starts with a dot.
func (e Entry) IsHidden() bool { return strings.HasPrefix(e.name, ".") }
