// Package model defines the data structures exchanged between the resolver components.
package model

// Path represents a file system path.
type Path string

// Platform identifies a build target platform (Win64, Linux, Mac, ...).
type Platform string

// Well-known platforms.
const (
	PlatformWin64 Platform = "Win64"
	PlatformLinux Platform = "Linux"
	PlatformMac   Platform = "Mac"
)

// Role tags what a resolved path is expected to be.
type Role string

const (
	// RoleHeader is a C/C++ interface header.
	RoleHeader Role = "header"
	// RoleImportLibrary is a link-time import library.
	RoleImportLibrary Role = "import-library"
	// RoleRuntimeLibrary is the shared library loaded at runtime.
	RoleRuntimeLibrary Role = "runtime-library"
	// RoleDirectory is a directory of the SDK layout.
	RoleDirectory Role = "directory"
)

// Label returns the human readable name of the role.
func (r Role) Label() string {
	switch r {
	case RoleHeader:
		return "header"
	case RoleImportLibrary:
		return "import library"
	case RoleRuntimeLibrary:
		return "runtime library"
	case RoleDirectory:
		return "directory"
	}

	return string(r)
}

// ResolvedPath is an absolute path together with its role.
type ResolvedPath struct {
	Path Path `json:"path" yaml:"path"`
	Role Role `json:"role" yaml:"role"`
}
