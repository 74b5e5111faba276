package project

import (
	"fmt"
	"strings"
)

// CompilationMode describes the optimization posture the binary was built with.
type CompilationMode int

const (
	// ModeNormal is any build that is neither debug nor release.
	ModeNormal CompilationMode = iota
	// ModeDebug is a debug build.
	ModeDebug
	// ModeRelease is an optimized release build.
	ModeRelease
)

// String returns the display label of the mode.
// Values outside debug and release fall back to "normal".
func (m CompilationMode) String() string {
	switch m {
	case ModeDebug:
		return "debug"
	case ModeRelease:
		return "release"
	default:
		return "normal"
	}
}

// ParseCompilationMode maps a linker-supplied label to a CompilationMode.
// Unknown or empty labels map to ModeNormal.
func ParseCompilationMode(s string) CompilationMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return ModeDebug
	case "release":
		return ModeRelease
	default:
		return ModeNormal
	}
}

// Version is the major.minor pair of the project.
type Version struct {
	// Major is the major version component.
	Major int
	// Minor is the minor version component.
	Minor int
}

// String renders the version as "<major>.<minor>".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Application describes the binary shipped by the project.
type Application struct {
	// Name is the application name.
	Name string
	// Summary is a one-line description of the application.
	Summary string
}

// Git identifies the source revision the binary was built from.
type Git struct {
	// Branch is the branch name at build time.
	Branch string
	// SHA1 is the commit hash at build time.
	SHA1 string
}

// Info is the complete set of build metadata.
type Info struct {
	// Name is the project name.
	Name string
	// Version is the project version.
	Version Version
	// Mode is the compilation mode.
	Mode CompilationMode
	// Application describes the shipped binary.
	Application Application
	// Git holds the source-control provenance.
	Git Git
}
