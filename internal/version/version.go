package version

import (
	"fmt"
	"strconv"

	"github.com/oshokin/project-banner/internal/domain/project"
)

var (
	// Name is the project name.
	Name = "project-banner"
	// VersionMajor is the major version component. It can be overridden via ldflags.
	VersionMajor = "1"
	// VersionMinor is the minor version component. It can be overridden via ldflags.
	VersionMinor = "0"
	// CompilationMode is "debug", "release" or anything else for a normal build.
	CompilationMode = "normal"
	// ApplicationName is the name of the shipped binary.
	ApplicationName = "project-banner"
	// ApplicationSummary is a one-line description of the shipped binary.
	ApplicationSummary = "Prints the build metadata baked into the binary."
	// GitBranch is the branch the binary was built from (or "unknown").
	GitBranch = "unknown"
	// GitSHA1 is the git SHA embedded at build time (or "none").
	GitSHA1 = "none"
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = "unknown"
)

// Current assembles the build metadata into a project.Info.
// Branch and SHA1 are passed through verbatim.
func Current() (project.Info, error) {
	major, err := strconv.Atoi(VersionMajor)
	if err != nil {
		return project.Info{}, fmt.Errorf("parse major version %q: %w", VersionMajor, err)
	}

	minor, err := strconv.Atoi(VersionMinor)
	if err != nil {
		return project.Info{}, fmt.Errorf("parse minor version %q: %w", VersionMinor, err)
	}

	return project.Info{
		Name: Name,
		Version: project.Version{
			Major: major,
			Minor: minor,
		},
		Mode: project.ParseCompilationMode(CompilationMode),
		Application: project.Application{
			Name:    ApplicationName,
			Summary: ApplicationSummary,
		},
		Git: project.Git{
			Branch: GitBranch,
			SHA1:   GitSHA1,
		},
	}, nil
}

// Short returns only the major.minor version string.
func Short() string {
	return VersionMajor + "." + VersionMinor
}

// Full returns a human-readable version string with commit and build time.
func Full() string {
	return fmt.Sprintf("version: %s, mode: %s, commit: %s, built at: %s",
		Short(), project.ParseCompilationMode(CompilationMode), GitSHA1, BuildTime)
}
