// Package version exposes build metadata for the project.
//
// Variables such as Name, VersionMajor, CompilationMode and GitSHA1 are injected
// at build time via Go ldflags and default to sensible values for local builds:
//
//	go build -ldflags "-X github.com/oshokin/project-banner/internal/version.GitSHA1=$(git rev-parse HEAD)"
//
// Current assembles them into a project.Info; Short and Full render the
// version string for CLI output and logs.
package version
