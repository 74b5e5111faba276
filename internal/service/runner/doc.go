// Package runner implements the default project-banner run: print the build
// metadata banner, call foo(1, 2) and hand its result back as the exit status.
package runner
