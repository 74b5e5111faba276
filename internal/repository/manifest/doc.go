// Package manifest persists project build metadata as a YAML manifest.
//
// The FileRepository lets a binary render metadata produced by an external
// build step instead of the values linked into it, and can export the linked
// values for that step to consume.
package manifest
