// Package project defines the build metadata model: project identity and
// version, compilation mode, application summary and git provenance.
//
// All values are fixed before the process starts and are passed around by value.
package project
