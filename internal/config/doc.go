// Package config defines runtime settings of project-banner and provides
// helpers to load, validate and save them in YAML format.
//
// Build metadata is not configurable here; it comes from the version package.
package config
