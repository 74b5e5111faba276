// Package banner renders project build metadata.
//
// Render produces the welcome banner printed on every run. RenderTable,
// RenderJSON and RenderYAML back the info subcommand.
package banner
