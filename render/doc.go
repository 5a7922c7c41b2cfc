// Package render draws puzzle states as SVG images.
//
// Tiles are grouped by a Label (computed from each tile's solved
// position) and painted by a Coloring that maps label groups to colors.
// The label and coloring names accepted by the CLI are parsed with
// ParseLabel and ParseColoring.
package render
