// Package pkg provides the core libraries for Stackbadge status badges.
//
// # Overview
//
// Stackbadge turns a short description of a badge ("build: passing", green)
// into a standalone SVG document in one of five shields-style looks. The pkg
// directory is organized into three areas:
//
//  1. Rendering - colors, font metrics, the markup tree and the layout engine
//  2. Assets - the icon catalog and the built-in font tables
//  3. Orchestration - manifests, batch runs, caching and hooks
//
// # Architecture
//
// The typical data flow through Stackbadge:
//
//	Badge (label, message, colors, style, logo)
//	         ↓
//	    [fonts] registry (measure text with per-code-point width tables)
//	         ↓
//	    [badge] renderer (style variant lays out the geometry)
//	         ↓
//	    [markup] tree (serialized with escaping)
//	         ↓
//	    SVG
//
// # Quick Start
//
// Render a badge with the built-in fonts:
//
//	import "github.com/matzehuels/stackbadge/pkg/badge"
//
//	svg, err := badge.MakeBadge(badge.Badge{
//	    Label:        "build",
//	    Message:      "passing",
//	    MessageColor: "#4c1",
//	    Style:        badge.FlatSquare,
//	})
//
// # Main Packages
//
// ## Rendering
//
// [color] - CSS color parsing (hex, rgb, rgba, hsl, hsla and names), the
// canonical shortest form, brightness and the text contrast pair.
//
// [fonts] - Width tables at a fixed pixel size, the table format, the name
// convention <family>-<size>px-<weight> and a concurrent-safe [fonts.Registry].
// [fonts/fontgen] measures TrueType fonts; [fonts/builtin] provides the
// default registry measured from the Go fonts.
//
// [markup] - A small element tree with text escaping, used for both the
// badges and the gallery page.
//
// [badge] - The layout engine: flat, flat-square, plastic, for-the-badge
// and social, plus links, logos and the gallery.
//
// ## Assets
//
// [icons] - A title-sorted catalog of SVG logos with fill substitution and
// data URI encoding.
//
// ## Orchestration
//
// [batch] - TOML and YAML manifests, validated and rendered on a bounded
// worker pool.
//
// [cache] - Render cache with null, memory and file implementations and
// deterministic keys.
//
// [observability] - Hooks for render, cache and batch events.
//
// [errors] - Coded errors shared by all packages.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/badge/...     # Specific package
//	go test -run Example ./...  # Examples only
//
// [color]: https://pkg.go.dev/github.com/matzehuels/stackbadge/pkg/color
// [fonts]: https://pkg.go.dev/github.com/matzehuels/stackbadge/pkg/fonts
// [fonts/fontgen]: https://pkg.go.dev/github.com/matzehuels/stackbadge/pkg/fonts/fontgen
// [fonts/builtin]: https://pkg.go.dev/github.com/matzehuels/stackbadge/pkg/fonts/builtin
// [fonts.Registry]: https://pkg.go.dev/github.com/matzehuels/stackbadge/pkg/fonts#Registry
// [markup]: https://pkg.go.dev/github.com/matzehuels/stackbadge/pkg/markup
// [badge]: https://pkg.go.dev/github.com/matzehuels/stackbadge/pkg/badge
// [icons]: https://pkg.go.dev/github.com/matzehuels/stackbadge/pkg/icons
// [batch]: https://pkg.go.dev/github.com/matzehuels/stackbadge/pkg/batch
// [cache]: https://pkg.go.dev/github.com/matzehuels/stackbadge/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/stackbadge/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/stackbadge/pkg/errors
package pkg
