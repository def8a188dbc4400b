package theme

import "embed"

// EmbeddedThemes holds the built-in theme files under defaults/.
//
//go:embed defaults/*.theme
var EmbeddedThemes embed.FS
