// Package gamedata provides the embedded level catalogue and utilities for loading it.
package gamedata

import "embed"

// dataFS embeds the level definitions at build time.
//
//go:embed *.json
var dataFS embed.FS
