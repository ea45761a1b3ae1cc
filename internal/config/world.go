package config

import (
	_ "embed"
	"strings"
)

//go:embed defaults/world.yaml
var defaultWorldYAML []byte

// WorldLayout is a set of ASCII page layouts. Each row is one tile row,
// top row first: '#' solid, '^' hazard, '>' boost, anything else empty.
type WorldLayout struct {
	Pages []PageLayout `yaml:"pages"`
}

// PageLayout is one named page.
type PageLayout struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// DefaultWorldLayout returns a single flat page used when the embedded
// layouts cannot be parsed.
func DefaultWorldLayout() WorldLayout {
	rows := make([]string, 16)
	for i := range rows {
		switch {
		case i >= 14:
			rows[i] = strings.Repeat("#", 48)
		default:
			rows[i] = strings.Repeat(".", 48)
		}
	}
	return WorldLayout{Pages: []PageLayout{{Name: "flat", Rows: rows}}}
}
