// Package bundler reads pinned gems from a Bundler lockfile.
package bundler

import (
	"regexp"
	"strings"

	"go.trai.ch/gembom/internal/core/domain"
)

const gemSection = "GEM"

var (
	sectionRe = regexp.MustCompile(`^[A-Z]+$`)
	specRe    = regexp.MustCompile(`^\s{4}(\S+?)\s+?\((\S+?)\)$`)
)

// Parser implements ports.LockfileParser for Gemfile.lock.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse returns the gems pinned under the GEM section, in lockfile order.
// Only top-level specs (four-space indent) are collected; their dependency
// constraints are indented further and ignored. Parsing stops at the first
// section following GEM.
func (p *Parser) Parse(content string) []domain.PinnedSource {
	var (
		sources []domain.PinnedSource
		inGems  bool
	)

	for line := range strings.Lines(content) {
		line = strings.TrimRight(line, "\r\n")

		if sectionRe.MatchString(line) {
			if line == gemSection {
				inGems = true
				continue
			}
			if inGems {
				break
			}
			continue
		}

		if !inGems {
			continue
		}
		m := specRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		version, platform := splitPlatform(m[2])
		sources = append(sources, domain.PinnedSource{
			Name:     m[1],
			Version:  version,
			Platform: platform,
		})
	}

	return sources
}

// splitPlatform splits "1.16.5-arm64-darwin" at the first dash.
func splitPlatform(s string) (string, string) {
	version, platform, _ := strings.Cut(s, "-")
	return version, platform
}
