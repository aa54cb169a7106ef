// Package license classifies free-form license strings reported by the registry.
package license

import (
	"bufio"
	_ "embed"
	"strings"

	"github.com/github/go-spdx/v2/spdxexp/spdxlicenses"
	"go.trai.ch/gembom/internal/core/domain"
)

// aliasList maps free-form names seen in gemspecs to SPDX identifiers.
//
//go:embed aliases.txt
var aliasList string

// Classifier implements ports.LicenseClassifier backed by the SPDX license list.
type Classifier struct {
	ids map[string]string
}

// New creates a Classifier with the SPDX identifiers and the embedded alias table.
func New() *Classifier {
	licenses := spdxlicenses.GetLicenses()
	c := &Classifier{ids: make(map[string]string, len(licenses))}

	for _, id := range licenses {
		c.ids[normalize(id)] = id
	}

	scanner := bufio.NewScanner(strings.NewReader(aliasList))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		alias, id, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		if canonical, known := c.ids[normalize(id)]; known {
			c.ids[normalize(alias)] = canonical
		}
	}

	return c
}

// Lookup returns the canonical SPDX identifier for raw, if recognized.
func (c *Classifier) Lookup(raw string) (string, bool) {
	id, ok := c.ids[normalize(raw)]
	return id, ok
}

// Classify reduces the raw license list to at most one license.
// The first recognized entry wins; otherwise the first non-blank entry is
// kept verbatim as an unknown license. Blank or empty lists yield nothing.
func (c *Classifier) Classify(raw []string) (domain.License, bool) {
	var firstName string
	for _, r := range raw {
		name := strings.TrimSpace(r)
		if name == "" {
			continue
		}
		if id, ok := c.Lookup(name); ok {
			return domain.KnownLicense(id), true
		}
		if firstName == "" {
			firstName = name
		}
	}
	if firstName == "" {
		return domain.License{}, false
	}
	return domain.UnknownLicense(firstName), true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
