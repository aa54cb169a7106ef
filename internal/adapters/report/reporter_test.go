package report_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/gembom/internal/adapters/report"
	"go.trai.ch/gembom/internal/core/domain"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func artifact(name, version string) domain.ResolvedArtifact {
	return domain.ResolvedArtifact{
		Name:       name,
		Version:    version,
		PackageURL: domain.PackageURL(name, version, ""),
	}
}

func TestResolution(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewWithWriter(&buf)

	r.Resolution(domain.Partitioned[domain.ResolvedArtifact]{
		Values: []domain.ResolvedArtifact{artifact("rails", "7.1.1"), artifact("rack", "3.0.8")},
	})
	assert.Contains(t, buf.String(), "Resolved 2 of 2 gems")

	buf.Reset()
	r.Resolution(domain.Partitioned[domain.ResolvedArtifact]{
		Values:   []domain.ResolvedArtifact{artifact("rails", "7.1.1")},
		Failures: []error{errors.New("boom"), errors.New("bang")},
	})
	assert.Contains(t, buf.String(), "Resolved 1 of 3 gems, 2 failed")
}

func TestVerification_AllPresent(t *testing.T) {
	var buf bytes.Buffer
	report.NewWithWriter(&buf).Verification(domain.Partitioned[domain.VerificationResult]{
		Values: []domain.VerificationResult{
			{Artifact: artifact("rails", "7.1.1"), Exists: true},
		},
	})

	assert.Contains(t, buf.String(), report.AllPresentMessage)
	assert.NotContains(t, buf.String(), "Could not verify")
}

func TestVerification_ListsMissing(t *testing.T) {
	var buf bytes.Buffer
	report.NewWithWriter(&buf).Verification(domain.Partitioned[domain.VerificationResult]{
		Values: []domain.VerificationResult{
			{Artifact: artifact("rails", "7.1.1"), Exists: true},
			{Artifact: artifact("brakeman", "6.0.1"), Exists: false},
		},
		Failures: []error{errors.New("timeout")},
	})

	out := buf.String()
	assert.Contains(t, out, "Could not verify 1 of 3 gems")
	assert.Contains(t, out, "1 of 2 gems are missing from the repository")
	assert.Contains(t, out, "PURL")
	assert.Contains(t, out, "brakeman")
	assert.Contains(t, out, "pkg:gem/brakeman@6.0.1")
	assert.NotContains(t, out, "pkg:gem/rails@7.1.1")
	assert.NotContains(t, out, report.AllPresentMessage)
}

func TestWritten(t *testing.T) {
	var buf bytes.Buffer
	report.NewWithWriter(&buf).Written("out/bom.json")
	assert.Contains(t, buf.String(), "Wrote out/bom.json")
}
