// Package report prints stage summaries for the operator.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"go.trai.ch/gembom/internal/core/domain"
)

// AllPresentMessage is printed when verification found every artifact.
const AllPresentMessage = "All packages exist in the repository."

var missingHeader = []string{"Name", "Version", "PURL"}

// Reporter implements ports.Reporter with pterm printers.
type Reporter struct {
	w io.Writer
}

// New creates a Reporter writing to stdout.
func New() *Reporter {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a Reporter writing to w.
func NewWithWriter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Resolution prints how many pinned gems were resolved.
func (r *Reporter) Resolution(result domain.Partitioned[domain.ResolvedArtifact]) {
	if len(result.Failures) == 0 {
		r.print(pterm.Success.Sprintfln("Resolved %d of %d gems", len(result.Values), result.Total()))
		return
	}
	r.print(pterm.Warning.Sprintfln("Resolved %d of %d gems, %d failed",
		len(result.Values), result.Total(), len(result.Failures)))
}

// Verification prints the artifacts the repository does not hold.
func (r *Reporter) Verification(result domain.Partitioned[domain.VerificationResult]) {
	if len(result.Failures) > 0 {
		r.print(pterm.Warning.Sprintfln("Could not verify %d of %d gems", len(result.Failures), result.Total()))
	}

	missing := domain.Missing(result.Values)
	if len(missing) == 0 {
		r.print(pterm.Success.Sprintln(AllPresentMessage))
		return
	}

	data := pterm.TableData{missingHeader}
	for _, a := range missing {
		data = append(data, []string{a.Name, a.Version, a.PackageURL})
	}
	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed(true).
		WithData(data).
		Srender()
	if err != nil {
		// Fall back to one line per artifact.
		for _, a := range missing {
			r.print(fmt.Sprintf("%s %s %s\n", a.Name, a.Version, a.PackageURL))
		}
		return
	}

	r.print(pterm.Warning.Sprintfln("%d of %d gems are missing from the repository", len(missing), len(result.Values)))
	r.print(table + "\n")
}

// Written prints the location of the generated document.
func (r *Reporter) Written(path string) {
	r.print(pterm.Info.Sprintfln("Wrote %s", path))
}

func (r *Reporter) print(s string) {
	_, _ = io.WriteString(r.w, s)
}
