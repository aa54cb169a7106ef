// Package cyclonedx serializes resolved artifacts as CycloneDX 1.5 documents.
package cyclonedx

import (
	"bytes"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/google/uuid"
	"go.trai.ch/gembom/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	bomVersion   = 1
	jsonSchema   = "http://cyclonedx.org/schema/bom-1.5.schema.json"
	xmlNamespace = "http://cyclonedx.org/schema/bom/1.5"
)

// Encoder implements ports.Encoder.
type Encoder struct {
	serial func() string
}

// New creates an Encoder that stamps each document with a fresh random serial number.
func New() *Encoder {
	return NewWithSerial(func() string {
		return "urn:uuid:" + uuid.NewString()
	})
}

// NewWithSerial creates an Encoder with a custom serial number source.
func NewWithSerial(serial func() string) *Encoder {
	return &Encoder{serial: serial}
}

// Encode renders artifacts in the requested format.
// The document always carries a components list, empty when nothing resolved.
func (e *Encoder) Encode(artifacts []domain.ResolvedArtifact, format domain.Format) ([]byte, error) {
	var fileFormat cdx.BOMFileFormat
	switch format {
	case domain.FormatJSON:
		fileFormat = cdx.BOMFileFormatJSON
	case domain.FormatXML:
		fileFormat = cdx.BOMFileFormatXML
	default:
		return nil, zerr.With(domain.ErrUnsupportedFormat, "format", string(format))
	}

	components := make([]cdx.Component, 0, len(artifacts))
	for _, a := range artifacts {
		components = append(components, component(a))
	}

	// The schema version is set here instead of through EncodeVersion, whose
	// conversion drops an empty components list.
	bom := &cdx.BOM{
		XMLNS:        xmlNamespace,
		JSONSchema:   jsonSchema,
		BOMFormat:    cdx.BOMFormat,
		SpecVersion:  cdx.SpecVersion1_5,
		SerialNumber: e.serial(),
		Version:      bomVersion,
		Components:   &components,
	}

	var buf bytes.Buffer
	enc := cdx.NewBOMEncoder(&buf, fileFormat).
		SetPretty(true).
		SetEscapeHTML(false)
	if err := enc.Encode(bom); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEncodeDocument.Error()), "format", string(format))
	}
	return buf.Bytes(), nil
}

func component(a domain.ResolvedArtifact) cdx.Component {
	c := cdx.Component{
		Type:        cdx.ComponentTypeLibrary,
		Author:      a.Author,
		Name:        a.Name,
		Version:     a.Version,
		Description: a.Description,
		Hashes: &[]cdx.Hash{{
			Algorithm: cdx.HashAlgorithm(a.Hash.Algorithm),
			Value:     a.Hash.Content,
		}},
		PackageURL: a.PackageURL,
	}
	if a.License != nil {
		l := &cdx.License{Name: a.License.Value}
		if a.License.IsKnown() {
			l = &cdx.License{ID: a.License.Value}
		}
		c.Licenses = &cdx.Licenses{{License: l}}
	}
	return c
}
