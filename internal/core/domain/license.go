package domain

// LicenseKind distinguishes recognized license identifiers from free-form names.
type LicenseKind int

const (
	// LicenseKnown is a recognized SPDX license identifier.
	LicenseKnown LicenseKind = iota + 1
	// LicenseUnknown is a free-form license name that could not be recognized.
	LicenseUnknown
)

// License is either a recognized SPDX identifier or a free-form name.
type License struct {
	Kind  LicenseKind
	Value string
}

// KnownLicense returns a license for a recognized SPDX identifier.
func KnownLicense(id string) License {
	return License{Kind: LicenseKnown, Value: id}
}

// UnknownLicense returns a license carrying a raw, unrecognized name.
func UnknownLicense(name string) License {
	return License{Kind: LicenseUnknown, Value: name}
}

// IsKnown reports whether the license is a recognized SPDX identifier.
func (l License) IsKnown() bool {
	return l.Kind == LicenseKnown
}
