package ports

import "go.trai.ch/gembom/internal/core/domain"

// LicenseClassifier maps raw license strings to a license entry.
//
//go:generate mockgen -source=license.go -destination=mocks/mock_license.go -package=mocks
type LicenseClassifier interface {
	// Classify returns false when raw holds no usable license string.
	Classify(raw []string) (domain.License, bool)
}
