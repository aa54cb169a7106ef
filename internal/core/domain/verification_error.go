package domain

import "fmt"

// VerificationErrorKind classifies why an artifact could not be checked against the repository.
type VerificationErrorKind int

const (
	// VerifyURLParse means the search URL could not be built.
	VerifyURLParse VerificationErrorKind = iota + 1
	// VerifyBuildClient means the search request could not be constructed.
	VerifyBuildClient
	// VerifySendRequest means the search request failed or returned a non-success status.
	VerifySendRequest
	// VerifyParseResponse means the search response was not a valid result page.
	VerifyParseResponse
)

// String returns the kind name used in logs.
func (k VerificationErrorKind) String() string {
	switch k {
	case VerifyURLParse:
		return "url_parse"
	case VerifyBuildClient:
		return "build_client"
	case VerifySendRequest:
		return "send_request"
	case VerifyParseResponse:
		return "parse_response"
	default:
		return "invalid"
	}
}

// VerificationError is a per-item failure of the verification stage.
type VerificationError struct {
	Kind    VerificationErrorKind
	Name    string
	Version string
	Status  int
	Err     error
}

// NewVerificationError tags a cause with the artifact it failed for.
func NewVerificationError(kind VerificationErrorKind, a ResolvedArtifact, status int, cause error) *VerificationError {
	return &VerificationError{
		Kind:    kind,
		Name:    a.Name,
		Version: a.Version,
		Status:  status,
		Err:     cause,
	}
}

func (e *VerificationError) Error() string {
	var msg string
	switch e.Kind {
	case VerifyURLParse:
		msg = fmt.Sprintf("failed to build search url for gem %q version %q", e.Name, e.Version)
	case VerifyBuildClient:
		msg = fmt.Sprintf("failed to build search request for gem %q version %q", e.Name, e.Version)
	case VerifySendRequest:
		if e.Status != 0 {
			msg = fmt.Sprintf("repository search returned status %d for gem %q version %q", e.Status, e.Name, e.Version)
		} else {
			msg = fmt.Sprintf("failed to search repository for gem %q version %q", e.Name, e.Version)
		}
	default:
		msg = fmt.Sprintf("failed to parse repository response for gem %q version %q", e.Name, e.Version)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *VerificationError) Unwrap() error {
	return e.Err
}

// Is matches another VerificationError of the same kind.
func (e *VerificationError) Is(target error) bool {
	t, ok := target.(*VerificationError)
	return ok && t.Kind == e.Kind
}
