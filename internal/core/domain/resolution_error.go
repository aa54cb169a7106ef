package domain

import "fmt"

// ResolutionErrorKind classifies why a gem could not be resolved.
type ResolutionErrorKind int

const (
	// ResolveSendRequest means the request could not be sent or no response arrived.
	ResolveSendRequest ResolutionErrorKind = iota + 1
	// ResolveParseResponse means the registry body was not a valid version listing.
	ResolveParseResponse
	// ResolveVersionNotFound means the gem exists but not at the pinned version and platform.
	ResolveVersionNotFound
	// ResolvePackageNotFound means the registry does not know the gem (HTTP 404).
	ResolvePackageNotFound
	// ResolveClientError means the registry answered with another 4xx status.
	ResolveClientError
	// ResolveServerError means the registry answered with a 5xx status.
	ResolveServerError
	// ResolveUnknown means the registry answered with an unexpected status.
	ResolveUnknown
)

// String returns the kind name used in logs.
func (k ResolutionErrorKind) String() string {
	switch k {
	case ResolveSendRequest:
		return "send_request"
	case ResolveParseResponse:
		return "parse_response"
	case ResolveVersionNotFound:
		return "version_not_found"
	case ResolvePackageNotFound:
		return "package_not_found"
	case ResolveClientError:
		return "client_error"
	case ResolveServerError:
		return "server_error"
	case ResolveUnknown:
		return "unknown_error"
	default:
		return "invalid"
	}
}

var (
	// ErrSendRequest matches resolution failures of kind ResolveSendRequest via errors.Is.
	ErrSendRequest = &ResolutionError{Kind: ResolveSendRequest}
	// ErrParseResponse matches resolution failures of kind ResolveParseResponse via errors.Is.
	ErrParseResponse = &ResolutionError{Kind: ResolveParseResponse}
	// ErrVersionNotFound matches resolution failures of kind ResolveVersionNotFound via errors.Is.
	ErrVersionNotFound = &ResolutionError{Kind: ResolveVersionNotFound}
	// ErrPackageNotFound matches resolution failures of kind ResolvePackageNotFound via errors.Is.
	ErrPackageNotFound = &ResolutionError{Kind: ResolvePackageNotFound}
	// ErrClientError matches resolution failures of kind ResolveClientError via errors.Is.
	ErrClientError = &ResolutionError{Kind: ResolveClientError}
	// ErrServerError matches resolution failures of kind ResolveServerError via errors.Is.
	ErrServerError = &ResolutionError{Kind: ResolveServerError}
	// ErrUnknownStatus matches resolution failures of kind ResolveUnknown via errors.Is.
	ErrUnknownStatus = &ResolutionError{Kind: ResolveUnknown}
)

// ResolutionError is a per-item failure of the resolution stage.
type ResolutionError struct {
	Kind     ResolutionErrorKind
	Name     string
	Version  string
	Platform string

	// Status is the HTTP status of the final response, or 0 if none arrived.
	Status int

	Err error
}

// NewResolutionError tags a cause with the source it failed for.
func NewResolutionError(kind ResolutionErrorKind, src PinnedSource, status int, cause error) *ResolutionError {
	return &ResolutionError{
		Kind:     kind,
		Name:     src.Name,
		Version:  src.Version,
		Platform: src.Platform,
		Status:   status,
		Err:      cause,
	}
}

func (e *ResolutionError) Error() string {
	var msg string
	switch e.Kind {
	case ResolveSendRequest:
		msg = fmt.Sprintf("failed to send request for gem %q version %q", e.Name, e.Version)
	case ResolveParseResponse:
		msg = fmt.Sprintf("failed to parse registry response for gem %q version %q", e.Name, e.Version)
	case ResolveVersionNotFound:
		msg = fmt.Sprintf("version %q of gem %q not found", e.version(), e.Name)
	case ResolvePackageNotFound:
		msg = fmt.Sprintf("gem %q not found, version %q", e.Name, e.Version)
	case ResolveClientError:
		msg = fmt.Sprintf("client error %d for gem %q version %q", e.Status, e.Name, e.Version)
	case ResolveServerError:
		msg = fmt.Sprintf("server error %d for gem %q version %q", e.Status, e.Name, e.Version)
	default:
		msg = fmt.Sprintf("unexpected status %d for gem %q version %q", e.Status, e.Name, e.Version)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *ResolutionError) version() string {
	if e.Platform != "" {
		return e.Version + "-" + e.Platform
	}
	return e.Version
}

// Unwrap returns the underlying cause.
func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// Is matches another ResolutionError of the same kind.
func (e *ResolutionError) Is(target error) bool {
	t, ok := target.(*ResolutionError)
	return ok && t.Kind == e.Kind
}
