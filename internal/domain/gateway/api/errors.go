package api

import "errors"

var (
	// ErrUpstreamAuth means the provider rejected our credentials or none are configured.
	ErrUpstreamAuth = errors.New("upstream authentication failed")
	// ErrUpstreamFetch covers every other failed upstream call: non-2xx, transport, decode, timeout.
	ErrUpstreamFetch = errors.New("upstream fetch failed")
)

// UpstreamError is returned by every gateway call that fails. Error() never carries the
// status or provider details; those stay on the struct for logging and errors.Is/As.
type UpstreamError struct {
	Service    string
	Kind       error
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	return e.Service + " fetch failed"
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is matches ErrUpstreamFetch for any upstream failure, and the specific Kind.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstreamFetch || target == e.Kind
}
