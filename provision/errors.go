package provision

import "fmt"

// FailureKind classifies what part of a bundle generation failed.
type FailureKind string

const (
	// FailureCrypto covers key generation, certificate signing, and
	// encoding failures.
	FailureCrypto FailureKind = "crypto"

	// FailureExtraction covers failures of the external public-key
	// extraction tool.
	FailureExtraction FailureKind = "extraction"

	// FailureIO covers unreadable or unwritable artifact paths.
	FailureIO FailureKind = "io"
)

// EntryError reports the failure of one catalog entry's bundle
// generation. It names the entry and classifies the failure so the
// caller can report it without losing the underlying cause.
type EntryError struct {
	Name string
	Kind FailureKind
	Err  error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	return fmt.Sprintf("key %q: %s failure: %v", e.Name, e.Kind, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *EntryError) Unwrap() error {
	return e.Err
}

func entryErr(name string, kind FailureKind, err error) *EntryError {
	return &EntryError{Name: name, Kind: kind, Err: err}
}
