// Package avb wraps the external avbtool binary behind a narrow
// extraction interface.
//
// The provisioning pipeline needs exactly one avbtool operation:
// extract_public_key, which reads an RSA private key in PEM form and
// writes the public key in the AVB binary container format used by
// verified boot. The PublicKeyExtractor interface keeps that one
// operation substitutable so the pipeline's tests can use a fake
// instead of invoking real tooling.
package avb
