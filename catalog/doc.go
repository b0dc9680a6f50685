// Package catalog defines the static list of signing identities the
// provisioning tool generates, and the X.509 subject policy applied to
// every certificate.
//
// The catalog is immutable process-wide configuration: it is built once
// by Default and partitioned into its two families (platform keys and
// apex keys) by the orchestrator. Apex entries carry an ApexRole that
// only influences build-configuration emission, never key generation.
//
// # Subject policy
//
// Every certificate uses the same seven-field subject (C, ST, L, O,
// OU, CN, emailAddress) with fixed defaults. The single supported
// deviation is a per-call override map, used to set CN to an apex
// module's own name instead of the shared default. Resolution is pure:
// same inputs always produce the same subject.
package catalog
