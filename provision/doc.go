// Package provision implements the key provisioning pipeline: per-entry
// bundle generation and the parallel orchestration that drives the
// whole catalog through it.
//
// # Bundles
//
// Each catalog entry yields one bundle of artifacts. Platform entries
// produce a private key PEM (under the private key directory), a
// self-signed X.509 certificate, and an unencrypted PKCS8 DER key.
// Apex entries additionally produce an extracted public key, written
// by the external avbtool collaborator, and their certificate CN is
// the module's own name.
//
// # Idempotency
//
// Generation is idempotent at bundle granularity: a complete bundle is
// never touched again, and an incomplete one (for example after an
// interrupted run) is regenerated in full rather than patched. Apex
// completeness accepts either of the two public-key filename
// conventions, so keys extracted under the older naming are not
// redone.
//
// # Concurrency
//
// The orchestrator fans one task per entry out to a pool bounded by
// the host's parallelism. Tasks share no state: every artifact path is
// derived from its entry's unique name, so all task outputs are
// pairwise disjoint files. Results are reassembled in catalog order
// regardless of completion order, and one entry's failure is reported
// in its own result slot without cancelling the rest of the run.
//
// Two overlapping pipeline runs against the same output directory are
// not supported; the existence-check-then-write sequence inside a
// generator is not atomic, so concurrent runs can corrupt a bundle.
package provision
