// Package buildcfg renders the two build-system configuration files
// that reference the provisioned key bundles: an Android.bp declaring
// a certificate override record per apex module, and a keys.mk wiring
// those overrides into the product configuration.
//
// Both emitters are pure functions of the catalog. They never read the
// generated artifacts, so their output is deterministic for a given
// catalog regardless of what provisioning did or skipped.
package buildcfg
