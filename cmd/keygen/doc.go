// Command keygen provisions the full catalog of Android signing keys
// and emits the Android.bp and keys.mk files that wire them into the
// build.
//
// The run is idempotent: existing complete key bundles are left
// untouched, and only missing or incomplete bundles are regenerated.
// Platform private keys go to the directory named by --certs-dir (or
// the CERTS_PATH environment variable, default ~/.android-certs);
// everything else is written to --output-dir.
//
// On success the run is silent apart from the two emitted files. On
// failure every failing key is reported with its failure kind, and the
// process exits non-zero after all other keys have been attempted.
package main
