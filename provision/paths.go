package provision

import (
	"os"
	"path/filepath"
)

// legacyPubkeyName is the single apex module whose extracted public key
// keeps the legacy .pubkey filename. Every other apex gets the
// AVB-style .avbpubkey name.
const legacyPubkeyName = "com.android.vndk"

// Config carries the provisioning tool's filesystem layout and key
// size policy. It is resolved once at startup and threaded into the
// generator, keeping generation a pure function of (entry, config).
type Config struct {
	// CertsDir holds platform private keys. Resolved from the
	// environment at startup; created on first run.
	CertsDir string

	// OutputDir receives certificates, PKCS8 keys, apex private keys,
	// extracted public keys, and the emitted configuration files.
	// Normally the invocation's working directory.
	OutputDir string

	// PlatformKeyBits and ApexKeyBits set the RSA modulus size per
	// family.
	PlatformKeyBits int
	ApexKeyBits     int
}

// DefaultKeyBits is the RSA modulus size used for both families unless
// overridden.
const DefaultKeyBits = 4096

// Bundle is the set of artifact paths produced for one catalog entry.
// Platform bundles leave both public-key fields empty; apex bundles
// populate exactly one of them.
type Bundle struct {
	PrivateKey  string
	Certificate string
	PKCS8       string

	// AVBPublicKey and LegacyPublicKey are the two possible homes of
	// an apex entry's extracted public key. The legacy name is used
	// only for legacyPubkeyName.
	AVBPublicKey    string
	LegacyPublicKey string
}

// PublicKey returns whichever extracted public-key path this bundle
// uses, or "" for platform bundles.
func (b Bundle) PublicKey() string {
	if b.LegacyPublicKey != "" {
		return b.LegacyPublicKey
	}
	return b.AVBPublicKey
}

// requiredPaths returns the base paths that must exist for this bundle
// to be considered complete. For apex bundles the public key is
// checked separately because either filename satisfies completeness.
func (b Bundle) requiredPaths() []string {
	return []string{b.PrivateKey, b.Certificate, b.PKCS8}
}

// platformBundle derives the artifact paths for a platform key. The
// private key lives under CertsDir; the certificate and PKCS8 key are
// emitted next to the build configuration in OutputDir.
func (c Config) platformBundle(name string) Bundle {
	return Bundle{
		PrivateKey:  filepath.Join(c.CertsDir, name+".pem"),
		Certificate: filepath.Join(c.OutputDir, name+".x509.pem"),
		PKCS8:       filepath.Join(c.OutputDir, name+".pk8"),
	}
}

// apexBundle derives the artifact paths for an apex key. All artifacts
// live in OutputDir, and the certificate carries the
// .certificate.override infix the build system looks up.
func (c Config) apexBundle(name string) Bundle {
	b := Bundle{
		PrivateKey:  filepath.Join(c.OutputDir, name+".pem"),
		Certificate: filepath.Join(c.OutputDir, name+".certificate.override.x509.pem"),
		PKCS8:       filepath.Join(c.OutputDir, name+".certificate.override.pk8"),
	}
	if name == legacyPubkeyName {
		b.LegacyPublicKey = filepath.Join(c.OutputDir, name+".pubkey")
	} else {
		b.AVBPublicKey = filepath.Join(c.OutputDir, name+".avbpubkey")
	}
	return b
}

// pubkeyCandidates returns both possible public-key filenames for an
// apex entry. Completeness accepts either one, regardless of which
// name a fresh generation would write, so a key extracted under the
// other convention by an earlier tool version is never redone.
func (c Config) pubkeyCandidates(name string) (legacy, avbStyle string) {
	return filepath.Join(c.OutputDir, name+".pubkey"),
		filepath.Join(c.OutputDir, name+".avbpubkey")
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
