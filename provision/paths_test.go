package provision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droidsign/keyprovisioner/catalog"
)

// TestBundlePathsDisjoint checks the pipeline's one concurrency-safety
// argument: across the whole default catalog, no two entries may ever
// resolve to a shared output filename.
func TestBundlePathsDisjoint(t *testing.T) {
	cfg := Config{CertsDir: "/keys", OutputDir: "/out"}

	owner := map[string]string{}
	claim := func(name, path string) {
		if path == "" {
			return
		}
		prev, taken := owner[path]
		assert.False(t, taken, "Path %q claimed by both %q and %q", path, prev, name)
		owner[path] = name
	}

	platform, apex := catalog.Partition(catalog.Default())
	for _, e := range platform {
		b := cfg.platformBundle(e.Name)
		claim(e.Name, b.PrivateKey)
		claim(e.Name, b.Certificate)
		claim(e.Name, b.PKCS8)
	}
	for _, e := range apex {
		b := cfg.apexBundle(e.Name)
		claim(e.Name, b.PrivateKey)
		claim(e.Name, b.Certificate)
		claim(e.Name, b.PKCS8)
		legacy, avbStyle := cfg.pubkeyCandidates(e.Name)
		claim(e.Name, legacy)
		claim(e.Name, avbStyle)
	}
}

func TestPlatformBundleLayout(t *testing.T) {
	cfg := Config{CertsDir: "/keys", OutputDir: "/out"}
	b := cfg.platformBundle("releasekey")

	assert.Equal(t, "/keys/releasekey.pem", b.PrivateKey, "Platform private keys live under the certs dir")
	assert.Equal(t, "/out/releasekey.x509.pem", b.Certificate)
	assert.Equal(t, "/out/releasekey.pk8", b.PKCS8)
	assert.Empty(t, b.AVBPublicKey)
	assert.Empty(t, b.LegacyPublicKey)
}

func TestApexBundleLayout(t *testing.T) {
	cfg := Config{CertsDir: "/keys", OutputDir: "/out"}

	b := cfg.apexBundle("com.android.wifi")
	assert.Equal(t, "/out/com.android.wifi.pem", b.PrivateKey, "Apex private keys live in the output dir")
	assert.Equal(t, "/out/com.android.wifi.certificate.override.x509.pem", b.Certificate)
	assert.Equal(t, "/out/com.android.wifi.certificate.override.pk8", b.PKCS8)
	assert.Equal(t, "/out/com.android.wifi.avbpubkey", b.AVBPublicKey)
	assert.Empty(t, b.LegacyPublicKey, "Exactly one public-key field is populated")

	legacy := cfg.apexBundle("com.android.vndk")
	assert.Equal(t, "/out/com.android.vndk.pubkey", legacy.LegacyPublicKey)
	assert.Empty(t, legacy.AVBPublicKey, "Exactly one public-key field is populated")
}

func TestBundlePublicKey(t *testing.T) {
	assert.Equal(t, "/out/a.avbpubkey", Bundle{AVBPublicKey: "/out/a.avbpubkey"}.PublicKey())
	assert.Equal(t, "/out/v.pubkey", Bundle{LegacyPublicKey: "/out/v.pubkey"}.PublicKey())
	assert.Empty(t, Bundle{}.PublicKey())
}

func TestPubkeyCandidates(t *testing.T) {
	cfg := Config{OutputDir: "/out"}
	legacy, avbStyle := cfg.pubkeyCandidates("com.android.tzdata")
	require.Equal(t, "/out/com.android.tzdata.pubkey", legacy)
	require.Equal(t, "/out/com.android.tzdata.avbpubkey", avbStyle)
}
