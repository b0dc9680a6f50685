package provision

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"log/slog"
	"math/big"
	"os"
	"time"

	"github.com/droidsign/keyprovisioner/avb"
	"github.com/droidsign/keyprovisioner/catalog"
)

// certValidity is the lifetime of every generated certificate.
const certValidity = 10000 * 24 * time.Hour

// Generator produces the artifact bundle for a single catalog entry.
// It is safe for concurrent use across distinct entries because every
// artifact path is derived from the entry's unique name; two
// concurrent generations of the same entry are not supported.
type Generator struct {
	cfg       Config
	extractor avb.PublicKeyExtractor
	log       *slog.Logger
}

// NewGenerator creates a bundle generator with the given layout and
// public-key extraction collaborator.
func NewGenerator(cfg Config, extractor avb.PublicKeyExtractor, log *slog.Logger) *Generator {
	if cfg.PlatformKeyBits == 0 {
		cfg.PlatformKeyBits = DefaultKeyBits
	}
	if cfg.ApexKeyBits == 0 {
		cfg.ApexKeyBits = DefaultKeyBits
	}
	return &Generator{cfg: cfg, extractor: extractor, log: log}
}

// Platform generates the platform artifact set for one entry: private
// key PEM under the certs directory, self-signed certificate, and
// unencrypted PKCS8 key. If all three artifacts already exist the
// bundle is returned untouched. A bundle missing any artifact is
// regenerated in full, never patched.
func (g *Generator) Platform(ctx context.Context, entry catalog.Entry) (Bundle, error) {
	bundle := g.cfg.platformBundle(entry.Name)
	if allExist(bundle.requiredPaths()) {
		g.log.Debug("Platform bundle already complete", "key", entry.Name)
		return bundle, nil
	}

	key, err := rsa.GenerateKey(rand.Reader, g.cfg.PlatformKeyBits)
	if err != nil {
		return bundle, entryErr(entry.Name, FailureCrypto, err)
	}
	if err := writePrivateKeyPEM(bundle.PrivateKey, key); err != nil {
		return bundle, entryErr(entry.Name, FailureIO, err)
	}

	certPEM, err := selfSignedCertPEM(key, nil)
	if err != nil {
		return bundle, entryErr(entry.Name, FailureCrypto, err)
	}
	if err := os.WriteFile(bundle.Certificate, certPEM, 0644); err != nil {
		return bundle, entryErr(entry.Name, FailureIO, err)
	}

	pk8, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return bundle, entryErr(entry.Name, FailureCrypto, err)
	}
	if err := os.WriteFile(bundle.PKCS8, pk8, 0600); err != nil {
		return bundle, entryErr(entry.Name, FailureIO, err)
	}

	g.log.Debug("Generated platform bundle", "key", entry.Name)
	return bundle, nil
}

// Apex generates the apex artifact set for one entry. The existence
// check additionally accepts either public-key filename (legacy or
// AVB-style); only a bundle missing a base artifact and both
// public-key candidates is regenerated. The certificate's CN is the
// apex's own name, and the public key is extracted by the external
// collaborator right after the private key is written.
func (g *Generator) Apex(ctx context.Context, entry catalog.Entry) (Bundle, error) {
	bundle := g.cfg.apexBundle(entry.Name)
	legacy, avbStyle := g.cfg.pubkeyCandidates(entry.Name)
	if allExist(bundle.requiredPaths()) && (pathExists(legacy) || pathExists(avbStyle)) {
		g.log.Debug("Apex bundle already complete", "key", entry.Name)
		return bundle, nil
	}

	key, err := rsa.GenerateKey(rand.Reader, g.cfg.ApexKeyBits)
	if err != nil {
		return bundle, entryErr(entry.Name, FailureCrypto, err)
	}
	if err := writePrivateKeyPEM(bundle.PrivateKey, key); err != nil {
		return bundle, entryErr(entry.Name, FailureIO, err)
	}

	if err := g.extractor.Extract(ctx, bundle.PrivateKey, bundle.PublicKey()); err != nil {
		return bundle, entryErr(entry.Name, FailureExtraction, err)
	}

	certPEM, err := selfSignedCertPEM(key, map[string]string{"CN": entry.Name})
	if err != nil {
		return bundle, entryErr(entry.Name, FailureCrypto, err)
	}
	if err := os.WriteFile(bundle.Certificate, certPEM, 0644); err != nil {
		return bundle, entryErr(entry.Name, FailureIO, err)
	}

	pk8, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return bundle, entryErr(entry.Name, FailureCrypto, err)
	}
	if err := os.WriteFile(bundle.PKCS8, pk8, 0600); err != nil {
		return bundle, entryErr(entry.Name, FailureIO, err)
	}

	g.log.Debug("Generated apex bundle", "key", entry.Name)
	return bundle, nil
}

// selfSignedCertPEM builds the self-signed certificate for a key and
// returns it PEM-encoded. Subject and issuer are identical, the serial
// number is the fixed value the downstream signing tools expect, and
// validity runs from now for the full certValidity window.
func selfSignedCertPEM(key *rsa.PrivateKey, subjectOverride map[string]string) ([]byte, error) {
	subject, err := catalog.SubjectName(subjectOverride)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	template := &x509.Certificate{
		SerialNumber:       big.NewInt(1),
		Subject:            subject,
		NotBefore:          now,
		NotAfter:           now.Add(certValidity),
		SignatureAlgorithm: x509.SHA256WithRSA,
	}

	certDER, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certDER}), nil
}

// writePrivateKeyPEM writes an RSA private key in PKCS#1 PEM form,
// readable only by the owner.
func writePrivateKeyPEM(path string, key *rsa.PrivateKey) error {
	keyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	return os.WriteFile(path, keyPEM, 0600)
}

func allExist(paths []string) bool {
	for _, path := range paths {
		if !pathExists(path) {
			return false
		}
	}
	return true
}
