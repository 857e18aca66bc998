package pkcs12

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"software.sslmate.com/src/go-pkcs12"
)

func newBundle(t *testing.T, password string) []byte {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "localhost"},
		DNSNames:     []string{"localhost"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)
	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	pfx, err := pkcs12.Modern.Encode(key, cert, nil, password)
	require.NoError(t, err)
	return pfx
}

func TestTLSCertificate(t *testing.T) {
	cert, err := TLSCertificate(newBundle(t, "secret"), "secret")
	require.NoError(t, err)
	require.Len(t, cert.Certificate, 1)
	assert.NotNil(t, cert.PrivateKey)
	assert.Equal(t, "localhost", cert.Leaf.Subject.CommonName)
}

func TestTLSCertificate_WrongPassword(t *testing.T) {
	_, err := TLSCertificate(newBundle(t, "secret"), "wrong")
	assert.Error(t, err)
}

func TestLoadTLSConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.pfx")
	require.NoError(t, os.WriteFile(path, newBundle(t, "secret"), 0o600))

	cfg, err := LoadTLSConfig(path, "secret")
	require.NoError(t, err)
	require.Len(t, cfg.Certificates, 1)
	assert.Equal(t, uint16(tls.VersionTLS12), cfg.MinVersion)
	assert.Equal(t, "localhost", cfg.Certificates[0].Leaf.Subject.CommonName)

	_, err = LoadTLSConfig(filepath.Join(t.TempDir(), "missing.pfx"), "secret")
	assert.Error(t, err)
}
