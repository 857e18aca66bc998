package pkcs12

import (
	"crypto/tls"
	"errors"
	"fmt"
	"os"

	"software.sslmate.com/src/go-pkcs12"
)

// ErrMissingKey é retornado quando o arquivo não traz chave privada
var ErrMissingKey = errors.New("pkcs12: chave privada ausente")

// TLSCertificate monta um tls.Certificate a partir de um bundle PKCS12
func TLSCertificate(pfxData []byte, password string) (tls.Certificate, error) {
	privateKey, certificate, caCerts, err := pkcs12.DecodeChain(pfxData, password)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("pkcs12: decode: %w", err)
	}
	if privateKey == nil {
		return tls.Certificate{}, ErrMissingKey
	}

	chain := [][]byte{certificate.Raw}
	for _, cert := range caCerts {
		chain = append(chain, cert.Raw)
	}

	return tls.Certificate{
		Certificate: chain,
		PrivateKey:  privateKey,
		Leaf:        certificate,
	}, nil
}

// LoadTLSConfig lê o arquivo .pfx e retorna a configuração TLS do servidor
func LoadTLSConfig(path, password string) (*tls.Config, error) {
	pfxData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pkcs12: leitura de %s: %w", path, err)
	}

	cert, err := TLSCertificate(pfxData, password)
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}
