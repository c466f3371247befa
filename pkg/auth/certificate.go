package auth

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"
	"time"

	"software.sslmate.com/src/go-pkcs12"

	"github.com/raywall/integra-contador-sdk/pkg/sdkerrors"
)

// loadClientCertificate carrega o certificado digital (.p12/.pfx) e o
// converte para o formato do crypto/tls. Qualquer falha (arquivo
// ausente, senha errada, conteúdo inválido) vira CertificateError.
func loadClientCertificate(path, password string) (tls.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tls.Certificate{}, &sdkerrors.CertificateError{AuthError: sdkerrors.AuthError{
			Message: fmt.Sprintf("erro ao ler certificado %s: %v", path, err),
		}}
	}

	key, leaf, caCerts, err := pkcs12.DecodeChain(data, password)
	if err != nil {
		return tls.Certificate{}, &sdkerrors.CertificateError{AuthError: sdkerrors.AuthError{
			Message: fmt.Sprintf("erro ao decifrar certificado %s: %v", path, err),
		}}
	}

	cert := tls.Certificate{
		Certificate: [][]byte{leaf.Raw},
		PrivateKey:  key,
		Leaf:        leaf,
	}
	for _, ca := range caCerts {
		cert.Certificate = append(cert.Certificate, ca.Raw)
	}
	return cert, nil
}

// newCertificateClient monta um http.Client que apresenta o certificado
// do contribuinte como certificado de cliente TLS, exigência do
// servidor de autenticação em Produção.
func newCertificateClient(path, password string, timeout time.Duration) (*http.Client, error) {
	cert, err := loadClientCertificate(path, password)
	if err != nil {
		return nil, err
	}

	pool, err := x509.SystemCertPool()
	if err != nil {
		pool = x509.NewCertPool()
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
		MinVersion:   tls.VersionTLS12,
	}

	return &http.Client{Transport: transport, Timeout: timeout}, nil
}
