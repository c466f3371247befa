package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenRecord_Fresh(t *testing.T) {
	obtained := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	tok := TokenRecord{
		AccessToken: "abc",
		ObtainedAt:  obtained,
		ExpiresIn:   3600,
	}

	tests := []struct {
		name   string
		at     time.Time
		margin time.Duration
		want   bool
	}{
		{name: "Recém-obtido", at: obtained, margin: 0, want: true},
		{name: "Um segundo antes do vencimento", at: obtained.Add(3599 * time.Second), margin: 0, want: true},
		{name: "Exatamente no vencimento", at: obtained.Add(3600 * time.Second), margin: 0, want: false},
		{name: "Dentro da margem de segurança", at: obtained.Add(3541 * time.Second), margin: 60 * time.Second, want: false},
		{name: "Fora da margem de segurança", at: obtained.Add(3539 * time.Second), margin: 60 * time.Second, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tok.Fresh(tt.at, tt.margin))
		})
	}

	t.Run("ExpiresIn zero nunca expira", func(t *testing.T) {
		fixed := TokenRecord{AccessToken: "abc"}
		assert.True(t, fixed.Fresh(obtained.Add(100*365*24*time.Hour), time.Minute))
	})

	t.Run("Sem access token nunca é utilizável", func(t *testing.T) {
		empty := TokenRecord{ExpiresIn: 3600, ObtainedAt: obtained}
		assert.False(t, empty.Fresh(obtained, 0))
	})
}

func TestAuthConfig_Credentials(t *testing.T) {
	full := AuthConfig{
		ConsumerKey:         "k",
		ConsumerSecret:      "s",
		CertificatePath:     "/tmp/c.p12",
		CertificatePassword: "p",
	}
	assert.True(t, full.HasCertificateCredentials())
	assert.True(t, full.HasAnyCertificateCredential())

	partial := AuthConfig{ConsumerKey: "k"}
	assert.False(t, partial.HasCertificateCredentials())
	assert.True(t, partial.HasAnyCertificateCredential())

	assert.False(t, AuthConfig{}.HasAnyCertificateCredential())
}
