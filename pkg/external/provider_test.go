// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package external

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

const clientID = "tenant-identity"

type fakeIssuer struct {
	server *httptest.Server
	key    *rsa.PrivateKey
	nonce  string
	email  string
}

func newFakeIssuer(t *testing.T) *fakeIssuer {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	f := &fakeIssuer{key: key, nonce: "nonce-1", email: "jane@example.com"}

	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()

		if r.Form.Get("code") != "good-code" || r.Form.Get("code_verifier") == "" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}

		idToken, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
			"iss":            f.server.URL,
			"aud":            clientID,
			"sub":            "google-sub-1",
			"exp":            time.Now().Add(time.Hour).Unix(),
			"iat":            time.Now().Unix(),
			"nonce":          f.nonce,
			"email":          f.email,
			"email_verified": true,
			"given_name":     "Jane",
			"family_name":    "Doe",
		}).SignedString(f.key)
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "at",
			"token_type":   "Bearer",
			"expires_in":   3600,
			"id_token":     idToken,
		})
	}))
	t.Cleanup(f.server.Close)

	return f
}

func (f *fakeIssuer) provider() *Provider {
	verifier := oidc.NewVerifier(
		f.server.URL,
		&oidc.StaticKeySet{PublicKeys: []crypto.PublicKey{&f.key.PublicKey}},
		&oidc.Config{ClientID: clientID},
	)

	return newProvider(
		ProviderConfig{Name: "google", ClientID: clientID, ClientSecret: "secret", RedirectURL: "http://localhost/callback"},
		oauth2.Endpoint{AuthURL: f.server.URL + "/auth", TokenURL: f.server.URL + "/token"},
		verifier,
		f.server.Client(),
	)
}

func TestProviderAuthCodeURL(t *testing.T) {
	p := newFakeIssuer(t).provider()

	raw := p.AuthCodeURL("state-1", "nonce-1", oauth2.GenerateVerifier())

	u, err := url.Parse(raw)
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "state-1", q.Get("state"))
	assert.Equal(t, "nonce-1", q.Get("nonce"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))
	assert.NotEmpty(t, q.Get("code_challenge"))
	assert.Equal(t, "openid email profile", q.Get("scope"))
}

func TestProviderExchange(t *testing.T) {
	issuer := newFakeIssuer(t)
	p := issuer.provider()

	ident, err := p.Exchange(context.Background(), "good-code", "nonce-1", oauth2.GenerateVerifier())
	require.NoError(t, err)

	assert.Equal(t, &Identity{
		Subject:       "google-sub-1",
		Email:         "jane@example.com",
		EmailVerified: true,
		FirstName:     "Jane",
		LastName:      "Doe",
	}, ident)
}

func TestProviderExchangeRejectsNonceMismatch(t *testing.T) {
	p := newFakeIssuer(t).provider()

	_, err := p.Exchange(context.Background(), "good-code", "another-nonce", oauth2.GenerateVerifier())
	assert.ErrorContains(t, err, "nonce")
}

func TestProviderExchangeRejectsBadCode(t *testing.T) {
	p := newFakeIssuer(t).provider()

	_, err := p.Exchange(context.Background(), "bad-code", "nonce-1", oauth2.GenerateVerifier())
	assert.Error(t, err)
}
