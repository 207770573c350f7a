package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() TokenParams {
	return TokenParams{
		Secret:   "test-secret",
		Issuer:   "flashcardi",
		Audience: "flashcardi-api",
		Subject:  "alice",
		TTL:      time.Hour,
	}
}

func TestCreateToken_RoundTrip(t *testing.T) {
	p := testParams()
	token, err := CreateToken(p)
	require.NoError(t, err)

	sub, err := VerifyToken(token, p)
	require.NoError(t, err)
	assert.Equal(t, "alice", sub)
}

func TestCreateToken_Errors(t *testing.T) {
	p := testParams()
	p.Secret = ""
	_, err := CreateToken(p)
	assert.ErrorIs(t, err, ErrMissingSecret)

	p = testParams()
	p.Subject = ""
	_, err = CreateToken(p)
	assert.Error(t, err)
}

func TestVerifyToken_Rejects(t *testing.T) {
	p := testParams()
	token, err := CreateToken(p)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*TokenParams)
	}{
		{name: "wrong secret", mutate: func(p *TokenParams) { p.Secret = "other" }},
		{name: "wrong issuer", mutate: func(p *TokenParams) { p.Issuer = "someone-else" }},
		{name: "wrong audience", mutate: func(p *TokenParams) { p.Audience = "other-api" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := testParams()
			tt.mutate(&check)
			_, err := VerifyToken(token, check)
			assert.Error(t, err)
		})
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	p := testParams()
	p.TTL = -time.Minute
	token, err := CreateToken(p)
	require.NoError(t, err)

	_, err = VerifyToken(token, p)
	assert.Error(t, err)
}

func TestVerifyToken_Garbage(t *testing.T) {
	_, err := VerifyToken("not-a-jwt", testParams())
	assert.Error(t, err)
}
