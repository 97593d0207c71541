package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresSecret(t *testing.T) {
	_, err := New("futsal", "", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestGenerateAndValidate(t *testing.T) {
	j, err := New("futsal", "secret", time.Hour)
	require.NoError(t, err)

	token, expiresAt, err := j.GenerateAccessToken("admin", "9")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := j.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "9", claims.Level)
	assert.Equal(t, "futsal", claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	signer, err := New("futsal", "secret", time.Hour)
	require.NoError(t, err)

	verifier, err := New("futsal", "other", time.Hour)
	require.NoError(t, err)

	token, _, err := signer.GenerateAccessToken("admin", "9")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	j, err := New("futsal", "secret", time.Minute)
	require.NoError(t, err)

	j.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, _, err := j.GenerateAccessToken("admin", "9")
	require.NoError(t, err)

	_, err = j.ValidateToken(token)
	assert.Error(t, err)
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "1d", want: 24 * time.Hour},
		{in: "7d", want: 7 * 24 * time.Hour},
		{in: "2h", want: 2 * time.Hour},
		{in: " 15m ", want: 15 * time.Minute},
		{in: "1.5d", wantErr: true},
		{in: "0h", wantErr: true},
		{in: "-1d", wantErr: true},
		{in: "", wantErr: true},
		{in: "junk", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDuration(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidExpiry)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
