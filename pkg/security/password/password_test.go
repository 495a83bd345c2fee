package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendsmart/pkg/security/password"
)

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("secret1")
	require.NoError(t, err)
	second, err := password.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two digests of the same input must differ")
	assert.NotEqual(t, "secret1", first, "digest must not equal the plaintext")
	assert.True(t, password.Verify("secret1", first))
	assert.True(t, password.Verify("secret1", second))
}

func TestVerify(t *testing.T) {
	digest, err := password.Hash("correct horse")
	require.NoError(t, err)

	tests := []struct {
		name   string
		plain  string
		digest string
		want   bool
	}{
		{name: "matching password", plain: "correct horse", digest: digest, want: true},
		{name: "wrong password", plain: "battery staple", digest: digest, want: false},
		{name: "malformed digest", plain: "correct horse", digest: "not-a-bcrypt-digest", want: false},
		{name: "empty digest", plain: "correct horse", digest: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, password.Verify(tt.plain, tt.digest))
		})
	}
}
