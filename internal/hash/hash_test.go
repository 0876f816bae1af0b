package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashers(t *testing.T) {
	t.Parallel()

	hashers := map[string]Hasher{
		ModePlain:  Plain{},
		ModeBcrypt: Bcrypt{Cost: bcrypt.MinCost},
	}

	for name, h := range hashers {
		h := h
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			stored, err := h.Hash("secret")
			require.NoError(t, err)
			assert.True(t, h.Check(stored, "secret"))
			assert.False(t, h.Check(stored, "Secret"))
			assert.False(t, h.Check(stored, ""))
		})
	}
}

func TestPlain_StoresPasswordAsIs(t *testing.T) {
	stored, err := Plain{}.Hash("secret")
	require.NoError(t, err)
	assert.Equal(t, "secret", stored)
}

func TestNew(t *testing.T) {
	h, err := New("")
	require.NoError(t, err)
	assert.IsType(t, Plain{}, h)

	h, err = New(ModeBcrypt)
	require.NoError(t, err)
	assert.IsType(t, Bcrypt{}, h)

	_, err = New("md5")
	assert.Error(t, err)
}
