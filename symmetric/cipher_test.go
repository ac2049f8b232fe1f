package symmetric

import (
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyTokenKnownCiphertext(t *testing.T) {
	tests := []struct {
		name   string
		c      *Cipher
		plain  string
		wantCT string
	}{
		{"short", LegacyToken(), "120", "6cd5cc4c5dabce35a0cb30c3b7d0c937"},
		{"empty", LegacyToken(), "", "df6e2f22653880edc7ea44356aa6751d"},
		{"full block", LegacySettings(), "0123456789abcdef", "291546fc6b69f8317b46d9c7d507fae9a20c21cda2a9659d42ad0c8e352c38b5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, err := tt.c.Encrypt([]byte(tt.plain))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCT, hex.EncodeToString(ct))

			plain, err := tt.c.Decrypt(ct)
			require.NoError(t, err)
			assert.Equal(t, tt.plain, string(plain))
		})
	}
}

func TestEncryptIsDeterministic(t *testing.T) {
	c := LegacyToken()
	a, err := c.Encrypt([]byte("same input"))
	require.NoError(t, err)
	b, err := c.Encrypt([]byte("same input"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCiphertextLengthIsBlockMultiple(t *testing.T) {
	c := LegacyToken()
	for n := 0; n < 40; n++ {
		ct, err := c.Encrypt(make([]byte, n))
		require.NoError(t, err)
		assert.Zero(t, len(ct)%16)
		assert.Greater(t, len(ct), n)
	}
}

func TestDecryptRejectsMalformed(t *testing.T) {
	c := LegacyToken()

	_, err := c.Decrypt(nil)
	require.ErrorIs(t, err, ErrDecrypt)

	_, err = c.Decrypt(make([]byte, 15))
	require.ErrorIs(t, err, ErrDecrypt)
}

func TestDecryptWithOtherKeyFails(t *testing.T) {
	ct, err := LegacyToken().Encrypt([]byte("0123456789abcdef"))
	require.NoError(t, err)

	_, err = LegacySettings().Decrypt(ct)
	require.ErrorIs(t, err, ErrDecrypt)
}

func TestDecryptDetectsTamperedPadding(t *testing.T) {
	c := LegacyToken()
	ct, err := c.Encrypt([]byte("120"))
	require.NoError(t, err)

	// Single block: flipping the last byte scrambles the whole block, padding included.
	ct[len(ct)-1] ^= 0x01
	_, err = c.Decrypt(ct)
	require.ErrorIs(t, err, ErrDecrypt)
}

func TestNewRejectsBadKeySizes(t *testing.T) {
	for _, n := range []int{0, 8, 15, 17, 33} {
		_, err := New(make([]byte, n))
		require.ErrorIs(t, err, ErrInvalidKey, "key size %d", n)
	}

	_, err := NewFromHex("not-hex")
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestNewCopiesKey(t *testing.T) {
	key := []byte("0123456789abcdef")
	c, err := New(key)
	require.NoError(t, err)

	before, err := c.Encrypt([]byte("x"))
	require.NoError(t, err)

	key[0] = 'X'
	after, err := c.Encrypt([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestWiderKeysRoundTrip(t *testing.T) {
	for _, n := range []int{24, 32} {
		c, err := New(make([]byte, n))
		require.NoError(t, err)
		assert.Equal(t, []string{"aes-192-cbc", "aes-256-cbc"}[n/8-3], c.Name())

		ct, err := c.Encrypt([]byte("payload"))
		require.NoError(t, err)
		plain, err := c.Decrypt(ct)
		require.NoError(t, err)
		assert.Equal(t, "payload", string(plain))
	}
}

func TestCipherConcurrentUse(t *testing.T) {
	c := LegacyToken()
	want, err := c.Encrypt([]byte("concurrent"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ct, err := c.Encrypt([]byte("concurrent"))
			if err != nil || hex.EncodeToString(ct) != hex.EncodeToString(want) {
				errs <- "encrypt mismatch"
				return
			}
			if _, err := c.Decrypt(ct); err != nil {
				errs <- err.Error()
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Fatal(e)
	}
}

func TestDigests(t *testing.T) {
	md5Cases := map[string]string{
		"TSTAlinabaccarat888888":   "dbbe3d1028b27f98068b8c1727c2578b",
		"TSTConniebaccarat888888":  "9a4fb85060d1f6abd664fc05a4dad1c8",
		"TSTCandicebaccarat888888": "fe726b2413eb7348d2aa8d3357f18a13",
		"TSTHTTW10baccarat10":      "f46476128fa66b4a1f19065dc36ac7a5",
	}
	for in, want := range md5Cases {
		assert.Equal(t, want, MD5Hex(in), in)
	}

	assert.Equal(t,
		"N+cdmLMLpDNCJE3WkC2JA1RMT9Uo9D26w7KC8oJbTPjrPLdUDstpoiD1tDmJhMMZ21tVT1A8Icftdaut1bdToA==",
		SHA512Base64("TSTAlinabaccarat888888"),
	)
}

func FuzzDecrypt(f *testing.F) {
	c := LegacyToken()
	ct, _ := c.Encrypt([]byte("seed"))
	f.Add(ct)
	f.Add([]byte{})
	f.Add(make([]byte, 16))
	f.Add(make([]byte, 17))

	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = c.Decrypt(data)
	})
}
