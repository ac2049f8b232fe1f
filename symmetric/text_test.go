package symmetric_test

import (
	"testing"

	"github.com/MrEthical07/goBearer/base62"
	"github.com/MrEthical07/goBearer/symmetric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dockerConnString = "Server=host.docker.internal,1433;Database=Lsg;User Id=sa;Password=5VckGdLyvC2zDK8e;TrustServerCertificate=true;"

func TestTextCipherKnownSettingsStrings(t *testing.T) {
	tokenText, err := symmetric.NewTextCipher(symmetric.LegacyToken(), base62.BitPack)
	require.NoError(t, err)
	settingsText, err := symmetric.NewTextCipher(symmetric.LegacySettings(), base62.BigInt)
	require.NoError(t, err)

	tests := []struct {
		name  string
		tc    *symmetric.TextCipher
		plain string
		want  string
	}{
		{
			name:  "token key bitpack docker",
			tc:    tokenText,
			plain: dockerConnString,
			want:  "uX6jIL41nLGk2P6U1xKiqv3tYBhbAKOOlZAKou86yx9Wcym9UJgBsn6uY4g9QFMGsYH1GWSuOBFURUMoPZkk7DNXNEx7ASUOGEXCCoyDUB0iPrXV4czbXYSFdO0HXYENZat2IodX9JjUYdRoayoNT73v",
		},
		{
			name:  "token key bitpack db",
			tc:    tokenText,
			plain: "Server=db;Database=Lsg;User Id=sa;Password=5VckGdLyvC2zDK8e;TrustServerCertificate=true;",
			want:  "hIvucehOYFVw22NYuPUsCFoW9N3HuBn3lZEukFAHyhSfmkj29DihCgt9WmeO8NWTTnVCcIXxHejw7nBLBVzoMmrXtHF2A0dAni1qkapoMXvqRk2HMxlKYhiBtIjzXJf1EA",
		},
		{
			name:  "token key bitpack test db",
			tc:    tokenText,
			plain: "Server=lsgtestdb;Database=Lsg;User Id=sa;Password=5VckGdLyvC2zDK8e;TrustServerCertificate=true;",
			want:  "8EO6W7NbxgJvlEJOPBO7BIdD2uslCLPNTyS5bbTOqyWSfZqvfeS4XvIBndK2RGM1KrqfTFw4Pk8EGhUiZw9taMN5fv0chCeW0uDmdoXj6mYD0NPruDQaSJq8rU66ck5uU",
		},
		{
			name:  "settings key bigint docker",
			tc:    settingsText,
			plain: dockerConnString,
			want:  "KC749vLYlXKaTFTES4hAldfs61sLuesy3nbEQJEVLTxA1NPEi9ipf3ICe3A2ZHhDRO0xxYX6rMlN7oRnYwtjC1E1D28JhQqFzrxhB4C5vMGB2JDrvCA6OWP0V99pJhyBwRTFOQEqnsFkEekSfFgx005",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.tc.EncryptString(tt.plain)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			back, err := tt.tc.DecryptString(got)
			require.NoError(t, err)
			assert.Equal(t, tt.plain, back)
		})
	}
}

func TestTextCipherRoundTripUnicode(t *testing.T) {
	for _, enc := range []base62.Encoding{base62.BigInt, base62.BitPack} {
		tc, err := symmetric.NewTextCipher(symmetric.LegacyToken(), enc)
		require.NoError(t, err)
		for _, s := range []string{"120", "love爱", ""} {
			text, err := tc.EncryptString(s)
			require.NoError(t, err)
			back, err := tc.DecryptString(text)
			require.NoError(t, err)
			assert.Equal(t, s, back)
		}
	}
}

func TestTextCipherRejectsForeignText(t *testing.T) {
	tc, err := symmetric.NewTextCipher(symmetric.LegacyToken(), base62.BitPack)
	require.NoError(t, err)

	_, err = tc.DecryptString("not base62!")
	require.ErrorIs(t, err, base62.ErrInvalidCharacter)

	_, err = tc.DecryptString("8Yt3")
	require.ErrorIs(t, err, symmetric.ErrDecrypt)
}

func TestNewTextCipherRequiresParts(t *testing.T) {
	_, err := symmetric.NewTextCipher(nil, base62.BitPack)
	require.ErrorIs(t, err, symmetric.ErrInvalidKey)

	_, err = symmetric.NewTextCipher(symmetric.LegacyToken(), nil)
	require.ErrorIs(t, err, symmetric.ErrNilEncoding)
}
