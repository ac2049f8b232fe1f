package wire

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testTokenID = uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")
	testUserID  = uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")
	testBrandID = uuid.MustParse("40848aa9-20ca-4b4b-8c0a-08d7f4b92a4c")
)

const playerLayoutHex = "01" +
	"5bad8f0fcbd99f46a16570867728950e" +
	"79669e7c2574de40944be07fc1f90ae7" +
	"a98a8440ca204b4b8c0a08d7f4b92a4c" +
	"0600485454573130" +
	"0900545354485454573130" +
	"6553f100"

func writePlayerLayout() *Writer {
	return NewWriter().
		Byte(1).
		GUID(testTokenID).
		GUID(testUserID).
		GUID(testBrandID).
		String("HTTW10").
		String("TSTHTTW10").
		Uint32(1700000000)
}

func TestWriterMatchesKnownLayout(t *testing.T) {
	out, err := writePlayerLayout().Bytes()
	require.NoError(t, err)
	assert.Equal(t, playerLayoutHex, hex.EncodeToString(out))
}

func TestReaderRoundTripKnownLayout(t *testing.T) {
	raw, err := hex.DecodeString(playerLayoutHex)
	require.NoError(t, err)

	r := NewReader(raw)
	kind, err := r.Byte()
	require.NoError(t, err)
	assert.Equal(t, byte(1), kind)

	tid, err := r.GUID()
	require.NoError(t, err)
	assert.Equal(t, testTokenID, tid)

	uid, err := r.GUID()
	require.NoError(t, err)
	assert.Equal(t, testUserID, uid)

	bid, err := r.GUID()
	require.NoError(t, err)
	assert.Equal(t, testBrandID, bid)

	name, err := r.String()
	require.NoError(t, err)
	assert.Equal(t, "HTTW10", name)

	ext, err := r.String()
	require.NoError(t, err)
	assert.Equal(t, "TSTHTTW10", ext)

	created, err := r.Uint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(1700000000), created)

	require.NoError(t, r.Done())
}

func TestGUIDLayoutIsMixedEndian(t *testing.T) {
	out, err := NewWriter().GUID(testTokenID).Bytes()
	require.NoError(t, err)
	assert.Equal(t, "5bad8f0fcbd99f46a16570867728950e", hex.EncodeToString(out))
}

func TestUint32IsBigEndian(t *testing.T) {
	out, err := NewWriter().Uint32(0x01020304).Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, out)
}

func TestStringPrefixIsLittleEndian(t *testing.T) {
	s := strings.Repeat("a", 0x0102)
	out, err := NewWriter().String(s).Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x01}, out[:2])
	assert.Len(t, out, 2+0x0102)
}

func TestStringUTF8(t *testing.T) {
	out, err := NewWriter().String("love爱").Bytes()
	require.NoError(t, err)

	got, err := NewReader(out).String()
	require.NoError(t, err)
	assert.Equal(t, "love爱", got)
	assert.Equal(t, byte(7), out[0])
}

func TestStringLengthBoundary(t *testing.T) {
	longest := strings.Repeat("x", MaxFieldLength)
	out, err := NewWriter().String(longest).Bytes()
	require.NoError(t, err)

	got, err := NewReader(out).String()
	require.NoError(t, err)
	assert.Len(t, got, MaxFieldLength)

	_, err = NewWriter().String(longest + "x").Bytes()
	require.ErrorIs(t, err, ErrStringTooLong)
}

func TestWriterErrorIsSticky(t *testing.T) {
	w := NewWriter().Byte(1).String(strings.Repeat("x", MaxFieldLength+1)).Byte(2)
	require.ErrorIs(t, w.Err(), ErrStringTooLong)
	assert.Equal(t, 1, w.Len())

	_, err := w.Bytes()
	require.ErrorIs(t, err, ErrStringTooLong)
}

func TestHexRoundTrip(t *testing.T) {
	out, err := NewWriter().Hex("DEADbeef00").Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{5, 0, 0xde, 0xad, 0xbe, 0xef, 0x00}, out)

	got, err := NewReader(out).Hex()
	require.NoError(t, err)
	assert.Equal(t, "deadbeef00", got)
}

func TestHexRejectsInvalid(t *testing.T) {
	_, err := NewWriter().Hex("xyz").Bytes()
	require.ErrorIs(t, err, ErrInvalidHex)
}

func TestReaderShortBufferEveryPrefix(t *testing.T) {
	raw, err := hex.DecodeString(playerLayoutHex)
	require.NoError(t, err)

	for n := 0; n < len(raw); n++ {
		r := NewReader(raw[:n])
		err := readPlayerLayout(r)
		require.ErrorIs(t, err, ErrShortBuffer, "prefix length %d", n)
	}
}

func TestReaderStringLengthPastEnd(t *testing.T) {
	_, err := NewReader([]byte{0xff, 0xff, 'a'}).String()
	require.ErrorIs(t, err, ErrShortBuffer)
}

func TestReaderDoneReportsTrailingBytes(t *testing.T) {
	r := NewReader([]byte{1, 2})
	_, err := r.Byte()
	require.NoError(t, err)
	assert.Equal(t, 1, r.Remaining())
	require.ErrorIs(t, r.Done(), ErrTrailingBytes)
}

func TestUint16AndUint64(t *testing.T) {
	out, err := NewWriter().Uint16(0xbeef).Uint64(1<<40 + 7).Bytes()
	require.NoError(t, err)

	r := NewReader(out)
	a, err := r.Uint16()
	require.NoError(t, err)
	b, err := r.Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint16(0xbeef), a)
	assert.Equal(t, uint64(1<<40+7), b)
	require.NoError(t, r.Done())
}

func readPlayerLayout(r *Reader) error {
	if _, err := r.Byte(); err != nil {
		return err
	}
	for i := 0; i < 3; i++ {
		if _, err := r.GUID(); err != nil {
			return err
		}
	}
	for i := 0; i < 2; i++ {
		if _, err := r.String(); err != nil {
			return err
		}
	}
	_, err := r.Uint32()
	return err
}

func BenchmarkWritePlayerLayout(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := writePlayerLayout().Bytes(); err != nil {
			b.Fatal(err)
		}
	}
}

func TestUUIDIsRFCOrder(t *testing.T) {
	out, err := NewWriter().UUID(testTokenID).Bytes()
	require.NoError(t, err)
	assert.Equal(t, "0f8fad5bd9cb469fa16570867728950e", hex.EncodeToString(out))

	got, err := NewReader(out).UUID()
	require.NoError(t, err)
	assert.Equal(t, testTokenID, got)
}
