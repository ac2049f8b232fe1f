package goBearer

import (
	"errors"
	"fmt"

	"github.com/MrEthical07/goBearer/base62"
	"github.com/MrEthical07/goBearer/symmetric"
	"github.com/MrEthical07/goBearer/wire"
	"github.com/google/uuid"
)

// LegacyFormatVersion is the version number of the untagged deployed format.
const LegacyFormatVersion uint8 = 1

// Format binds a cipher and a text encoding into one token format version.
//
// A tagged format prefixes its text with the alphabet symbol at index Version, so
// several formats can be accepted side by side. The legacy format is untagged.
type Format struct {
	Version  uint8
	Encoding base62.Encoding
	Cipher   *symmetric.Cipher
	Tagged   bool
	// CanonicalGUID writes identifiers in RFC 4122 order instead of the
	// mixed-endian platform layout.
	CanonicalGUID bool
}

// LegacyFormat is the deployed format: untagged, 6-bit packing, legacy token key,
// mixed-endian identifiers.
func LegacyFormat() Format {
	return Format{
		Version:  LegacyFormatVersion,
		Encoding: base62.BitPack,
		Cipher:   symmetric.LegacyToken(),
	}
}

func (f Format) String() string {
	tag := "untagged"
	if f.Tagged {
		tag = "tagged"
	}
	variant := "nil"
	if f.Encoding != nil {
		variant = f.Encoding.Variant().String()
	}
	return fmt.Sprintf("v%d/%s/%s", f.Version, variant, tag)
}

// Validate checks that f can seal and open tokens.
func (f Format) Validate() error {
	if f.Encoding == nil {
		return errors.New("Format Encoding must be set")
	}
	if f.Cipher == nil {
		return errors.New("Format Cipher must be set")
	}
	if f.Version == 0 {
		return errors.New("Format Version must be > 0")
	}
	if f.Tagged && int(f.Version) >= len(f.Encoding.Alphabet()) {
		return errors.New("tagged Format Version must be < 62")
	}
	return nil
}

func (f Format) tag() byte {
	return f.Encoding.Alphabet()[f.Version]
}

func (f Format) seal(payload []byte) (string, error) {
	ct, err := f.Cipher.Encrypt(payload)
	if err != nil {
		return "", err
	}
	text, err := f.Encoding.Encode(ct)
	if err != nil {
		return "", err
	}
	if f.Tagged {
		return string(f.tag()) + text, nil
	}
	return text, nil
}

func (f Format) open(text string) ([]byte, error) {
	if f.Tagged {
		if len(text) < 2 || text[0] != f.tag() {
			return nil, ErrNoMatchingFormat
		}
		text = text[1:]
	}
	ct, err := f.Encoding.Decode(text)
	if err != nil {
		return nil, err
	}
	return f.Cipher.Decrypt(ct)
}

func (f Format) putID(w *wire.Writer, id uuid.UUID) *wire.Writer {
	if f.CanonicalGUID {
		return w.UUID(id)
	}
	return w.GUID(id)
}

func (f Format) readID(r *wire.Reader) (uuid.UUID, error) {
	if f.CanonicalGUID {
		return r.UUID()
	}
	return r.GUID()
}

// candidates orders formats for opening text: tagged formats whose tag matches the
// first symbol, then untagged formats.
func candidates(formats []Format, text string) []Format {
	out := make([]Format, 0, len(formats))
	if len(text) > 1 {
		for _, f := range formats {
			if f.Tagged && text[0] == f.tag() {
				out = append(out, f)
			}
		}
	}
	for _, f := range formats {
		if !f.Tagged {
			out = append(out, f)
		}
	}
	return out
}
