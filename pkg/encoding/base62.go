package encoding

import (
	"github.com/eknkc/basex"
)

// Base62Alphabet is the alphabet used for Base62 encoding. It contains only
// characters that are valid in Windows file names on every volume type.
const Base62Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// base62 is the Base62 encoder. It is safe for concurrent use.
var base62 = mustNewEncoding(Base62Alphabet)

// mustNewEncoding creates an encoder for alphabet or panics.
func mustNewEncoding(alphabet string) *basex.Encoding {
	encoding, err := basex.NewEncoding(alphabet)
	if err != nil {
		panic("unable to initialize encoder: " + err.Error())
	}
	return encoding
}

// EncodeBase62 performs Base62 encoding.
func EncodeBase62(value []byte) string {
	return base62.Encode(value)
}

// DecodeBase62 performs Base62 decoding.
func DecodeBase62(value string) ([]byte, error) {
	return base62.Decode(value)
}
