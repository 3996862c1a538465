package identifier

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/mutagen-io/longpath/pkg/encoding"
)

const (
	// PrefixTemporaryDirectory is the prefix used for temporary directory
	// names.
	PrefixTemporaryDirectory = "ltmp"
	// PrefixTemporaryFile is the prefix used for temporary file names.
	PrefixTemporaryFile = "lfil"

	// requiredPrefixLength is the required length for identifier prefixes.
	requiredPrefixLength = 4
	// collisionResistantLength is the number of random bytes backing each
	// identifier (the size of a UUID).
	collisionResistantLength = 16
	// targetBase62Length is the length to which Base62-encoded random values
	// are left-padded so that all identifiers have the same length.
	targetBase62Length = 22
)

// New generates a new collision-resistant identifier with the specified prefix.
// The prefix must consist of exactly four lowercase ASCII letters. The result
// is safe for use as a file name.
func New(prefix string) (string, error) {
	// Validate the prefix.
	if len(prefix) != requiredPrefixLength {
		return "", errors.New("incorrect prefix length")
	}
	for _, r := range prefix {
		if r < 'a' || r > 'z' {
			return "", errors.New("invalid prefix character")
		}
	}

	// Create the random value.
	random, err := uuid.NewRandom()
	if err != nil {
		return "", errors.Wrap(err, "unable to generate random value")
	}

	// Encode the random value and left-pad it.
	encoded := encoding.EncodeBase62(random[:])
	builder := &strings.Builder{}
	builder.Grow(requiredPrefixLength + 1 + targetBase62Length)
	builder.WriteString(prefix)
	builder.WriteByte('_')
	for i := targetBase62Length - len(encoded); i > 0; i-- {
		builder.WriteByte(encoding.Base62Alphabet[0])
	}
	builder.WriteString(encoded)

	// Done.
	return builder.String(), nil
}

// IsValid determines whether or not a string is a valid identifier.
func IsValid(value string) bool {
	// Verify the overall length and the separator position.
	if len(value) != requiredPrefixLength+1+targetBase62Length {
		return false
	} else if value[requiredPrefixLength] != '_' {
		return false
	}

	// Verify the prefix.
	for _, r := range value[:requiredPrefixLength] {
		if r < 'a' || r > 'z' {
			return false
		}
	}

	// Verify the encoded portion.
	for _, r := range value[requiredPrefixLength+1:] {
		if !strings.ContainsRune(encoding.Base62Alphabet, r) {
			return false
		}
	}
	return true
}
