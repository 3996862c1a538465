package native

import (
	"fmt"
	"sort"
	"strings"
)

// Attributes is a file attribute bit mask.
type Attributes uint32

const (
	// AttributeReadOnly marks a read-only entry.
	AttributeReadOnly Attributes = 0x1
	// AttributeHidden marks a hidden entry.
	AttributeHidden Attributes = 0x2
	// AttributeSystem marks an entry used by the operating system.
	AttributeSystem Attributes = 0x4
	// AttributeDirectory marks a directory.
	AttributeDirectory Attributes = 0x10
	// AttributeArchive marks an entry for backup or removal.
	AttributeArchive Attributes = 0x20
	// AttributeDevice is reserved for system use.
	AttributeDevice Attributes = 0x40
	// AttributeNormal marks an entry with no other attributes set.
	AttributeNormal Attributes = 0x80
	// AttributeTemporary marks a temporary file.
	AttributeTemporary Attributes = 0x100
	// AttributeSparseFile marks a sparse file.
	AttributeSparseFile Attributes = 0x200
	// AttributeReparsePoint marks an entry with an associated reparse point,
	// such as a symbolic link.
	AttributeReparsePoint Attributes = 0x400
	// AttributeCompressed marks a compressed entry.
	AttributeCompressed Attributes = 0x800
	// AttributeOffline marks an entry whose data isn't immediately available.
	AttributeOffline Attributes = 0x1000
	// AttributeNotContentIndexed excludes an entry from content indexing.
	AttributeNotContentIndexed Attributes = 0x2000
	// AttributeEncrypted marks an encrypted entry.
	AttributeEncrypted Attributes = 0x4000

	// InvalidAttributes is the value reported when attributes can't be read.
	InvalidAttributes Attributes = 0xFFFFFFFF
)

// attributeNames maps attribute bits to their names.
var attributeNames = map[Attributes]string{
	AttributeReadOnly:          "readonly",
	AttributeHidden:            "hidden",
	AttributeSystem:            "system",
	AttributeDirectory:         "directory",
	AttributeArchive:           "archive",
	AttributeDevice:            "device",
	AttributeNormal:            "normal",
	AttributeTemporary:         "temporary",
	AttributeSparseFile:        "sparse",
	AttributeReparsePoint:      "reparse",
	AttributeCompressed:        "compressed",
	AttributeOffline:           "offline",
	AttributeNotContentIndexed: "notindexed",
	AttributeEncrypted:         "encrypted",
}

// Has returns whether or not all bits in mask are set.
func (a Attributes) Has(mask Attributes) bool {
	return a&mask == mask
}

// IsDirectory returns whether or not the directory bit is set.
func (a Attributes) IsDirectory() bool {
	return a != InvalidAttributes && a&AttributeDirectory != 0
}

// String provides a human-readable representation of an attribute mask, e.g.
// "readonly|archive".
func (a Attributes) String() string {
	if a == InvalidAttributes {
		return "invalid"
	} else if a == 0 {
		return "none"
	}
	var bits []Attributes
	for bit := range attributeNames {
		if a&bit != 0 {
			bits = append(bits, bit)
		}
	}
	sort.Slice(bits, func(i, j int) bool { return bits[i] < bits[j] })
	names := make([]string, 0, len(bits))
	for _, bit := range bits {
		names = append(names, attributeNames[bit])
	}
	if unknown := a &^ knownAttributes(); unknown != 0 {
		names = append(names, fmt.Sprintf("0x%X", uint32(unknown)))
	}
	return strings.Join(names, "|")
}

// knownAttributes returns the union of all named attribute bits.
func knownAttributes() Attributes {
	var known Attributes
	for bit := range attributeNames {
		known |= bit
	}
	return known
}

// ParseAttributes converts a list of attribute names (as produced by String,
// separated by '|' or ',') into an attribute mask.
func ParseAttributes(names string) (Attributes, bool) {
	var result Attributes
	for _, name := range strings.FieldsFunc(names, func(r rune) bool { return r == '|' || r == ',' }) {
		name = strings.ToLower(strings.TrimSpace(name))
		found := false
		for bit, candidate := range attributeNames {
			if candidate == name {
				result |= bit
				found = true
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return result, true
}
