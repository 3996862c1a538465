package native

import (
	"time"
)

const (
	// ReparseTagSymbolicLink is the reparse tag identifying symbolic links.
	ReparseTagSymbolicLink uint32 = 0xA000000C
	// ReparseTagMountPoint is the reparse tag identifying junctions and mount
	// points.
	ReparseTagMountPoint uint32 = 0xA0000003
)

const (
	// epochDifference is the number of 100-nanosecond intervals between the
	// Windows epoch (1601-01-01) and the Unix epoch.
	epochDifference = 116444736000000000
	// epochDifferenceSeconds is epochDifference expressed in seconds.
	epochDifferenceSeconds = 11644473600
	// ticksPerSecond is the number of 100-nanosecond intervals in a second.
	ticksPerSecond = 10000000
)

// FileTime is a timestamp expressed as 100-nanosecond intervals since
// 1601-01-01 UTC, split into two 32-bit halves.
type FileTime struct {
	LowDateTime  uint32
	HighDateTime uint32
}

// NewFileTime converts a time to a FileTime. Times before the Windows epoch
// convert to the zero FileTime. Sub-tick precision is truncated.
func NewFileTime(t time.Time) FileTime {
	seconds := t.Unix() + epochDifferenceSeconds
	if seconds < 0 {
		return FileTime{}
	}
	ticks := uint64(seconds)*ticksPerSecond + uint64(t.Nanosecond()/100)
	return FileTime{
		LowDateTime:  uint32(ticks),
		HighDateTime: uint32(ticks >> 32),
	}
}

// Ticks returns the joined 64-bit tick count.
func (t FileTime) Ticks() int64 {
	return int64(t.ticks())
}

// ticks returns the joined tick count without sign conversion.
func (t FileTime) ticks() uint64 {
	return uint64(t.HighDateTime)<<32 | uint64(t.LowDateTime)
}

// Time converts the timestamp to a UTC time.
func (t FileTime) Time() time.Time {
	ticks := t.ticks()
	seconds := int64(ticks/ticksPerSecond) - epochDifferenceSeconds
	return time.Unix(seconds, int64(ticks%ticksPerSecond)*100).UTC()
}

// FindData is a single entry produced by a find cursor.
type FindData struct {
	// Attributes is the attribute mask.
	Attributes Attributes
	// CreationTime is the creation timestamp.
	CreationTime FileTime
	// LastAccessTime is the last access timestamp.
	LastAccessTime FileTime
	// LastWriteTime is the last modification timestamp.
	LastWriteTime FileTime
	// FileSizeHigh is the high half of the size.
	FileSizeHigh uint32
	// FileSizeLow is the low half of the size.
	FileSizeLow uint32
	// Reserved0 holds the reparse tag if the reparse point attribute is set.
	Reserved0 uint32
	// Name is the entry name (without any path).
	Name string
}

// Size returns the joined 64-bit size.
func (d *FindData) Size() uint64 {
	return uint64(d.FileSizeHigh)<<32 | uint64(d.FileSizeLow)
}

// SetSize splits a 64-bit size into the two size halves.
func (d *FindData) SetSize(size uint64) {
	d.FileSizeHigh = uint32(size >> 32)
	d.FileSizeLow = uint32(size)
}

// IsDirectory returns whether or not the entry is a directory (including a
// directory symbolic link).
func (d *FindData) IsDirectory() bool {
	return d.Attributes&AttributeDirectory != 0
}

// IsSymbolicLink returns whether or not the entry is a symbolic link. Both the
// reparse point attribute and the symbolic link tag are required.
func (d *FindData) IsSymbolicLink() bool {
	return d.Attributes&AttributeReparsePoint != 0 && d.Reserved0 == ReparseTagSymbolicLink
}

// IsSystemEntry returns whether or not the entry is one of the "." or ".."
// pseudo-entries.
func (d *FindData) IsSystemEntry() bool {
	return d.Name == "." || d.Name == ".."
}
