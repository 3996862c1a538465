// Package memory provides an in-memory implementation of the native file
// interface. It reproduces the behavior of NTFS volumes and SMB shares closely
// enough to exercise the long path layer without Windows, and it enforces
// extended-length paths at its boundary.
package memory
