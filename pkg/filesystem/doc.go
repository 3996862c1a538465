// Package filesystem provides long-path-safe access to Windows filesystems. It
// layers path descriptors, lazy directory enumeration, directory tree
// snapshots, and high-level file and directory operations over a
// native.Interface, issuing every native call with extended-length paths.
package filesystem
