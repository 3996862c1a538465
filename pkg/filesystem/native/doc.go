// Package native defines the narrow boundary between the long path layer and
// the operating system's path-based file APIs. Every path that crosses this
// boundary is in extended-length form. Failures are reported as Errno values
// carrying the platform error code.
package native
