// Package paths implements classification, decomposition, and conversion of
// Windows path strings. It recognizes four mutually exclusive grammars (local
// regular, local extended, share regular, and share extended) and converts
// losslessly between the regular (human-readable) and extended-length forms.
// The package performs no filesystem access, so everything in it can be tested
// on any platform.
package paths
