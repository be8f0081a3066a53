//go:build !mobile

// Package mobile is the ebitenmobile binding; its code builds only with
// -tags mobile.
package mobile

// Dummy keeps the package non-empty in regular builds.
func Dummy() {}
