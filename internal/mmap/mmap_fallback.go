//go:build !unix

// Package mmap provides platform-specific helpers for mapping anonymous
// memory regions.
package mmap

// Anon falls back to a heap slice when anonymous mmap is not available.
func Anon(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return []byte{}, func() error { return nil }, nil
	}
	return make([]byte, size), func() error { return nil }, nil
}
