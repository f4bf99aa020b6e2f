//go:build !linux

package radixsort

// adviseArena is a no-op on non-Linux platforms.
func adviseArena(region []byte) {}
