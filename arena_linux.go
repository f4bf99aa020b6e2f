//go:build linux

package radixsort

import "golang.org/x/sys/unix"

// MADV_POPULATE_WRITE was added in Linux 5.14.
// On older kernels, madvise returns EINVAL which we ignore.
const madvPopulateWrite = 23

// adviseArena asks for transparent huge pages on the scratch arena, then
// prefaults it for writing so the parallel scatter does not contend on page
// faults. Best-effort: all errors are ignored.
func adviseArena(region []byte) {
	if len(region) == 0 {
		return
	}
	_ = unix.Madvise(region, unix.MADV_HUGEPAGE)
	_ = unix.Madvise(region, madvPopulateWrite)
}
