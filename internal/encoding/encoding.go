// Package encoding provides raw views between fixed-size element slices and
// the byte regions that back them.
//
// Views alias memory; nothing is copied. They are only sound for element
// types without pointers, since the garbage collector does not scan memory
// obtained outside the Go heap.
package encoding

import "unsafe"

// Size returns the in-memory size of one T in bytes.
func Size[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// SliceOf reinterprets buf as a []T of length n.
// buf must hold at least n*Size[T]() bytes and be suitably aligned for T;
// page-aligned regions from mmap always are. Panics if buf is too short.
func SliceOf[T any](buf []byte, n int) []T {
	if n == 0 {
		return []T{}
	}
	need := n * Size[T]()
	if len(buf) < need {
		panic("encoding: SliceOf: buffer too short")
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(buf))), n)
}

// BytesOf is the inverse view of SliceOf: it exposes the memory of s as bytes.
func BytesOf[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*Size[T]())
}
