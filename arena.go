package radixsort

import (
	"fmt"
	"reflect"

	"github.com/edsrzf/mmap-go"
	"github.com/sirupsen/logrus"

	sorterrors "github.com/tamirms/radixsort/errors"
	"github.com/tamirms/radixsort/internal/encoding"
)

// scratch is the secondary working buffer of one sort call. Its contents are
// undefined until a scatter writes them: every index is written exactly once
// per executed pass before any read, which the disjoint offset tables
// guarantee.
type scratch[T any] struct {
	data []T
	mm   mmap.MMap // nil when heap-backed
}

// newScratch allocates room for n elements. Element types without pointers
// whose buffer reaches threshold bytes are placed in an anonymous mapping,
// which skips the Go heap's up-front zeroing and is returned to the OS as
// soon as the sort ends. If the mapping fails the heap is used instead.
func newScratch[T any](n int, threshold int64, log logrus.FieldLogger) *scratch[T] {
	size := int64(n) * int64(encoding.Size[T]())
	if threshold > 0 && size >= threshold && pointerFree(reflect.TypeFor[T]()) {
		mm, err := mmap.MapRegion(nil, int(size), mmap.RDWR, mmap.ANON, 0)
		if err == nil {
			adviseArena(mm)
			return &scratch[T]{data: encoding.SliceOf[T](mm, n), mm: mm}
		}
		log.WithError(fmt.Errorf("%w: %w", sorterrors.ErrArenaMap, err)).
			WithField("bytes", size).
			Warn("radixsort: using heap scratch buffer")
	}
	return &scratch[T]{data: make([]T, n)}
}

// arena reports whether the buffer lives in an anonymous mapping.
func (s *scratch[T]) arena() bool {
	return s.mm != nil
}

// release drops the buffer. Mapped buffers are unmapped; the slice must not
// be used afterwards.
func (s *scratch[T]) release() error {
	s.data = nil
	if s.mm == nil {
		return nil
	}
	err := s.mm.Unmap()
	s.mm = nil
	if err != nil {
		return fmt.Errorf("%w: %w", sorterrors.ErrArenaUnmap, err)
	}
	return nil
}

// pointerFree reports whether values of t hold no pointers the garbage
// collector would need to see. Only such types may live outside the heap.
func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
