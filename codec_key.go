package radixsort

// keyCodec delegates digits to one leading field of a composite element.
type keyCodec[T, K any] struct {
	key   func(T) K
	codec Codec[K]
}

// ByKey returns a codec for composite elements that are ordered by a single
// key field. key extracts the field and codec digitizes it; every other part
// of T is payload that moves with its key and is never examined. Because the
// sort is stable, elements with equal keys keep their input order.
//
// key must be cheap and pure: it runs once per element per pass.
//
//	type record struct {
//	    ID   uint64
//	    Name string
//	}
//	c := radixsort.ByKey(func(r record) uint64 { return r.ID }, radixsort.Unsigned[uint64]{})
func ByKey[T, K any](key func(T) K, codec Codec[K]) Codec[T] {
	return keyCodec[T, K]{key: key, codec: codec}
}

func (c keyCodec[T, K]) Digits() int {
	return c.codec.Digits()
}

func (c keyCodec[T, K]) Digit(v T, i int) uint8 {
	return c.codec.Digit(c.key(v), i)
}

// Digiter is implemented by element types that digitize themselves.
// Digits must not depend on the receiver's value; it is called on the zero
// value.
type Digiter interface {
	Digits() int
	Digit(i int) uint8
}

// Method is the codec for element types implementing Digiter.
type Method[T Digiter] struct{}

// Digits returns the digit count reported by the zero T.
func (Method[T]) Digits() int {
	var zero T
	return zero.Digits()
}

// Digit returns v.Digit(i).
func (Method[T]) Digit(v T, i int) uint8 {
	return v.Digit(i)
}
