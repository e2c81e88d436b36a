package shareable

import (
	"math/bits"
	"unsafe"
)

// Scalar is the set of value types a Cell can hold: every fixed-width type
// whose bit pattern converts losslessly to and from an unsigned integer of
// the same width.
type Scalar interface {
	~bool | ~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr |
		~float32 | ~float64
}

// wordBits is the width of the native atomic word on the target platform.
const wordBits = bits.UintSize

// fitsWord reports whether V's bit pattern fits the native atomic word.
// The answer is fixed per build target: on 32-bit platforms the 64-bit
// scalars do not fit and take the mutex backing instead.
func fitsWord[V Scalar]() bool {
	var v V
	return unsafe.Sizeof(v)*8 <= wordBits
}

// toWord reinterprets v's bits as a zero-extended native word. Only valid
// when V fits the word. The pun is always between same-width types, so the
// result is independent of byte order.
func toWord[V Scalar](v V) uintptr {
	switch unsafe.Sizeof(v) {
	case 1:
		return uintptr(*(*uint8)(unsafe.Pointer(&v)))
	case 2:
		return uintptr(*(*uint16)(unsafe.Pointer(&v)))
	case 4:
		return uintptr(*(*uint32)(unsafe.Pointer(&v)))
	default:
		return uintptr(*(*uint64)(unsafe.Pointer(&v)))
	}
}

// fromWord is the inverse of toWord: the low bits of w reinterpreted as V.
func fromWord[V Scalar](w uintptr) (v V) {
	switch unsafe.Sizeof(v) {
	case 1:
		u := uint8(w)
		return *(*V)(unsafe.Pointer(&u))
	case 2:
		u := uint16(w)
		return *(*V)(unsafe.Pointer(&u))
	case 4:
		u := uint32(w)
		return *(*V)(unsafe.Pointer(&u))
	default:
		u := uint64(w)
		return *(*V)(unsafe.Pointer(&u))
	}
}
