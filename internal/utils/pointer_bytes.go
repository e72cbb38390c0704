package utils

import (
	"unsafe"
)

// PointerToBytes exposes the memory behind val as a byte slice of its own size.
func PointerToBytes[T any](val *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(val)), unsafe.Sizeof(*val))
}

// BytesToPointer views the start of b as a *T. It returns false if b is
// too short to hold a T, so the view never reaches past the slice.
func BytesToPointer[T any](b []byte) (*T, bool) {
	var val T

	if size := int(unsafe.Sizeof(val)); size == 0 || len(b) < size {
		return nil, false
	}

	return (*T)(unsafe.Pointer(unsafe.SliceData(b))), true
}
