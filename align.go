package arena

import "unsafe"

// wordSize is the default alignment used when a caller does not request a
// coarser one.
const wordSize = unsafe.Sizeof(uintptr(0))

// isPowerOfTwo reports whether a is a power of two. Zero is not a power of
// two.
func isPowerOfTwo(a uintptr) bool {
	return a != 0 && a&(a-1) == 0
}

// alignUp returns the smallest multiple of a that is >= n. a must be a
// power of two; callers must check isPowerOfTwo(a) first.
func alignUp(n, a uintptr) uintptr {
	return (n + a - 1) &^ (a - 1)
}

// alignPointer aligns p up to a, where a must be a power of two.
func alignPointer(p unsafe.Pointer, a uintptr) unsafe.Pointer {
	return unsafe.Pointer(alignUp(uintptr(p), a))
}
