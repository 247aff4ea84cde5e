package arena

import "unsafe"

// New constructs a zero-valued T inside a and returns a pointer to it. If
// *T implements Destroyer and does not embed SkipDestructor, a cleanup
// thunk calling Destroy is registered atomically alongside the
// allocation (§4.4).
func New[T any](a *Arena) *T {
	return construct[T](a, nil)
}

// NewWith is New, followed by calling ctor with the arena and storing its
// result in place. Passing the arena to ctor is the Go rendering of the
// original design's constructor-first-argument injection: since Go has
// no constructor overloading, the injection is explicit in ctor's own
// signature rather than detected by probing.
func NewWith[T any](a *Arena, ctor func(*Arena) T) *T {
	return construct[T](a, ctor)
}

// construct is the shared body of New and NewWith.
func construct[T any](a *Arena, ctor func(*Arena) T) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	align := unsafe.Alignof(zero)

	var p unsafe.Pointer
	if typeNeedsCleanup[T]() {
		var err error
		p, err = a.allocateAndRegisterCleanup(size, align, destroyThunk[T])
		if err != nil {
			panic(err)
		}
	} else {
		p = a.AllocAligned(size, align)
	}

	t := (*T)(p)
	if size > 0 {
		clear(unsafe.Slice((*byte)(p), size))
	}
	if ctor != nil {
		*t = ctor(a)
	}
	return t
}

// typeNeedsCleanup reports whether New[T]/NewWith[T] must register a
// cleanup thunk for T: *T implements Destroyer and T does not declare
// itself skip-destructor via the SkipDestructor marker.
func typeNeedsCleanup[T any]() bool {
	var np *T
	if _, ok := any(np).(skippable); ok {
		return false
	}
	_, ok := any(np).(Destroyer)
	return ok
}

// destroyThunk type-asserts ptr back to *T and invokes its Destroy
// method. It is only ever registered for a T where typeNeedsCleanup[T]
// reported true, so the assertion always succeeds.
func destroyThunk[T any](ptr unsafe.Pointer) {
	if d, ok := any((*T)(ptr)).(Destroyer); ok {
		d.Destroy()
	}
}

// NewUninitialized is New without the zeroing pass. It is faster but the
// returned value's contents are undefined — in particular, memory reused
// across a Reset is not re-cleared. Use only when the caller immediately
// overwrites every field.
func NewUninitialized[T any](a *Arena) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	align := unsafe.Alignof(zero)
	if typeNeedsCleanup[T]() {
		p, err := a.allocateAndRegisterCleanup(size, align, destroyThunk[T])
		if err != nil {
			panic(err)
		}
		return (*T)(p)
	}
	return (*T)(a.AllocAligned(size, align))
}

// NewSlice allocates a slice of n zero-valued elements of type T. No
// per-element cleanup is ever registered, matching §4.4.6: callers
// needing per-element destruction should construct each element with New
// or NewWith instead.
func NewSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	total := elemSize * n
	p := a.AllocAligned(total, unsafe.Alignof(zero))
	clear(unsafe.Slice((*byte)(p), total))
	return unsafe.Slice((*T)(p), n)
}

// NewBytes allocates n raw, word-aligned, zeroed bytes from the arena.
func NewBytes(a *Arena, n int) []byte {
	if n <= 0 {
		return nil
	}
	p := a.AllocAligned(n, wordSize)
	b := unsafe.Slice((*byte)(p), n)
	clear(b)
	return b
}
