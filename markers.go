package arena

// FullManaged is an embeddable marker type. Embedding it in a type T
// declares T safe to construct via New[T]/NewWith[T] even when T is not
// itself trivially constructible — the Go rendering of the original
// design's "full arena-management" tag.
type FullManaged struct{}

// SkipDestructor is an embeddable marker type. Embedding it in a type T
// declares that T needs no cleanup invocation when allocated through the
// typed construction facade. SkipDestructor subsumes FullManaged: a type
// that embeds it is implicitly safe to construct as well.
type SkipDestructor struct {
	FullManaged
}

// skippable is satisfied by any type embedding SkipDestructor.
type skippable interface {
	skipDestructor()
}

func (SkipDestructor) skipDestructor() {}

// Destroyer is implemented by types that need explicit cleanup when their
// storage is reclaimed. The typed construction facade registers a
// cleanup thunk for any T whose pointer implements Destroyer, unless T
// also satisfies skippable.
type Destroyer interface {
	Destroy()
}
