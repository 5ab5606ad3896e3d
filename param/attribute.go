// Package param: attribute ownership shapes.
//
// A configurable type declares each tunable through one of three holder
// shapes, and the shape fixes the ownership rule:
//
//	Attribute[T]         — inline value, freely readable and writable.
//	ReadOnlyAttribute[T] — inline value, readable by everyone; the owner
//	                       updates it by reassigning the whole holder.
//	Aggregate[T]         — non-owning pointer to externally managed data;
//	                       replacing it never touches the referent.
//	Component[T]         — exclusively owned pointer; replacing it releases
//	                       the previous value, and the owner must Close the
//	                       holder on teardown.
//
// The holders are plain data with no locking; serialize concurrent
// mutation externally, as with any other struct field.
package param

import "io"

// Attribute holds a subclass value inline and exposes it both by value
// and by reference.
type Attribute[T any] struct {
	value T
}

// NewAttribute returns an Attribute initialized to v.
func NewAttribute[T any](v T) Attribute[T] {
	return Attribute[T]{value: v}
}

// Set replaces the stored value.
func (a *Attribute[T]) Set(v T) { a.value = v }

// Get returns a copy of the stored value.
func (a *Attribute[T]) Get() T { return a.value }

// Ptr returns a mutable reference to the stored value.
func (a *Attribute[T]) Ptr() *T { return &a.value }

// ReadOnlyAttribute holds a subclass value inline and exposes only the
// immutable accessor. The owning type updates it by installing a fresh
// holder (x.field = NewReadOnlyAttribute(v)); outsiders can only read.
type ReadOnlyAttribute[T any] struct {
	value T
}

// NewReadOnlyAttribute returns a ReadOnlyAttribute fixed to v.
func NewReadOnlyAttribute[T any](v T) ReadOnlyAttribute[T] {
	return ReadOnlyAttribute[T]{value: v}
}

// Get returns a copy of the stored value.
func (a ReadOnlyAttribute[T]) Get() T { return a.value }

// Aggregate holds a non-owning reference to an externally managed object.
// The holder never participates in the referent's lifetime: Set swaps the
// pointer and nothing else.
type Aggregate[T any] struct {
	ref *T
}

// Set replaces the reference. The previous referent is untouched.
func (a *Aggregate[T]) Set(ref *T) { a.ref = ref }

// Get returns the current reference, which may be nil.
func (a *Aggregate[T]) Get() *T { return a.ref }

// Component holds an exclusively owned reference. Exactly one holder owns
// the value at a time: Set releases the previously owned value before
// installing the new one, and the owning type must call Close during its
// own teardown to release the last value.
//
// Release means calling Close on the owned value when it implements
// io.Closer; values without a Close method are simply dropped.
type Component[T any] struct {
	owned *T
}

// Set installs v as the owned value, releasing the previous one first.
// Installing the value already held is a no-op, so accidental
// self-assignment cannot release a live value.
func (c *Component[T]) Set(v *T) {
	if c.owned == v {
		return
	}
	releaseOwned(c.owned)
	c.owned = v
}

// Get returns the owned value, which may be nil.
func (c *Component[T]) Get() *T { return c.owned }

// Close releases the owned value and clears the holder. It returns the
// released value's Close error, if any; closing an empty holder is a no-op.
func (c *Component[T]) Close() error {
	v := c.owned
	c.owned = nil
	if v == nil {
		return nil
	}
	if closer, ok := any(v).(io.Closer); ok {
		return closer.Close()
	}

	return nil
}

// releaseOwned closes v when it is closable. Set discards the error:
// replacement mirrors destruction, which has no error channel.
func releaseOwned[T any](v *T) {
	if v == nil {
		return
	}
	if closer, ok := any(v).(io.Closer); ok {
		_ = closer.Close()
	}
}
