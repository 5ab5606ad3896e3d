// Package param: central protocol and list types.
//
// This file declares Param, List, the Configurable protocol, the Base
// default implementation, and Apply (ordered list replay).
package param

// Param is one configuration entry: a case-sensitive name and an opaque
// string value. The value's grammar belongs to whichever Set implementation
// parses it, not to this package.
type Param struct {
	// Name identifies the parameter. Names are case-sensitive.
	Name string

	// Value is the parameter payload, uninterpreted by this package.
	Value string
}

// List is an ordered sequence of parameters. Insertion order is preserved
// and observable: lookup returns the first match, and updating an existing
// name keeps its physical position. Uniqueness of names is not enforced
// structurally; it is maintained by convention through Insert's
// update-or-append semantics.
//
// A List is an ordinary slice value owned by whoever constructed it.
// Configurable.Parameter always returns a fresh List that shares no backing
// storage with the object's internal state.
type List []Param

// Configurable is the protocol through which unrelated algorithm types are
// identified, configured, and inspected uniformly.
//
// Concrete types usually embed Base to inherit the parameterless defaults
// of Set and Parameter, and must declare NameOfClass themselves: Base
// deliberately omits it, so an embedder that forgets its identity does not
// satisfy Configurable.
//
// NameOfClass reports the run-time identity. For most types this is a
// fixed string equal to the type's declared class name; "mutable" types
// may compute it from internal state, in which case the reported name and
// the declared type name can legitimately disagree.
type Configurable interface {
	// NameOfClass returns the run-time type identifier of this instance.
	NameOfClass() string

	// Set applies a single parameter given as a name/value string pair.
	// It reports whether the name was recognized and the value applied.
	// Unrecognized names must report false, never panic.
	Set(name, value string) bool

	// Parameter returns a fresh snapshot of the object's current
	// parameters in the object's declaration order.
	Parameter() List
}

// Base provides the root defaults of the configurable protocol: no
// parameters at all. It carries no per-instance state, so embedding it
// does not change the embedder's size or layout.
type Base struct{}

// Set reports false: the root of the hierarchy recognizes no parameters.
func (Base) Set(name, value string) bool { return false }

// Parameter returns the empty parameter list.
func (Base) Parameter() List { return nil }

// Apply replays params against obj by calling obj.Set once per entry, in
// list order. Entries whose name obj does not recognize are silently
// skipped; partial application is allowed and no aggregate error surfaces.
func Apply(obj Configurable, params List) {
	for _, p := range params {
		obj.Set(p.Name, p.Value)
	}
}
