// Package param implements the configurable-object protocol: every
// algorithm type in the toolkit, whatever it computes, is driven through
// the same string-keyed surface of ordered (name, value) pairs.
//
// 🚀 What does param give you?
//
//	• Configurable — the three-operation protocol every algorithm type
//	  implements: NameOfClass (run-time identity), Set (apply one
//	  parameter from a string), Parameter (snapshot current parameters)
//	• List — an ordered sequence of (name, value) string pairs with
//	  first-match lookup, update-in-place-or-append insertion, prefixed
//	  merging and first-match removal
//	• Attribute shapes — generic holders for the three ownership rules a
//	  subclass may declare: inline value, non-owning aggregate reference,
//	  exclusively owned component
//	• YAML codec — List marshals to and from a YAML mapping without
//	  reordering entries, so configuration text replays deterministically
//
// ⚙️ Usage:
//
//	import "github.com/tverlaine/regkit/param"
//
//	type Smoother struct {
//	    param.Base
//	    sigma param.Attribute[float64]
//	}
//
//	func (s *Smoother) NameOfClass() string { return "Smoother" }
//
//	func (s *Smoother) Set(name, value string) bool {
//	    if name != "Sigma" {
//	        return false
//	    }
//	    v, err := strconv.ParseFloat(value, 64)
//	    if err != nil {
//	        return false
//	    }
//	    s.sigma.Set(v)
//	    return true
//	}
//
//	func (s *Smoother) Parameter() param.List {
//	    return param.InsertValue(nil, "Sigma", s.sigma.Get())
//	}
//
// Failure semantics: nothing in this package panics or returns an error
// for an unknown name. Set reports false, Get reports the empty string,
// Remove is a no-op — absence is always a soft signal, so parameter lists
// written against one algorithm version replay cleanly against another.
//
// Concurrency: List and the attribute holders carry no locks. Concurrent
// readers are safe on quiescent data; concurrent mutation of the same list
// or object must be serialized by the caller.
package param
