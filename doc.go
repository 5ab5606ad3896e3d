// Package regkit is the introspection core of a registration toolkit:
// uniform string-keyed configuration for heterogeneous algorithm objects,
// and name-based selection of the energy terms an objective is built from.
//
// 🚀 What is regkit?
//
//	A small, dependency-light foundation that the toolkit's numeric
//	algorithms plug into:
//		• Configurable objects: identify-by-name, set-parameter-by-string,
//		  enumerate-parameters — one protocol for every algorithm type
//		• Ordered parameter lists: first-match lookup, in-place update,
//		  prefixed merge for nested sub-objects, YAML round-trip
//		• Energy measures: a closed, category-partitioned enumeration with
//		  canonical short codes, legacy aliases and two-way conversion
//
// ✨ Why choose regkit?
//
//   - Tolerant by design – unknown parameter names fail soft, so old and
//     new configuration lists replay against any algorithm version
//   - Deterministic – insertion order is preserved and observable; name
//     resolution follows one fixed, documented phase order
//   - Pure Go – no cgo, no hidden state, immutable naming tables safe for
//     any number of concurrent readers
//
// Everything is organized under two subpackages:
//
//	param/  — Configurable protocol, parameter lists, attribute ownership shapes
//	energy/ — EnergyMeasure enumeration, categories, ToString/Parse naming
//
// The numerical algorithms themselves (image similarity, point-set
// distances, regularization, optimization) live outside this module and
// consume these packages: they embed param.Base, expose their tunables
// through param.List, and are selected by name via energy.Parse.
package regkit
