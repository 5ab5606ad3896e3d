// Package energy names the algorithmic energy terms a registration
// objective can be assembled from.
//
// The Measure enumeration is closed and partitioned into five semantic
// categories by paired begin/end sentinels: image similarity measures,
// point-set distance measures, external point-set forces, internal
// point-set forces, and transformation constraints. Sentinels delimit the
// runs and are never valid selections; only values strictly inside a run
// are selectable.
//
// Naming is total and two-way:
//
//   - Measure.String returns the canonical short code of a selectable
//     value ("LNCC", "FRE", "BE", ...) and "Unknown" for everything else.
//   - Parse resolves a string back to a value: first through per-category
//     alias tables of exact historical synonyms ("NCC" and "LCC" both mean
//     LNCC; "Landmark error" means FRE), consulted category by category in
//     a fixed order, then through a reverse scan over canonical names from
//     the highest selectable value down. Input matching nothing yields
//     (Unknown, ErrUnknownMeasure).
//
// All tables are compile-time constant data: both directions are pure
// functions, safe for any number of concurrent readers.
package energy
