// Package catalog holds the immutable course directory: courses with their
// nested colleges, the state/district table, curated career records, the
// career salary table and the career news feed.
//
// A Catalog is built once, either from the embedded data files (Default),
// from files on disk (Load) or from values assembled in code (New). All
// lookup tables are computed at construction; afterwards the catalog is
// read-only and safe for concurrent use without locking.
//
// Lookups never fail. Unknown identifiers resolve to empty results, false or
// a synthesized fallback record; only loading can return an error.
package catalog
