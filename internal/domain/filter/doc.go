// Package filter implements the catalog query engine: criteria
// normalization, the course, career, college and news predicates, and the
// option sets the query screens are built from.
//
// Every function here is pure. Results keep catalog iteration order unless
// stated otherwise, identical inputs always give identical outputs, and no
// input (empty, unknown or contradictory criteria included) produces an
// error. Contradictions are resolved by Normalize before any predicate runs.
package filter
