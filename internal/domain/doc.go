// Package domain contains the catalog entities (courses, colleges, careers,
// news items), the enumerations they are classified by, and the criteria
// record that drives every catalog query. It has no knowledge of how the
// catalog is stored or delivered.
package domain
