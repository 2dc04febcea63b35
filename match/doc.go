// Package match decides whether two tiles share an edge and, if so, where the
// candidate goes and how it must be turned.
//
// TryMatch compares the four borders of a reference tile with the four
// borders of a candidate, each both directly and reversed: 32 comparisons.
// Every hit is resolved through a fixed table keyed by
// (reference side, candidate side, reversed) to the side of the reference the
// candidate attaches to and the Transform that makes the candidate's facing
// border read exactly like the reference's border.
//
// The table is data, not control flow. It is checked entry by entry against
// real pixel transforms in table_test.go.
//
// Errors:
//
//   - ErrConsistency: a candidate matches the reference on two different sides.
//     Callers (classify, place) wrap it for their own consistency failures.
package match
