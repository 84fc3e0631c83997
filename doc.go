// Package bijectset is the module root for a family of open-addressing
// integer hash sets whose keys are non-zero 32-bit integers and whose
// hash function is a bijection on the 32-bit domain.
//
// The actual public API lives in the two subpackages:
//
//   - [github.com/openaddr/bijectset/hash] provides the catalog of
//     reversible integer permutations used as hash functions.
//   - [github.com/openaddr/bijectset/intset] provides the four
//     probe-order set variants (LP, RH, LCFS, BLP) built on top of them.
//
// This package itself exports nothing; it exists only to carry module
// level documentation.
package bijectset
