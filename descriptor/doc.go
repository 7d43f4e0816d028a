// Package descriptor models the types and executable members the generator
// works against: named types, their method sets and constructor functions.
//
// Descriptors are either built by hand (tests, synthetic types) or loaded
// from real Go packages via the x/tools go/packages loader.
package descriptor
