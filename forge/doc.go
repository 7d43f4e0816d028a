// Package forge is the configuration core of proxy-generator.
//
// A Config is an immutable snapshot of everything the emission engine needs
// to assemble a synthetic type: format version, naming strategy, interfaces,
// ignored methods, visitor chain, behavior rules and attribute defaults.
// Every mutator returns a new Config; prior snapshots stay valid.
//
// Behavior rules are attached through the interception protocol: a method
// selection (Invokable, Method, Constructor, WithImplementing) is assigned a
// behavior via Intercept or WithoutCode, optionally accumulates attribute
// appenders, and is folded back into a new Config by Materialize.
package forge
