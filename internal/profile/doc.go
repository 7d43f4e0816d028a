// Package profile loads declarative YAML build profiles and folds them into
// forge configurations.
//
// Pipeline:
//  1. Load packages → descriptor graph
//  2. Load YAML profile → validate against the graph
//  3. Apply: fold format, naming, modifiers, interfaces and rules through
//     the fluent Config API (rules in file order, later rules win on overlap)
package profile
