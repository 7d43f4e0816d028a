// Package matcher provides composable predicates over method descriptors.
//
// Matchers select the methods an interception rule applies to. They combine
// with And, Or and Not; the stock matchers cover kind, name, declaring type
// and modifier tests.
package matcher
