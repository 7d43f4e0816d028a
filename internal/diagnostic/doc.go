// Package diagnostic provides structured warnings and errors for
// build-profile validation.
//
// Key capabilities:
//   - Unresolvable type reference errors
//   - Unknown behavior and modifier errors
//   - Rule-level subject tracking ("rules[2]")
//   - Aggregation into a single error for CLI exit paths
package diagnostic
