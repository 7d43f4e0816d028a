// Package attribute provides metadata appenders for generated elements.
//
// An appender attaches annotations (doc markers, tag entries) to a type,
// field or method produced by the emission engine. Factories create
// appenders per instrumented type and compose in order via Compound.
package attribute
