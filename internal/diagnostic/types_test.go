package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())

	d.AddInfo("loaded", "profile loaded", "", "")
	d.AddWarning("empty_rules", "profile has no rules", "rules", "")
	assert.True(t, d.IsValid())

	d.AddError("unknown_version", "unknown profile version", "version", "2")
	assert.False(t, d.IsValid())
	assert.True(t, d.HasErrors())
	require.Error(t, d.Error())
	assert.Contains(t, d.Error().Error(), "unknown_version")
}

func TestDiagnostics_Merge(t *testing.T) {
	t.Parallel()

	var a, b Diagnostics

	a.AddError("one", "first", "", "")
	b.AddError("two", "second", "", "")
	b.AddWarning("w", "warn", "", "")

	a.Merge(b)

	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
}

func TestDiagnosticString(t *testing.T) {
	t.Parallel()

	d := Diagnostic{
		Severity: DiagnosticError,
		Code:     "type_not_found",
		Message:  `type "payment.Missing" not found`,
		Subject:  "implements[0]",
		Detail:   "payment.Missing",
	}

	assert.Equal(t, `[implements[0]] payment.Missing: [type_not_found] type "payment.Missing" not found`, d.String())

	bare := Diagnostic{Message: "plain"}
	assert.Equal(t, "plain", bare.String())
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
