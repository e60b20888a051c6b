package diagnostic

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Severity: SeverityError,
		Code:     "unknown_field_reference",
		Message:  "no such field",
		Record:   "demo.Order",
		Field:    "Nope",
		Pos:      token.Position{Filename: "order.go", Line: 12, Column: 3},
	}

	assert.Equal(t, "order.go:12:3 [demo.Order] Nope: [unknown_field_reference] no such field", d.String())
}

func TestDiagnosticStringMinimal(t *testing.T) {
	d := Diagnostic{Message: "boom"}
	assert.Equal(t, "boom", d.String())
}

func TestDiagnosticsAccumulation(t *testing.T) {
	var diags Diagnostics

	assert.True(t, diags.IsValid())
	require.NoError(t, diags.Error())

	diags.AddWarning("no_targets", "nothing declared", "demo.Order", "", token.Position{})
	assert.True(t, diags.IsValid())
	assert.False(t, diags.HasErrors())

	diags.AddError("malformed_directive", "bad", "demo.Order", "ID", token.Position{})
	assert.False(t, diags.IsValid())
	require.Error(t, diags.Error())

	var other Diagnostics
	other.AddError("duplicate_parameter", "twice", "demo.Item", "", token.Position{})

	diags.Merge(other)
	assert.Len(t, diags.Errors, 2)
	assert.Len(t, diags.Warnings, 1)

	assert.Len(t, diags.ErrorsFor("demo.Item"), 1)
	assert.Empty(t, diags.ErrorsFor("demo.Other"))
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
