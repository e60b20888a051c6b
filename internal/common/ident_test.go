package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExported(t *testing.T) {
	assert.True(t, Exported("Order"))
	assert.False(t, Exported("order"))
	assert.False(t, Exported("_order"))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Order", Capitalize("order"))
	assert.Equal(t, "Order", Capitalize("Order"))
	assert.Equal(t, "", Capitalize(""))
}

func TestDecapitalize(t *testing.T) {
	assert.Equal(t, "order", Decapitalize("Order"))
	assert.Equal(t, "iD", Decapitalize("ID"))
}

func TestMatchCase(t *testing.T) {
	assert.Equal(t, "BuildOrder", MatchCase("buildOrder", true))
	assert.Equal(t, "buildOrder", MatchCase("BuildOrder", false))
}

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "typestate", PkgAlias("construct-generator/typestate"))
	assert.Equal(t, "yaml", PkgAlias("yaml"))
	assert.Equal(t, "", PkgAlias(""))
}
