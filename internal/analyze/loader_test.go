package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBasicExample(t *testing.T) {
	records, err := Load("construct-generator/examples/basic")
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "Order", rec.Name)
	assert.Equal(t, "basic", rec.PkgName)
	assert.Equal(t, "construct-generator/examples/basic", rec.PkgPath)
	assert.NotEmpty(t, rec.Dir)
	assert.Equal(t, "construct-generator/examples/basic.Order", rec.String())

	require.Len(t, rec.Directives, 2)
	assert.Equal(t, "constructor NewOrder(ID, ..)", rec.Directives[0].Text)
	assert.Equal(t, "builder OrderBuilder(Note?)", rec.Directives[1].Text)
	assert.True(t, rec.Directives[0].Pos.IsValid())

	require.Len(t, rec.Fields, 5)
	assert.Equal(t, "ID", rec.Fields[0].Name)
	assert.Equal(t, "string", rec.Fields[0].Type)
	assert.Empty(t, rec.Fields[0].Directives)

	created := rec.Fields[4]
	assert.Equal(t, "CreatedAt", created.Name)
	assert.Equal(t, "time.Time", created.Type)
	require.Len(t, created.Directives, 1)
	assert.Equal(t, "value(time.Now())", created.Directives[0].Text)
}

func TestLoadGenericExample(t *testing.T) {
	records, err := Load("construct-generator/examples/generic")
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "Pair", rec.Name)

	require.Len(t, rec.TypeParams, 2)
	assert.Equal(t, TypeParam{Name: "K", Constraint: "comparable"}, rec.TypeParams[0])
	assert.Equal(t, TypeParam{Name: "V", Constraint: "any"}, rec.TypeParams[1])

	require.Len(t, rec.Fields, 2)
	assert.Equal(t, "K", rec.Fields[0].Type)
	assert.Equal(t, "V", rec.Fields[1].Type)
}

func TestLoadIgnoresUnannotatedStructs(t *testing.T) {
	// The analyze package itself declares structs but no directives.
	records, err := Load("construct-generator/internal/analyze")
	require.NoError(t, err)
	assert.Empty(t, records)
}
