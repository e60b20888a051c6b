package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"construct-generator/internal/analyze"
	"construct-generator/internal/annotation"
)

func model(t *testing.T, in *analyze.RecordInput) *annotation.Model {
	t.Helper()

	m, diags := annotation.Build(in)
	require.True(t, diags.IsValid(), "%v", diags.Error())

	return m
}

func record(name string, dirs []string, fields ...analyze.FieldInput) *analyze.RecordInput {
	in := &analyze.RecordInput{
		Name:    name,
		PkgName: "demo",
		PkgPath: "example.com/demo",
		Fields:  fields,
	}

	for _, d := range dirs {
		in.Directives = append(in.Directives, analyze.Directive{Text: d})
	}

	return in
}

func field(name, typ string, dirs ...string) analyze.FieldInput {
	f := analyze.FieldInput{Name: name, Type: typ}

	for _, d := range dirs {
		f.Directives = append(f.Directives, analyze.Directive{Text: d})
	}

	return f
}

func generateOne(t *testing.T, in *analyze.RecordInput) string {
	t.Helper()

	g := NewGenerator(DefaultGeneratorConfig())

	files, err := g.Generate([]*annotation.Model{model(t, in)})
	require.NoError(t, err)
	require.Len(t, files, 1)

	return string(files[0].Content)
}

func TestGenerateConstructor(t *testing.T) {
	src := generateOne(t, record("Order",
		[]string{"constructor NewOrder(ID, ..)"},
		field("ID", "string"),
		field("Count", "int"),
		field("At", "time.Time", "value(time.Now())"),
	))

	assert.Contains(t, src, "// Code generated by construct-generator. DO NOT EDIT.")
	assert.Contains(t, src, "package demo")
	assert.Contains(t, src, "func NewOrder(ID string, Count int) Order {")
	assert.Contains(t, src, "ID:    ID,")
	assert.Contains(t, src, "At:    time.Now(),")
	assert.Contains(t, src, `"time"`, "override expression pulls in its import")
}

func TestGenerateConstructorExtraParams(t *testing.T) {
	src := generateOne(t, record("Order",
		[]string{"constructor FromParts(prefix string, ..)"},
		field("ID", "string", "value(prefix + suffix())"),
		field("Count", "int"),
	))

	assert.Contains(t, src, "func FromParts(prefix string, Count int) Order {")
	assert.Contains(t, src, "ID:    prefix + suffix(),")
}

func TestGenerateBuilder(t *testing.T) {
	src := generateOne(t, record("Order",
		[]string{"builder OrderBuilder(Note?)"},
		field("ID", "string"),
		field("Note", "string"),
	))

	assert.Contains(t, src,
		"type OrderBuilder[IDStatus typestate.Status] struct {")
	assert.Contains(t, src, "f0 typestate.Opt[string]")
	assert.Contains(t, src, "f1 typestate.Field[string, IDStatus]")

	assert.Contains(t, src,
		"func NewOrderBuilder() OrderBuilder[typestate.Missing] {")

	assert.Contains(t, src,
		"func (b OrderBuilder[IDStatus]) Note(value string) OrderBuilder[IDStatus] {")
	assert.Contains(t, src,
		"func (b OrderBuilder[IDStatus]) ID(value string) OrderBuilder[typestate.Present] {")
	assert.Contains(t, src, "f1: b.f1.Set(value),")

	assert.Contains(t, src,
		"func BuildOrder(b OrderBuilder[typestate.Present]) Order {")
	assert.Contains(t, src, "Note := b.f0.OrZero()")
	assert.Contains(t, src, "ID := b.f1.Value()")
}

func TestGenerateBuilderOverrideSeesStoredValue(t *testing.T) {
	src := generateOne(t, record("Event",
		[]string{"builder EventBuilder(At)"},
		field("ID", "string"),
		field("At", "time.Time", "value(At.Round(time.Second))"),
	))

	// Re-added field: mandatory setter, stored value bound under the field
	// name, override expression consumes it.
	assert.Contains(t, src, "At := b.f0.Value()")
	assert.Contains(t, src, "At: At.Round(time.Second),")
}

func TestGenerateBuilderOptionalExtraExposedAsOpt(t *testing.T) {
	src := generateOne(t, record("Client",
		[]string{"builder ClientBuilder(timeout time.Duration?)"},
		field("Addr", "string"),
		field("Timeout", "time.Duration", "value(timeout.Or(30 * time.Second))"),
	))

	assert.Contains(t, src, "f0 typestate.Opt[time.Duration]")
	assert.Contains(t, src, "timeout := b.f0")
	assert.Contains(t, src, "Timeout: timeout.Or(30 * time.Second),")
}

func TestGenerateUnexportedBuilder(t *testing.T) {
	src := generateOne(t, record("config",
		[]string{"builder"},
		field("path", "string"),
	))

	assert.Contains(t, src, "type configBuilder[PathStatus typestate.Status] struct {")
	assert.Contains(t, src, "func newConfigBuilder() configBuilder[typestate.Missing] {")
	assert.Contains(t, src, ") path(value string) configBuilder[typestate.Present] {")
	assert.Contains(t, src, "func buildConfig(b configBuilder[typestate.Present]) config {")
}

func TestGenerateGenericRecord(t *testing.T) {
	in := record("Pair",
		[]string{"constructor", "builder PairBuilder"},
		field("Key", "K"),
		field("Value", "V"),
	)
	in.TypeParams = []analyze.TypeParam{
		{Name: "K", Constraint: "comparable"},
		{Name: "V", Constraint: "any"},
	}

	src := generateOne(t, in)

	assert.Contains(t, src, "func NewPair[K comparable, V any](Key K, Value V) Pair[K, V] {")
	assert.Contains(t, src,
		"type PairBuilder[K comparable, V any, KeyStatus typestate.Status, ValueStatus typestate.Status] struct {")
	assert.Contains(t, src,
		"func NewPairBuilder[K comparable, V any]() PairBuilder[K, V, typestate.Missing, typestate.Missing] {")
	assert.Contains(t, src,
		"func BuildPair[K comparable, V any](b PairBuilder[K, V, typestate.Present, typestate.Present]) Pair[K, V] {")
}

func TestGeneratePositionalRecord(t *testing.T) {
	src := generateOne(t, record("Point",
		[]string{"constructor", "builder PointBuilder"},
		analyze.FieldInput{Type: "float64"},
		analyze.FieldInput{Type: "float64"},
	))

	assert.Contains(t, src, "func NewPoint(field_0 float64, field_1 float64) Point {")
	// Positional records use unkeyed literals; setters follow the builder's
	// visibility.
	assert.Contains(t, src, ") Field_0(value float64) ")
	assert.NotContains(t, src, "field_0:")
}

func TestGenerateSkipsRecordsWithoutTargets(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())

	m, _ := annotation.Build(record("Plain", nil, field("ID", "string")))

	files, err := g.Generate([]*annotation.Model{m})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestGenerateFilenameAndHeader(t *testing.T) {
	g := NewGenerator(GeneratorConfig{
		Suffix: "_gen.go",
		Header: "regenerate with: construct-generator gen ./...",
	})

	files, err := g.Generate([]*annotation.Model{model(t, record("HTTPServerConfig",
		[]string{"constructor"},
		field("Addr", "string"),
	))})
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, "http_server_config_gen.go", files[0].Filename)
	assert.Contains(t, string(files[0].Content), "// regenerate with: construct-generator gen ./...")
}

func TestGenerateCommentsToggle(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.GenerateComments = false
	g := NewGenerator(cfg)

	files, err := g.Generate([]*annotation.Model{model(t, record("Order",
		[]string{"constructor", "builder"},
		field("ID", "string"),
	))})
	require.NoError(t, err)
	require.Len(t, files, 1)

	src := string(files[0].Content)
	assert.Contains(t, src, "// Code generated by construct-generator. DO NOT EDIT.")
	assert.NotContains(t, src, "returns a new")
	assert.NotContains(t, src, "Required setters")
}

func TestSnakeCase(t *testing.T) {
	cases := map[string]string{
		"Order":            "order",
		"OrderItem":        "order_item",
		"HTTPServer":       "http_server",
		"userID":           "user_id",
		"parseJSONPayload": "parse_json_payload",
		"A":                "a",
	}

	for in, want := range cases {
		assert.Equal(t, want, snakeCase(in), "input %q", in)
	}
}
