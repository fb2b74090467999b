package sheeter_test

import (
	"testing"
	"time"

	"github.com/bjaus/sheeter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textOf(s string) func(person) sheeter.Cell {
	return func(person) sheeter.Cell { return sheeter.TextCell(s) }
}

func TestNewSchemaOrdersColumns(t *testing.T) {
	t.Parallel()
	schema, err := sheeter.NewSchema(
		sheeter.Col(2, "C", textOf("c")),
		sheeter.Col(0, "A", textOf("a")),
		sheeter.Col(1, "B", textOf("b")),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, schema.Len())
	assert.Equal(t, []sheeter.ColumnDescriptor{
		{Index: 0, Header: "A"},
		{Index: 1, Header: "B"},
		{Index: 2, Header: "C"},
	}, schema.Columns())

	g, err := sheeter.NewConverter(schema).Grid("abc", []person{{}})
	require.NoError(t, err)
	for i, h := range g.Header() {
		assert.NotEmpty(t, h, "header %d", i)
	}
	assert.Equal(t, []string{"a", "b", "c"}, g.Strings(1))
}

func TestNewSchemaRejects(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cols []sheeter.Column[person]
		want string
	}{
		"no columns": {
			want: "no columns",
		},
		"empty header": {
			cols: []sheeter.Column[person]{sheeter.Col(0, "", textOf("a"))},
			want: "no header",
		},
		"nil extractor": {
			cols: []sheeter.Column[person]{sheeter.Col[person](0, "A", nil)},
			want: "no extractor",
		},
		"duplicate index": {
			cols: []sheeter.Column[person]{
				sheeter.Col(0, "A", textOf("a")),
				sheeter.Col(0, "B", textOf("b")),
			},
			want: "share index 0",
		},
		"gap": {
			cols: []sheeter.Column[person]{
				sheeter.Col(0, "A", textOf("a")),
				sheeter.Col(2, "C", textOf("c")),
			},
			want: "index 1 missing",
		},
		"not zero based": {
			cols: []sheeter.Column[person]{sheeter.Col(1, "B", textOf("b"))},
			want: "index 0 missing",
		},
		"negative": {
			cols: []sheeter.Column[person]{
				sheeter.Col(-1, "Z", textOf("z")),
				sheeter.Col(0, "A", textOf("a")),
			},
			want: "negative index",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			schema, err := sheeter.NewSchema(tt.cols...)
			require.ErrorIs(t, err, sheeter.ErrInvalidSchema)
			assert.Nil(t, schema)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMustSchemaPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { sheeter.MustSchema[person]() })
}

type base struct {
	ID      string    `sheet:"0,ID"`
	Created time.Time `sheet:"1,Created"`
}

type employee struct {
	base
	Name  string `sheet:"1,Name"`
	Dept  string `sheet:"0,Dept"`
	Email string `sheet:"-"`
	Notes string
}

func TestSchemaOf(t *testing.T) {
	t.Parallel()
	schema, err := sheeter.SchemaOf[employee]()
	require.NoError(t, err)
	assert.Equal(t, []sheeter.ColumnDescriptor{
		{Index: 0, Header: "Dept"},
		{Index: 1, Header: "Name"},
	}, schema.Columns())

	ptrSchema, err := sheeter.SchemaOf[*employee]()
	require.NoError(t, err)
	assert.Equal(t, schema.Columns(), ptrSchema.Columns())
}

func TestSchemaOfHeaderWithComma(t *testing.T) {
	t.Parallel()
	type row struct {
		City string `sheet:"0,City, State"`
	}
	schema, err := sheeter.SchemaOf[row]()
	require.NoError(t, err)
	assert.Equal(t, "City, State", schema.Columns()[0].Header)
}

type missingHeader struct {
	Name string `sheet:"0"`
}

type badIndex struct {
	Name string `sheet:"first,Name"`
}

type unexportedTagged struct {
	name string `sheet:"0,Name"`
}

type gappedTags struct {
	A string `sheet:"0,A"`
	C string `sheet:"2,C"`
}

type untagged struct {
	A string
}

func TestSchemaOfRejects(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		build func() error
		want  string
	}{
		"missing header": {
			build: func() error { _, err := sheeter.SchemaOf[missingHeader](); return err },
			want:  "no header",
		},
		"bad index": {
			build: func() error { _, err := sheeter.SchemaOf[badIndex](); return err },
			want:  "bad index",
		},
		"unexported": {
			build: func() error { _, err := sheeter.SchemaOf[unexportedTagged](); return err },
			want:  "unexported",
		},
		"gap": {
			build: func() error { _, err := sheeter.SchemaOf[gappedTags](); return err },
			want:  "index 1 missing",
		},
		"no columns": {
			build: func() error { _, err := sheeter.SchemaOf[untagged](); return err },
			want:  "no columns",
		},
		"not a struct": {
			build: func() error { _, err := sheeter.SchemaOf[string](); return err },
			want:  "not a struct",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := tt.build()
			require.ErrorIs(t, err, sheeter.ErrInvalidSchema)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSchemaOfIgnoresPromotedFields(t *testing.T) {
	t.Parallel()
	records := []employee{{base: base{ID: "e1"}, Name: "Ana", Dept: "Ops", Email: "a@x", Notes: "n"}}
	mem := sheeter.NewMemory()
	_, err := sheeter.Convert(mem, "staff", records)
	require.NoError(t, err)
	g := mem.Sheet("staff")
	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, []string{"Ops", "Ana"}, g.Strings(1))
}
