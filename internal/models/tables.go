// Package models defines the six dump entity types and their table
// bindings. Each entity is a fixed-shape struct, one field per column with
// nullable columns as pointers, so the coercion of every field is checked
// at compile time instead of flowing through an open-ended attribute map.
package models

import "github.com/stackslice/stackslice/internal/dump"

// TableSpec binds one entity type to its dump file and store table. Columns
// lists the insert columns in binder order; the site column is owned by the
// store layer and excluded here.
type TableSpec struct {
	Entity  string
	Table   string
	File    string
	Columns []string

	// Bind coerces one raw dump row into column values, in Columns order.
	Bind func(dump.Row) []any
}

// Entities is the fixed import order for one site. The entity types carry
// no enforced references to each other, so the order only serves stable,
// reproducible logs.
var Entities = []TableSpec{Posts, Users, Comments, Votes, Tags, Badges}

// EntityByName resolves an entity type by its logical name.
func EntityByName(name string) (TableSpec, bool) {
	for _, spec := range Entities {
		if spec.Entity == name {
			return spec, true
		}
	}

	return TableSpec{}, false
}
