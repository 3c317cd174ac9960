package models

import "github.com/stackslice/stackslice/internal/dump"

// Badge is one row of Badges.xml.
type Badge struct {
	ID       *int64
	UserID   *int64
	Name     *string
	Date     *string
	Class    *int64
	TagBased *bool
}

// Badges binds Badges.xml to the badges table.
var Badges = TableSpec{
	Entity: "badges",
	Table:  "badges",
	File:   "Badges.xml",
	Columns: []string{
		"id", "user_id", "name", "date", "class", "tag_based",
	},
	Bind: func(r dump.Row) []any { return BadgeFromRow(r).Values() },
}

// BadgeFromRow coerces one raw dump row into a Badge.
func BadgeFromRow(r dump.Row) Badge {
	return Badge{
		ID:       dump.ToInt(r.Get("Id")),
		UserID:   dump.ToInt(r.Get("UserId")),
		Name:     dump.ToText(r.Get("Name")),
		Date:     dump.ToTimestamp(r.Get("Date")),
		Class:    dump.ToInt(r.Get("Class")),
		TagBased: dump.ToBool(r.Get("TagBased")),
	}
}

// Values returns the column values in Badges.Columns order.
func (b Badge) Values() []any {
	return []any{b.ID, b.UserID, b.Name, b.Date, b.Class, b.TagBased}
}
