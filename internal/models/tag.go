package models

import "github.com/stackslice/stackslice/internal/dump"

// Tag is one row of Tags.xml.
type Tag struct {
	ID            *int64
	TagName       *string
	Count         *int64
	ExcerptPostID *int64
	WikiPostID    *int64
}

// Tags binds Tags.xml to the tags table.
var Tags = TableSpec{
	Entity: "tags",
	Table:  "tags",
	File:   "Tags.xml",
	Columns: []string{
		"id", "tag_name", "count", "excerpt_post_id", "wiki_post_id",
	},
	Bind: func(r dump.Row) []any { return TagFromRow(r).Values() },
}

// TagFromRow coerces one raw dump row into a Tag.
func TagFromRow(r dump.Row) Tag {
	return Tag{
		ID:            dump.ToInt(r.Get("Id")),
		TagName:       dump.ToText(r.Get("TagName")),
		Count:         dump.ToInt(r.Get("Count")),
		ExcerptPostID: dump.ToInt(r.Get("ExcerptPostId")),
		WikiPostID:    dump.ToInt(r.Get("WikiPostId")),
	}
}

// Values returns the column values in Tags.Columns order.
func (t Tag) Values() []any {
	return []any{t.ID, t.TagName, t.Count, t.ExcerptPostID, t.WikiPostID}
}
