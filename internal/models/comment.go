package models

import "github.com/stackslice/stackslice/internal/dump"

// Comment is one row of Comments.xml. PostID is a soft reference: the post
// may be absent from the same site's import, and that is not validated.
type Comment struct {
	ID              *int64
	PostID          *int64
	Score           *int64
	Text            *string
	CreationDate    *string
	UserDisplayName *string
	UserID          *int64
	ContentLicense  *string
}

// Comments binds Comments.xml to the comments table.
var Comments = TableSpec{
	Entity: "comments",
	Table:  "comments",
	File:   "Comments.xml",
	Columns: []string{
		"id", "post_id", "score", "text", "creation_date",
		"user_display_name", "user_id", "content_license",
	},
	Bind: func(r dump.Row) []any { return CommentFromRow(r).Values() },
}

// CommentFromRow coerces one raw dump row into a Comment.
func CommentFromRow(r dump.Row) Comment {
	return Comment{
		ID:              dump.ToInt(r.Get("Id")),
		PostID:          dump.ToInt(r.Get("PostId")),
		Score:           dump.ToInt(r.Get("Score")),
		Text:            dump.ToText(r.Get("Text")),
		CreationDate:    dump.ToTimestamp(r.Get("CreationDate")),
		UserDisplayName: dump.ToText(r.Get("UserDisplayName")),
		UserID:          dump.ToInt(r.Get("UserId")),
		ContentLicense:  dump.ToText(r.Get("ContentLicense")),
	}
}

// Values returns the column values in Comments.Columns order.
func (c Comment) Values() []any {
	return []any{
		c.ID, c.PostID, c.Score, c.Text, c.CreationDate,
		c.UserDisplayName, c.UserID, c.ContentLicense,
	}
}
