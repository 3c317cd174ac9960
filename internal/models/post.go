package models

import "github.com/stackslice/stackslice/internal/dump"

// Post is one row of Posts.xml. Tags keeps the source's pipe-delimited
// token list as a single string; splitting it is a presentation concern.
// ParentID and AcceptedAnswerID are soft references to other posts of the
// same site and may dangle.
type Post struct {
	ID               *int64
	PostTypeID       *int64
	AcceptedAnswerID *int64
	CreationDate     *string
	Score            *int64
	ViewCount        *int64
	Body             *string
	OwnerUserID      *int64
	LastEditorUserID *int64
	LastEditDate     *string
	LastActivityDate *string
	Title            *string
	Tags             *string
	AnswerCount      *int64
	CommentCount     *int64
	ContentLicense   *string
	ParentID         *int64
	ClosedDate       *string
}

// Posts binds Posts.xml to the posts table.
var Posts = TableSpec{
	Entity: "posts",
	Table:  "posts",
	File:   "Posts.xml",
	Columns: []string{
		"id", "post_type_id", "accepted_answer_id", "creation_date",
		"score", "view_count", "body", "owner_user_id",
		"last_editor_user_id", "last_edit_date", "last_activity_date",
		"title", "tags", "answer_count", "comment_count",
		"content_license", "parent_id", "closed_date",
	},
	Bind: func(r dump.Row) []any { return PostFromRow(r).Values() },
}

// PostFromRow coerces one raw dump row into a Post.
func PostFromRow(r dump.Row) Post {
	return Post{
		ID:               dump.ToInt(r.Get("Id")),
		PostTypeID:       dump.ToInt(r.Get("PostTypeId")),
		AcceptedAnswerID: dump.ToInt(r.Get("AcceptedAnswerId")),
		CreationDate:     dump.ToTimestamp(r.Get("CreationDate")),
		Score:            dump.ToInt(r.Get("Score")),
		ViewCount:        dump.ToInt(r.Get("ViewCount")),
		Body:             dump.ToText(r.Get("Body")),
		OwnerUserID:      dump.ToInt(r.Get("OwnerUserId")),
		LastEditorUserID: dump.ToInt(r.Get("LastEditorUserId")),
		LastEditDate:     dump.ToTimestamp(r.Get("LastEditDate")),
		LastActivityDate: dump.ToTimestamp(r.Get("LastActivityDate")),
		Title:            dump.ToText(r.Get("Title")),
		Tags:             dump.ToText(r.Get("Tags")),
		AnswerCount:      dump.ToInt(r.Get("AnswerCount")),
		CommentCount:     dump.ToInt(r.Get("CommentCount")),
		ContentLicense:   dump.ToText(r.Get("ContentLicense")),
		ParentID:         dump.ToInt(r.Get("ParentId")),
		ClosedDate:       dump.ToTimestamp(r.Get("ClosedDate")),
	}
}

// Values returns the column values in Posts.Columns order.
func (p Post) Values() []any {
	return []any{
		p.ID, p.PostTypeID, p.AcceptedAnswerID, p.CreationDate,
		p.Score, p.ViewCount, p.Body, p.OwnerUserID,
		p.LastEditorUserID, p.LastEditDate, p.LastActivityDate,
		p.Title, p.Tags, p.AnswerCount, p.CommentCount,
		p.ContentLicense, p.ParentID, p.ClosedDate,
	}
}
