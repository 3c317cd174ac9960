package models

import "github.com/stackslice/stackslice/internal/dump"

// Vote is one row of Votes.xml. UserID and BountyAmount only appear for a
// few vote types; everything else leaves them NULL.
type Vote struct {
	ID           *int64
	PostID       *int64
	VoteTypeID   *int64
	CreationDate *string
	UserID       *int64
	BountyAmount *int64
}

// Votes binds Votes.xml to the votes table.
var Votes = TableSpec{
	Entity: "votes",
	Table:  "votes",
	File:   "Votes.xml",
	Columns: []string{
		"id", "post_id", "vote_type_id", "creation_date",
		"user_id", "bounty_amount",
	},
	Bind: func(r dump.Row) []any { return VoteFromRow(r).Values() },
}

// VoteFromRow coerces one raw dump row into a Vote.
func VoteFromRow(r dump.Row) Vote {
	return Vote{
		ID:           dump.ToInt(r.Get("Id")),
		PostID:       dump.ToInt(r.Get("PostId")),
		VoteTypeID:   dump.ToInt(r.Get("VoteTypeId")),
		CreationDate: dump.ToTimestamp(r.Get("CreationDate")),
		UserID:       dump.ToInt(r.Get("UserId")),
		BountyAmount: dump.ToInt(r.Get("BountyAmount")),
	}
}

// Values returns the column values in Votes.Columns order.
func (v Vote) Values() []any {
	return []any{
		v.ID, v.PostID, v.VoteTypeID, v.CreationDate,
		v.UserID, v.BountyAmount,
	}
}
