package models

import "github.com/stackslice/stackslice/internal/dump"

// User is one row of Users.xml.
type User struct {
	ID              *int64
	Reputation      *int64
	CreationDate    *string
	DisplayName     *string
	LastAccessDate  *string
	WebsiteURL      *string
	Location        *string
	AboutMe         *string
	Views           *int64
	UpVotes         *int64
	DownVotes       *int64
	ProfileImageURL *string
	EmailHash       *string
	AccountID       *int64
}

// Users binds Users.xml to the users table.
var Users = TableSpec{
	Entity: "users",
	Table:  "users",
	File:   "Users.xml",
	Columns: []string{
		"id", "reputation", "creation_date", "display_name",
		"last_access_date", "website_url", "location", "about_me",
		"views", "up_votes", "down_votes", "profile_image_url",
		"email_hash", "account_id",
	},
	Bind: func(r dump.Row) []any { return UserFromRow(r).Values() },
}

// UserFromRow coerces one raw dump row into a User.
func UserFromRow(r dump.Row) User {
	return User{
		ID:              dump.ToInt(r.Get("Id")),
		Reputation:      dump.ToInt(r.Get("Reputation")),
		CreationDate:    dump.ToTimestamp(r.Get("CreationDate")),
		DisplayName:     dump.ToText(r.Get("DisplayName")),
		LastAccessDate:  dump.ToTimestamp(r.Get("LastAccessDate")),
		WebsiteURL:      dump.ToText(r.Get("WebsiteUrl")),
		Location:        dump.ToText(r.Get("Location")),
		AboutMe:         dump.ToText(r.Get("AboutMe")),
		Views:           dump.ToInt(r.Get("Views")),
		UpVotes:         dump.ToInt(r.Get("UpVotes")),
		DownVotes:       dump.ToInt(r.Get("DownVotes")),
		ProfileImageURL: dump.ToText(r.Get("ProfileImageUrl")),
		EmailHash:       dump.ToText(r.Get("EmailHash")),
		AccountID:       dump.ToInt(r.Get("AccountId")),
	}
}

// Values returns the column values in Users.Columns order.
func (u User) Values() []any {
	return []any{
		u.ID, u.Reputation, u.CreationDate, u.DisplayName,
		u.LastAccessDate, u.WebsiteURL, u.Location, u.AboutMe,
		u.Views, u.UpVotes, u.DownVotes, u.ProfileImageURL,
		u.EmailHash, u.AccountID,
	}
}
