package model

type Participant struct {
	UserID    string `db:"id"`
	Nickname  string `db:"nickname"`
	AvatarURL string `db:"avatar_url"`
}
