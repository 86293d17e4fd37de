package model

import "time"

// Vote marks that one user upvoted one comment. At most one row exists per
// (comment_id, user_id); the toggle operation creates and destroys rows.
type Vote struct {
	ID        int64     `db:"id" json:"id"`
	CommentID int64     `db:"comment_id" json:"comment_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// VoteResult is the outcome of one toggle: the new membership state and the
// comment's score after the mutation.
type VoteResult struct {
	Voted bool `json:"voted"`
	Score int  `json:"score"`
}
