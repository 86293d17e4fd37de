package model

import (
	"errors"
	"time"
)

// Comment belongs to exactly one video and one author. Comments are
// immutable once created; threads materialize at read time.
type Comment struct {
	ID        int64        `db:"id" json:"id"`
	VideoID   int64        `db:"video_id" json:"video_id"`
	UserID    int64        `db:"user_id" json:"-"`
	Text      string       `db:"text" json:"text"`
	ParentID  *int64       `db:"parent_id" json:"parent_id"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt time.Time    `db:"updated_at" json:"-"`
	Author    *UserSummary `json:"author,omitempty"` // Joined field
}

// CommentNode is one rendered thread entry. Replies holds the node's direct
// children; a reply's own replies ride along inside the shared slice and
// are never re-sorted at a third level.
type CommentNode struct {
	ID        int64          `json:"id"`
	Text      string         `json:"text"`
	CreatedAt time.Time      `json:"created_at"`
	ParentID  *int64         `json:"parent_id"`
	Score     int            `json:"score"`
	UserVoted bool           `json:"user_voted"`
	User      UserSummary    `json:"user"`
	Replies   []*CommentNode `json:"replies"`
}

// CreateCommentRequest is the request body for creating a comment.
type CreateCommentRequest struct {
	Text     string `json:"text"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

// CreateCommentResponse echoes only the new ID; clients re-fetch the thread.
type CreateCommentResponse struct {
	ID int64 `json:"id"`
}

// ThreadResponse wraps the ordered root sequence of a thread.
type ThreadResponse struct {
	Comments []*CommentNode `json:"comments"`
}

// Thread sort modes. Anything other than SortTop sorts as SortNew.
const (
	SortTop = "top"
	SortNew = "new"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrTextRequired    = errors.New("comment text is required")
	ErrInvalidParent   = errors.New("parent comment missing or on another video")
)
