package repository

import (
	"context"

	"wecomment/internal/model"
)

// UserRepository persists Google-identified users.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	// UpsertByGoogleSub inserts or refreshes the row keyed by the Google
	// subject and returns the current state.
	UpsertByGoogleSub(ctx context.Context, googleSub string, email, name, picture *string) (*model.User, error)
}

// VideoRepository persists video rows keyed by the external YouTube ID.
type VideoRepository interface {
	GetByYouTubeID(ctx context.Context, youtubeVideoID string) (*model.Video, error)
	// Create inserts the row and fills ID and CreatedAt. A concurrent insert
	// of the same YouTube ID surfaces as model.ErrVideoExists.
	Create(ctx context.Context, video *model.Video) error
	List(ctx context.Context, hasComments bool, limit int) ([]*model.VideoSummary, error)
}

// CommentRepository persists comments and loads them with their authors.
type CommentRepository interface {
	Create(ctx context.Context, videoID, userID int64, text string, parentID *int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	// ListByVideoID returns all comments for a video with authors joined,
	// ordered by creation time then id.
	ListByVideoID(ctx context.Context, videoID int64) ([]*model.Comment, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// VoteRepository persists upvotes.
type VoteRepository interface {
	// Toggle flips the caller's vote on a comment inside one transaction and
	// returns the resulting state and score.
	Toggle(ctx context.Context, commentID, userID int64) (voted bool, score int, err error)
	CountByCommentIDs(ctx context.Context, commentIDs []int64) (map[int64]int, error)
	// VotedCommentIDs returns which of the given comments the user has voted on.
	VotedCommentIDs(ctx context.Context, userID int64, commentIDs []int64) (map[int64]bool, error)
}
