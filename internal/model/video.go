package model

import (
	"errors"
	"time"
)

// Video is a cache entry keyed by the ID the hosting platform assigned.
// Metadata is populated exclusively from the YouTube Data API; values
// supplied by clients are never persisted. A nil CommentsDisabled means
// "unknown", not "false".
type Video struct {
	ID               int64     `db:"id" json:"id"`
	YouTubeVideoID   string    `db:"youtube_video_id" json:"youtube_video_id"`
	Title            *string   `db:"title" json:"title"`
	ChannelID        *string   `db:"channel_id" json:"channel_id"`
	ChannelTitle     *string   `db:"channel_title" json:"channel_title"`
	ThumbnailURL     *string   `db:"thumbnail_url" json:"thumbnail_url"`
	CommentsDisabled *bool     `db:"yt_comments_disabled" json:"yt_comments_disabled"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// VideoMetadata is the result of one hydration attempt. Fields the external
// API could not provide stay nil; the row is still created with just the
// YouTube ID.
type VideoMetadata struct {
	Title            *string
	ChannelID        *string
	ChannelTitle     *string
	ThumbnailURL     *string
	CommentsDisabled *bool
}

// VideoSummary is one row of the browse listing.
type VideoSummary struct {
	YouTubeVideoID   string     `db:"youtube_video_id" json:"youtube_video_id"`
	Title            *string    `db:"title" json:"title"`
	ChannelID        *string    `db:"channel_id" json:"channel_id"`
	ChannelTitle     *string    `db:"channel_title" json:"channel_title"`
	ThumbnailURL     *string    `db:"thumbnail_url" json:"thumbnail_url"`
	CommentsDisabled *bool      `db:"yt_comments_disabled" json:"yt_comments_disabled"`
	CommentCount     int        `db:"comment_count" json:"comment_count"`
	LastCommentAt    *time.Time `db:"last_comment_at" json:"last_comment_at"`
}

// VideoListResponse wraps the browse listing.
type VideoListResponse struct {
	Videos []VideoSummary `json:"videos"`
}

// DefaultVideoListLimit caps the browse listing when no limit is given.
const DefaultVideoListLimit = 50

var (
	// ErrVideoNotFound is returned when no row exists for a YouTube ID
	ErrVideoNotFound = errors.New("video not found")

	// ErrVideoExists is returned when an insert loses the first-reference
	// race on the unique youtube_video_id constraint
	ErrVideoExists = errors.New("video already exists")
)
