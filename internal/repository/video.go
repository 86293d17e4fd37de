package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"wecomment/internal/model"
)

type videoRepository struct {
	db *sqlx.DB
}

func NewVideoRepository(db *sqlx.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) GetByYouTubeID(ctx context.Context, youtubeVideoID string) (*model.Video, error) {
	var video model.Video
	query := `SELECT id, youtube_video_id, title, channel_id, channel_title,
	                 thumbnail_url, yt_comments_disabled, created_at
	          FROM videos WHERE youtube_video_id = $1`
	if err := r.db.GetContext(ctx, &video, query, youtubeVideoID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrVideoNotFound
		}
		return nil, fmt.Errorf("get video by youtube id: %w", err)
	}
	return &video, nil
}

func (r *videoRepository) Create(ctx context.Context, video *model.Video) error {
	query := `
		INSERT INTO videos (youtube_video_id, title, channel_id, channel_title,
		                    thumbnail_url, yt_comments_disabled)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := r.db.QueryRowxContext(ctx, query,
		video.YouTubeVideoID, video.Title, video.ChannelID, video.ChannelTitle,
		video.ThumbnailURL, video.CommentsDisabled,
	).Scan(&video.ID, &video.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		// 23505 is unique_violation: another request created the row first.
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return model.ErrVideoExists
		}
		return fmt.Errorf("create video: %w", err)
	}
	return nil
}

func (r *videoRepository) List(ctx context.Context, hasComments bool, limit int) ([]*model.VideoSummary, error) {
	videos := []*model.VideoSummary{}

	query := `
		SELECT v.youtube_video_id, v.title, v.channel_id, v.channel_title,
		       v.thumbnail_url, v.yt_comments_disabled,
		       COUNT(c.id) AS comment_count,
		       MAX(c.created_at) AS last_comment_at
		FROM videos v
		LEFT JOIN comments c ON c.video_id = v.id
		GROUP BY v.id`
	if hasComments {
		query += `
		HAVING COUNT(c.id) > 0
		ORDER BY MAX(c.created_at) DESC`
	} else {
		query += `
		ORDER BY v.created_at DESC`
	}
	query += `
		LIMIT $1`

	if err := r.db.SelectContext(ctx, &videos, query, limit); err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	return videos, nil
}
