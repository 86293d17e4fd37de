package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"wecomment/internal/model"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, videoID, userID int64, text string, parentID *int64) (int64, error) {
	var id int64
	query := `
		INSERT INTO comments (video_id, user_id, text, parent_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query, videoID, userID, text, parentID).Scan(&id); err != nil {
		return 0, fmt.Errorf("create comment: %w", err)
	}
	return id, nil
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	var comment model.Comment
	query := `SELECT id, video_id, user_id, text, parent_id, created_at, updated_at
	          FROM comments WHERE id = $1`
	if err := r.db.GetContext(ctx, &comment, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("get comment by id: %w", err)
	}
	return &comment, nil
}

// commentWithAuthor is the scan target for the author join.
type commentWithAuthor struct {
	ID            int64     `db:"id"`
	VideoID       int64     `db:"video_id"`
	UserID        int64     `db:"user_id"`
	Text          string    `db:"text"`
	ParentID      *int64    `db:"parent_id"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
	AuthorName    *string   `db:"author_name"`
	AuthorPicture *string   `db:"author_picture"`
}

func (r *commentRepository) ListByVideoID(ctx context.Context, videoID int64) ([]*model.Comment, error) {
	rows := []commentWithAuthor{}
	query := `
		SELECT c.id, c.video_id, c.user_id, c.text, c.parent_id,
		       c.created_at, c.updated_at,
		       u.name AS author_name, u.picture AS author_picture
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.video_id = $1
		ORDER BY c.created_at ASC, c.id ASC`
	if err := r.db.SelectContext(ctx, &rows, query, videoID); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	comments := make([]*model.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, &model.Comment{
			ID:        row.ID,
			VideoID:   row.VideoID,
			UserID:    row.UserID,
			Text:      row.Text,
			ParentID:  row.ParentID,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
			Author: &model.UserSummary{
				ID:      row.UserID,
				Name:    row.AuthorName,
				Picture: row.AuthorPicture,
			},
		})
	}
	return comments, nil
}

func (r *commentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1)`
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("check comment exists: %w", err)
	}
	return exists, nil
}
