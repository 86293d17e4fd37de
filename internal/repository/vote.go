package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type voteRepository struct {
	db *sqlx.DB
}

func NewVoteRepository(db *sqlx.DB) VoteRepository {
	return &voteRepository{db: db}
}

// Toggle deletes the caller's vote if present, inserts it otherwise, and
// counts the score, all inside one transaction so two rapid toggles cannot
// interleave into a double insert.
func (r *voteRepository) Toggle(ctx context.Context, commentID, userID int64) (bool, int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, 0, fmt.Errorf("begin vote toggle: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM votes WHERE comment_id = $1 AND user_id = $2`,
		commentID, userID)
	if err != nil {
		return false, 0, fmt.Errorf("delete vote: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return false, 0, fmt.Errorf("delete vote: %w", err)
	}

	voted := false
	if deleted == 0 {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO votes (comment_id, user_id) VALUES ($1, $2)
			 ON CONFLICT (comment_id, user_id) DO NOTHING`,
			commentID, userID)
		if err != nil {
			return false, 0, fmt.Errorf("insert vote: %w", err)
		}
		voted = true
	}

	var score int
	err = tx.GetContext(ctx, &score,
		`SELECT COUNT(*) FROM votes WHERE comment_id = $1`, commentID)
	if err != nil {
		return false, 0, fmt.Errorf("count votes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, 0, fmt.Errorf("commit vote toggle: %w", err)
	}
	return voted, score, nil
}

func (r *voteRepository) CountByCommentIDs(ctx context.Context, commentIDs []int64) (map[int64]int, error) {
	counts := make(map[int64]int, len(commentIDs))
	if len(commentIDs) == 0 {
		return counts, nil
	}

	rows := []struct {
		CommentID int64 `db:"comment_id"`
		Count     int   `db:"count"`
	}{}
	query := `
		SELECT comment_id, COUNT(*) AS count
		FROM votes
		WHERE comment_id = ANY($1)
		GROUP BY comment_id`
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(commentIDs)); err != nil {
		return nil, fmt.Errorf("count votes by comment: %w", err)
	}
	for _, row := range rows {
		counts[row.CommentID] = row.Count
	}
	return counts, nil
}

func (r *voteRepository) VotedCommentIDs(ctx context.Context, userID int64, commentIDs []int64) (map[int64]bool, error) {
	voted := make(map[int64]bool, len(commentIDs))
	if len(commentIDs) == 0 {
		return voted, nil
	}

	ids := []int64{}
	query := `
		SELECT comment_id
		FROM votes
		WHERE user_id = $1 AND comment_id = ANY($2)`
	if err := r.db.SelectContext(ctx, &ids, query, userID, pq.Array(commentIDs)); err != nil {
		return nil, fmt.Errorf("list voted comments: %w", err)
	}
	for _, id := range ids {
		voted[id] = true
	}
	return voted, nil
}
