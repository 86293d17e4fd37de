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

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	query := `SELECT id, google_sub, email, name, picture, created_at
	          FROM users WHERE id = $1`
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &user, nil
}

func (r *userRepository) UpsertByGoogleSub(ctx context.Context, googleSub string, email, name, picture *string) (*model.User, error) {
	var user model.User
	query := `
		INSERT INTO users (google_sub, email, name, picture)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (google_sub) DO UPDATE
		SET email = EXCLUDED.email,
		    name = EXCLUDED.name,
		    picture = EXCLUDED.picture
		RETURNING id, google_sub, email, name, picture, created_at`
	if err := r.db.GetContext(ctx, &user, query, googleSub, email, name, picture); err != nil {
		// The google_sub conflict is absorbed by the upsert, so a remaining
		// unique violation can only be the email constraint.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, model.ErrEmailTaken
		}
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return &user, nil
}
