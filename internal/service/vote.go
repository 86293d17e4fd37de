package service

import (
	"context"
	"log"

	"wecomment/internal/model"
	"wecomment/internal/repository"
)

// VoteService toggles upvotes. A toggle on a vote the user holds removes
// it; on a comment they have not voted on it adds one. There is no
// explicit "set" operation.
type VoteService struct {
	voteRepo    repository.VoteRepository
	commentRepo repository.CommentRepository
}

func NewVoteService(voteRepo repository.VoteRepository, commentRepo repository.CommentRepository) *VoteService {
	return &VoteService{
		voteRepo:    voteRepo,
		commentRepo: commentRepo,
	}
}

// Toggle flips the user's vote on a comment and returns the new state with
// the comment's resulting score.
func (s *VoteService) Toggle(ctx context.Context, commentID, userID int64) (*model.VoteResult, error) {
	exists, err := s.commentRepo.Exists(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrCommentNotFound
	}

	voted, score, err := s.voteRepo.Toggle(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}

	log.Printf("[VoteService] Toggled vote: comment=%d user=%d voted=%t score=%d", commentID, userID, voted, score)
	return &model.VoteResult{Voted: voted, Score: score}, nil
}
