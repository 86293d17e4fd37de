package service

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"wecomment/internal/model"
	"wecomment/internal/repository"
)

// CommentService builds comment threads and creates comments. Threads are
// two levels deep at render time: roots and their direct replies. Replies
// to replies attach under their actual parent node, which itself sits in
// some root's reply list, so deep chains stay visible without extra
// nesting rules.
type CommentService struct {
	commentRepo  repository.CommentRepository
	voteRepo     repository.VoteRepository
	videoRepo    repository.VideoRepository
	videoService *VideoService
}

func NewCommentService(commentRepo repository.CommentRepository, voteRepo repository.VoteRepository, videoRepo repository.VideoRepository, videoService *VideoService) *CommentService {
	return &CommentService{
		commentRepo:  commentRepo,
		voteRepo:     voteRepo,
		videoRepo:    videoRepo,
		videoService: videoService,
	}
}

// ListThread returns the rendered thread for a video. An unknown video is
// an empty thread, not an error; viewing must never create rows. viewerID
// is nil for anonymous readers.
func (s *CommentService) ListThread(ctx context.Context, youtubeVideoID string, viewerID *int64, sortMode string) ([]*model.CommentNode, error) {
	video, err := s.videoRepo.GetByYouTubeID(ctx, youtubeVideoID)
	if err != nil {
		if errors.Is(err, model.ErrVideoNotFound) {
			return []*model.CommentNode{}, nil
		}
		return nil, err
	}

	comments, err := s.commentRepo.ListByVideoID(ctx, video.ID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return []*model.CommentNode{}, nil
	}

	ids := make([]int64, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}

	scores, err := s.voteRepo.CountByCommentIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	voted := map[int64]bool{}
	if viewerID != nil {
		voted, err = s.voteRepo.VotedCommentIDs(ctx, *viewerID, ids)
		if err != nil {
			return nil, err
		}
	}

	roots := buildThread(comments, scores, voted)
	sortThread(roots, sortMode)
	return roots, nil
}

// buildThread links comments into nodes in one pass over query order. A
// comment whose parent is absent from the set becomes a root, so orphans
// surface instead of vanishing.
func buildThread(comments []*model.Comment, scores map[int64]int, voted map[int64]bool) []*model.CommentNode {
	nodes := make(map[int64]*model.CommentNode, len(comments))
	roots := []*model.CommentNode{}

	for _, c := range comments {
		node := &model.CommentNode{
			ID:        c.ID,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
			ParentID:  c.ParentID,
			Score:     scores[c.ID],
			UserVoted: voted[c.ID],
			Replies:   []*model.CommentNode{},
		}
		if c.Author != nil {
			node.User = *c.Author
		}
		nodes[c.ID] = node

		if c.ParentID != nil {
			if parent, ok := nodes[*c.ParentID]; ok {
				parent.Replies = append(parent.Replies, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}

// sortThread orders roots and each root's direct replies. Deeper reply
// lists keep insertion order.
func sortThread(roots []*model.CommentNode, sortMode string) {
	if sortMode == model.SortTop {
		byScore := func(nodes []*model.CommentNode) {
			sort.SliceStable(nodes, func(i, j int) bool {
				if nodes[i].Score != nodes[j].Score {
					return nodes[i].Score > nodes[j].Score
				}
				return nodes[i].CreatedAt.After(nodes[j].CreatedAt)
			})
		}
		byScore(roots)
		for _, root := range roots {
			byScore(root.Replies)
		}
		return
	}

	sort.SliceStable(roots, func(i, j int) bool {
		return roots[i].CreatedAt.After(roots[j].CreatedAt)
	})
	for _, root := range roots {
		sort.SliceStable(root.Replies, func(i, j int) bool {
			return root.Replies[i].CreatedAt.Before(root.Replies[j].CreatedAt)
		})
	}
}

// Create validates and stores a comment, creating the video row on first
// reference. The parent, when given, must exist and belong to the same
// video.
func (s *CommentService) Create(ctx context.Context, youtubeVideoID string, userID int64, req *model.CreateCommentRequest) (int64, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return 0, model.ErrTextRequired
	}

	video, err := s.videoService.GetOrCreate(ctx, youtubeVideoID)
	if err != nil {
		return 0, err
	}

	if req.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, model.ErrCommentNotFound) {
				return 0, model.ErrInvalidParent
			}
			return 0, err
		}
		if parent.VideoID != video.ID {
			return 0, model.ErrInvalidParent
		}
	}

	id, err := s.commentRepo.Create(ctx, video.ID, userID, text, req.ParentID)
	if err != nil {
		return 0, err
	}

	log.Printf("[CommentService] Created comment: id=%d video=%s user=%d", id, youtubeVideoID, userID)
	return id, nil
}
