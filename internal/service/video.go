package service

import (
	"context"
	"errors"
	"log"

	"wecomment/internal/cache"
	"wecomment/internal/model"
	"wecomment/internal/repository"
	"wecomment/internal/youtube"
)

// VideoService resolves YouTube video IDs to local rows, creating and
// hydrating them on first reference.
type VideoService struct {
	videoRepo repository.VideoRepository
	yt        *youtube.Client
	cache     cache.VideoCache // nil when Redis is not configured
}

func NewVideoService(videoRepo repository.VideoRepository, yt *youtube.Client, videoCache cache.VideoCache) *VideoService {
	return &VideoService{
		videoRepo: videoRepo,
		yt:        yt,
		cache:     videoCache,
	}
}

// GetOrCreate returns the row for a YouTube video ID, inserting and
// hydrating it if this is the first reference. Hydration failures never
// block creation: the row is stored with whatever metadata was obtained.
func (s *VideoService) GetOrCreate(ctx context.Context, youtubeVideoID string) (*model.Video, error) {
	if s.cache != nil {
		if video, ok := s.cache.Get(ctx, youtubeVideoID); ok {
			return video, nil
		}
	}

	video, err := s.videoRepo.GetByYouTubeID(ctx, youtubeVideoID)
	if err == nil {
		if s.cache != nil {
			s.cache.Set(ctx, video)
		}
		return video, nil
	}
	if !errors.Is(err, model.ErrVideoNotFound) {
		return nil, err
	}

	meta := s.hydrate(ctx, youtubeVideoID)
	video = &model.Video{
		YouTubeVideoID:   youtubeVideoID,
		Title:            meta.Title,
		ChannelID:        meta.ChannelID,
		ChannelTitle:     meta.ChannelTitle,
		ThumbnailURL:     meta.ThumbnailURL,
		CommentsDisabled: meta.CommentsDisabled,
	}
	if err := s.videoRepo.Create(ctx, video); err != nil {
		// Lost the first-reference race; the winner's row is authoritative.
		if errors.Is(err, model.ErrVideoExists) {
			return s.videoRepo.GetByYouTubeID(ctx, youtubeVideoID)
		}
		return nil, err
	}

	log.Printf("[VideoService] Created video: youtube_id=%s", youtubeVideoID)
	if s.cache != nil {
		s.cache.Set(ctx, video)
	}
	return video, nil
}

// hydrate fetches metadata and the comment-capability flag from the YouTube
// Data API. Every failure degrades to unknown fields.
func (s *VideoService) hydrate(ctx context.Context, youtubeVideoID string) model.VideoMetadata {
	var meta model.VideoMetadata

	snippet, err := s.yt.VideoMetadata(ctx, youtubeVideoID)
	if err != nil {
		if !errors.Is(err, youtube.ErrNotConfigured) {
			log.Printf("[VideoService] Hydration FAILED: youtube_id=%s err=%v", youtubeVideoID, err)
		}
	} else {
		meta.Title = nullable(snippet.Title)
		meta.ChannelID = nullable(snippet.ChannelID)
		meta.ChannelTitle = nullable(snippet.ChannelTitle)
		meta.ThumbnailURL = nullable(snippet.ThumbnailURL)
	}

	disabled, err := s.yt.CommentsDisabled(ctx, youtubeVideoID)
	if err != nil {
		if !errors.Is(err, youtube.ErrNotConfigured) {
			log.Printf("[VideoService] Comment probe FAILED: youtube_id=%s err=%v", youtubeVideoID, err)
		}
	} else {
		meta.CommentsDisabled = disabled
	}

	return meta
}

// List returns the browse listing, optionally restricted to videos that
// have at least one comment.
func (s *VideoService) List(ctx context.Context, hasComments bool, limit int) ([]*model.VideoSummary, error) {
	if limit <= 0 {
		limit = model.DefaultVideoListLimit
	}
	return s.videoRepo.List(ctx, hasComments, limit)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
