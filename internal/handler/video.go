package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"wecomment/internal/httputil"
	"wecomment/internal/model"
	"wecomment/internal/service"
)

type VideoHandler struct {
	videoService *service.VideoService
}

func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// Get resolves one video, creating and hydrating the row on first
// reference.
func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	youtubeVideoID := chi.URLParam(r, "youtubeVideoID")

	video, err := h.videoService.GetOrCreate(r.Context(), youtubeVideoID)
	if err != nil {
		log.Printf("[ERROR] Get video: youtube_id=%s err=%v", youtubeVideoID, err)
		httputil.WriteInternalError(w)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, video)
}

// List returns the browse listing.
func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	hasComments := true
	switch r.URL.Query().Get("has_comments") {
	case "0", "false", "False":
		hasComments = false
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	videos, err := h.videoService.List(r.Context(), hasComments, limit)
	if err != nil {
		log.Printf("[ERROR] List videos: err=%v", err)
		httputil.WriteInternalError(w)
		return
	}

	summaries := make([]model.VideoSummary, 0, len(videos))
	for _, v := range videos {
		summaries = append(summaries, *v)
	}
	httputil.WriteJSON(w, http.StatusOK, model.VideoListResponse{Videos: summaries})
}
