package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"wecomment/internal/httputil"
	"wecomment/internal/model"
	"wecomment/internal/service"
	"wecomment/internal/transport/http/middleware"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// List renders the thread for a video. Anonymous viewers get user_voted
// false everywhere.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	youtubeVideoID := chi.URLParam(r, "youtubeVideoID")

	sortMode := strings.ToLower(r.URL.Query().Get("sort"))
	if sortMode == "" {
		sortMode = model.SortTop
	}

	var viewerID *int64
	if userID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		viewerID = &userID
	}

	comments, err := h.commentService.ListThread(r.Context(), youtubeVideoID, viewerID, sortMode)
	if err != nil {
		log.Printf("[ERROR] List comments: youtube_id=%s err=%v", youtubeVideoID, err)
		httputil.WriteInternalError(w)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, model.ThreadResponse{Comments: comments})
}

// Create stores a new comment or reply.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w)
		return
	}

	youtubeVideoID := chi.URLParam(r, "youtubeVideoID")

	var req model.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, httputil.CodeBadRequest)
		return
	}

	id, err := h.commentService.Create(r.Context(), youtubeVideoID, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrTextRequired):
			httputil.WriteBadRequest(w, httputil.CodeTextRequired)
		case errors.Is(err, model.ErrInvalidParent):
			httputil.WriteBadRequest(w, httputil.CodeInvalidParent)
		default:
			log.Printf("[ERROR] Create comment: youtube_id=%s err=%v", youtubeVideoID, err)
			httputil.WriteInternalError(w)
		}
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, model.CreateCommentResponse{ID: id})
}
