package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"wecomment/internal/httputil"
	"wecomment/internal/model"
	"wecomment/internal/service"
	"wecomment/internal/transport/http/middleware"
)

type VoteHandler struct {
	voteService *service.VoteService
}

func NewVoteHandler(voteService *service.VoteService) *VoteHandler {
	return &VoteHandler{voteService: voteService}
}

// Toggle flips the caller's vote on a comment.
func (h *VoteHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w)
		return
	}

	commentID, err := strconv.ParseInt(chi.URLParam(r, "commentID"), 10, 64)
	if err != nil {
		httputil.WriteNotFound(w)
		return
	}

	result, err := h.voteService.Toggle(r.Context(), commentID, userID)
	if err != nil {
		if errors.Is(err, model.ErrCommentNotFound) {
			httputil.WriteNotFound(w)
			return
		}
		log.Printf("[ERROR] Toggle vote: comment=%d user=%d err=%v", commentID, userID, err)
		httputil.WriteInternalError(w)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}
