package service

import (
	"context"

	"golang.org/x/oauth2"

	"wecomment/internal/google"
	"wecomment/internal/model"
)

type mockVideoRepo struct {
	getByYouTubeIDFn func(ctx context.Context, youtubeVideoID string) (*model.Video, error)
	createFn         func(ctx context.Context, video *model.Video) error
	listFn           func(ctx context.Context, hasComments bool, limit int) ([]*model.VideoSummary, error)
}

func (m *mockVideoRepo) GetByYouTubeID(ctx context.Context, youtubeVideoID string) (*model.Video, error) {
	return m.getByYouTubeIDFn(ctx, youtubeVideoID)
}

func (m *mockVideoRepo) Create(ctx context.Context, video *model.Video) error {
	return m.createFn(ctx, video)
}

func (m *mockVideoRepo) List(ctx context.Context, hasComments bool, limit int) ([]*model.VideoSummary, error) {
	return m.listFn(ctx, hasComments, limit)
}

type mockCommentRepo struct {
	createFn        func(ctx context.Context, videoID, userID int64, text string, parentID *int64) (int64, error)
	getByIDFn       func(ctx context.Context, id int64) (*model.Comment, error)
	listByVideoIDFn func(ctx context.Context, videoID int64) ([]*model.Comment, error)
	existsFn        func(ctx context.Context, id int64) (bool, error)
}

func (m *mockCommentRepo) Create(ctx context.Context, videoID, userID int64, text string, parentID *int64) (int64, error) {
	return m.createFn(ctx, videoID, userID, text, parentID)
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockCommentRepo) ListByVideoID(ctx context.Context, videoID int64) ([]*model.Comment, error) {
	return m.listByVideoIDFn(ctx, videoID)
}

func (m *mockCommentRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return m.existsFn(ctx, id)
}

type mockVoteRepo struct {
	toggleFn            func(ctx context.Context, commentID, userID int64) (bool, int, error)
	countByCommentIDsFn func(ctx context.Context, commentIDs []int64) (map[int64]int, error)
	votedCommentIDsFn   func(ctx context.Context, userID int64, commentIDs []int64) (map[int64]bool, error)
}

func (m *mockVoteRepo) Toggle(ctx context.Context, commentID, userID int64) (bool, int, error) {
	return m.toggleFn(ctx, commentID, userID)
}

func (m *mockVoteRepo) CountByCommentIDs(ctx context.Context, commentIDs []int64) (map[int64]int, error) {
	if m.countByCommentIDsFn == nil {
		return map[int64]int{}, nil
	}
	return m.countByCommentIDsFn(ctx, commentIDs)
}

func (m *mockVoteRepo) VotedCommentIDs(ctx context.Context, userID int64, commentIDs []int64) (map[int64]bool, error) {
	if m.votedCommentIDsFn == nil {
		return map[int64]bool{}, nil
	}
	return m.votedCommentIDsFn(ctx, userID, commentIDs)
}

type mockUserRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*model.User, error)
	upsertFn  func(ctx context.Context, googleSub string, email, name, picture *string) (*model.User, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockUserRepo) UpsertByGoogleSub(ctx context.Context, googleSub string, email, name, picture *string) (*model.User, error) {
	return m.upsertFn(ctx, googleSub, email, name, picture)
}

type mockIdentity struct {
	configured      bool
	exchangeFn      func(ctx context.Context, code string) (*oauth2.Token, error)
	fetchUserInfoFn func(ctx context.Context, accessToken string) (*google.UserInfo, error)
}

func (m *mockIdentity) Configured() bool { return m.configured }

func (m *mockIdentity) AuthCodeURL(state string) string {
	return "https://accounts.example.com/auth?state=" + state
}

func (m *mockIdentity) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return m.exchangeFn(ctx, code)
}

func (m *mockIdentity) FetchUserInfo(ctx context.Context, accessToken string) (*google.UserInfo, error) {
	return m.fetchUserInfoFn(ctx, accessToken)
}
