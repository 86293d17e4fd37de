package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"wecomment/internal/config"
	"wecomment/internal/google"
	"wecomment/internal/model"
	"wecomment/internal/repository"
)

// GoogleIdentity is the slice of the Google OAuth flow the auth service
// depends on.
type GoogleIdentity interface {
	Configured() bool
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	FetchUserInfo(ctx context.Context, accessToken string) (*google.UserInfo, error)
}

// AuthService turns a Google authorization code into a local user and a
// bearer token for the extension.
type AuthService struct {
	userRepo repository.UserRepository
	identity GoogleIdentity
	config   *config.Config
}

func NewAuthService(userRepo repository.UserRepository, identity GoogleIdentity, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		identity: identity,
		config:   cfg,
	}
}

// LoginWithGoogle exchanges the code, resolves the profile, upserts the
// user keyed by the Google subject, and mints an access token.
func (s *AuthService) LoginWithGoogle(ctx context.Context, code string) (string, *model.User, error) {
	token, err := s.identity.Exchange(ctx, code)
	if err != nil {
		return "", nil, fmt.Errorf("exchange code: %w", err)
	}

	info, err := s.identity.FetchUserInfo(ctx, token.AccessToken)
	if err != nil {
		return "", nil, err
	}
	if info.Sub == "" {
		return "", nil, model.ErrInvalidProfile
	}

	user, err := s.userRepo.UpsertByGoogleSub(ctx, info.Sub,
		nullable(info.Email), nullable(info.Name), nullable(info.Picture))
	if err != nil {
		return "", nil, err
	}

	accessToken, err := s.generateAccessToken(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	log.Printf("[AuthService] Logged in user: id=%d", user.ID)
	return accessToken, user, nil
}

// GetUser loads the profile behind a token's user ID.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *AuthService) generateAccessToken(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(time.Duration(s.config.AccessTokenMaxAge) * time.Second).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}
