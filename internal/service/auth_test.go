package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"wecomment/internal/config"
	"wecomment/internal/google"
	"wecomment/internal/model"
)

func authTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret",
		AccessTokenMaxAge: 3600,
	}
}

func TestLoginWithGoogle(t *testing.T) {
	userRepo := &mockUserRepo{
		upsertFn: func(ctx context.Context, googleSub string, email, name, picture *string) (*model.User, error) {
			if googleSub != "sub-123" {
				t.Fatalf("unexpected google sub %q", googleSub)
			}
			return &model.User{ID: 7, GoogleSub: googleSub, Email: email, Name: name}, nil
		},
	}
	identity := &mockIdentity{
		configured: true,
		exchangeFn: func(ctx context.Context, code string) (*oauth2.Token, error) {
			return &oauth2.Token{AccessToken: "at"}, nil
		},
		fetchUserInfoFn: func(ctx context.Context, accessToken string) (*google.UserInfo, error) {
			return &google.UserInfo{Sub: "sub-123", Email: "a@example.com", Name: "Alice"}, nil
		},
	}
	svc := NewAuthService(userRepo, identity, authTestConfig())

	tokenString, user, err := svc.LoginWithGoogle(context.Background(), "code")
	if err != nil {
		t.Fatalf("LoginWithGoogle returned error: %v", err)
	}
	if user.ID != 7 {
		t.Fatalf("expected user 7, got %d", user.ID)
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("minted token does not verify: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if id, ok := claims["user_id"].(float64); !ok || int64(id) != 7 {
		t.Fatalf("unexpected user_id claim: %v", claims["user_id"])
	}
}

func TestLoginWithGoogleEmailTaken(t *testing.T) {
	userRepo := &mockUserRepo{
		upsertFn: func(ctx context.Context, googleSub string, email, name, picture *string) (*model.User, error) {
			return nil, model.ErrEmailTaken
		},
	}
	identity := &mockIdentity{
		configured: true,
		exchangeFn: func(ctx context.Context, code string) (*oauth2.Token, error) {
			return &oauth2.Token{AccessToken: "at"}, nil
		},
		fetchUserInfoFn: func(ctx context.Context, accessToken string) (*google.UserInfo, error) {
			return &google.UserInfo{Sub: "other-sub", Email: "a@example.com"}, nil
		},
	}
	svc := NewAuthService(userRepo, identity, authTestConfig())

	_, _, err := svc.LoginWithGoogle(context.Background(), "code")
	if !errors.Is(err, model.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginWithGoogleMissingSub(t *testing.T) {
	userRepo := &mockUserRepo{
		upsertFn: func(ctx context.Context, googleSub string, email, name, picture *string) (*model.User, error) {
			t.Fatal("upsert should not run without a subject")
			return nil, nil
		},
	}
	identity := &mockIdentity{
		configured: true,
		exchangeFn: func(ctx context.Context, code string) (*oauth2.Token, error) {
			return &oauth2.Token{AccessToken: "at"}, nil
		},
		fetchUserInfoFn: func(ctx context.Context, accessToken string) (*google.UserInfo, error) {
			return &google.UserInfo{Email: "a@example.com"}, nil
		},
	}
	svc := NewAuthService(userRepo, identity, authTestConfig())

	_, _, err := svc.LoginWithGoogle(context.Background(), "code")
	if !errors.Is(err, model.ErrInvalidProfile) {
		t.Fatalf("expected ErrInvalidProfile, got %v", err)
	}
}
