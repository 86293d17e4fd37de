package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := &Client{
		apiKey:     "test-key",
		baseURL:    srv.URL,
		httpClient: srv.Client(),
	}
	return client, srv
}

func TestVideoMetadataThumbnailPreference(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/videos" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{"snippet":{
			"title":"A Video",
			"channelId":"UC123",
			"channelTitle":"Some Channel",
			"thumbnails":{
				"default":{"url":"https://img.example.com/default.jpg"},
				"medium":{"url":"https://img.example.com/medium.jpg"},
				"maxres":{"url":"https://img.example.com/maxres.jpg"}
			}}}]}`))
	}))
	defer srv.Close()

	meta, err := client.VideoMetadata(context.Background(), "abc")
	if err != nil {
		t.Fatalf("VideoMetadata returned error: %v", err)
	}
	if meta.Title != "A Video" || meta.ChannelID != "UC123" || meta.ChannelTitle != "Some Channel" {
		t.Errorf("unexpected snippet fields: %+v", meta)
	}
	if meta.ThumbnailURL != "https://img.example.com/maxres.jpg" {
		t.Errorf("expected maxres thumbnail, got %q", meta.ThumbnailURL)
	}
}

func TestVideoMetadataFallsBackThroughVariants(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{"snippet":{
			"title":"t",
			"thumbnails":{
				"default":{"url":"https://img.example.com/default.jpg"},
				"medium":{"url":"https://img.example.com/medium.jpg"}
			}}}]}`))
	}))
	defer srv.Close()

	meta, err := client.VideoMetadata(context.Background(), "abc")
	if err != nil {
		t.Fatalf("VideoMetadata returned error: %v", err)
	}
	if meta.ThumbnailURL != "https://img.example.com/medium.jpg" {
		t.Errorf("expected medium thumbnail, got %q", meta.ThumbnailURL)
	}
}

func TestVideoMetadataNotFound(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	_, err := client.VideoMetadata(context.Background(), "gone")
	if !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound, got %v", err)
	}
}

func TestCommentsDisabledProbe(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   *bool
	}{
		{
			name:   "enabled",
			status: http.StatusOK,
			body:   `{"items":[]}`,
			want:   boolPtr(false),
		},
		{
			name:   "disabled",
			status: http.StatusForbidden,
			body:   `{"error":{"errors":[{"reason":"commentsDisabled"}]}}`,
			want:   boolPtr(true),
		},
		{
			name:   "other forbidden reason",
			status: http.StatusForbidden,
			body:   `{"error":{"errors":[{"reason":"quotaExceeded"}]}}`,
			want:   nil,
		},
		{
			name:   "unstructured forbidden body",
			status: http.StatusForbidden,
			body:   `nope`,
			want:   nil,
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   `{}`,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/commentThreads" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := client.CommentsDisabled(context.Background(), "abc")
			if err != nil {
				t.Fatalf("CommentsDisabled returned error: %v", err)
			}
			switch {
			case tt.want == nil && got != nil:
				t.Fatalf("expected unknown, got %v", *got)
			case tt.want != nil && got == nil:
				t.Fatalf("expected %v, got unknown", *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Fatalf("expected %v, got %v", *tt.want, *got)
			}
		})
	}
}

func TestUnconfiguredClient(t *testing.T) {
	client := NewClient("")

	if _, err := client.VideoMetadata(context.Background(), "abc"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("VideoMetadata: expected ErrNotConfigured, got %v", err)
	}
	if _, err := client.CommentsDisabled(context.Background(), "abc"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("CommentsDisabled: expected ErrNotConfigured, got %v", err)
	}
}

func boolPtr(b bool) *bool { return &b }
