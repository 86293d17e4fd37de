package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

var (
	// ErrNotConfigured is returned when no API key is set. Callers treat it
	// like any other fetch failure: metadata stays unknown.
	ErrNotConfigured = errors.New("youtube: api key not configured")

	// ErrVideoNotFound is returned when the API answers but lists no items.
	ErrVideoNotFound = errors.New("youtube: video not found")
)

// Metadata is the snippet subset this service keeps for a video.
type Metadata struct {
	Title        string
	ChannelID    string
	ChannelTitle string
	ThumbnailURL string // empty when the snippet carries no usable thumbnail
}

// Client is a minimal YouTube Data API v3 client covering the two read-only
// calls this service needs: the snippet fetch and the comment-capability
// probe.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type thumbnail struct {
	URL string `json:"url"`
}

type videoListResponse struct {
	Items []struct {
		Snippet struct {
			Title        string               `json:"title"`
			ChannelID    string               `json:"channelId"`
			ChannelTitle string               `json:"channelTitle"`
			Thumbnails   map[string]thumbnail `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

type apiErrorResponse struct {
	Error struct {
		Errors []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

// thumbnailPreference orders snippet variants from best to worst.
var thumbnailPreference = []string{"maxres", "standard", "high", "medium", "default"}

// VideoMetadata fetches the snippet for one video.
func (c *Client) VideoMetadata(ctx context.Context, videoID string) (*Metadata, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("id", videoID)
	q.Set("key", c.apiKey)

	var body videoListResponse
	if err := c.getJSON(ctx, "/videos", q, &body); err != nil {
		return nil, err
	}
	if len(body.Items) == 0 {
		return nil, ErrVideoNotFound
	}

	sn := body.Items[0].Snippet
	meta := &Metadata{
		Title:        sn.Title,
		ChannelID:    sn.ChannelID,
		ChannelTitle: sn.ChannelTitle,
	}
	for _, variant := range thumbnailPreference {
		if t, ok := sn.Thumbnails[variant]; ok && t.URL != "" {
			meta.ThumbnailURL = t.URL
			break
		}
	}
	return meta, nil
}

// CommentsDisabled probes whether the source platform allows comments on
// the video, via a one-item commentThreads list. Tri-state result: pointer
// to false on a successful list call, pointer to true on a structured
// "commentsDisabled" forbidden reply, nil for every other outcome.
func (c *Client) CommentsDisabled(ctx context.Context, videoID string) (*bool, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	q := url.Values{}
	q.Set("part", "id")
	q.Set("videoId", videoID)
	q.Set("maxResults", "1")
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/commentThreads?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		// Enabled even when the thread list is empty.
		disabled := false
		return &disabled, nil
	case http.StatusForbidden:
		var body apiErrorResponse
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			return nil, nil
		}
		if len(body.Error.Errors) > 0 && strings.EqualFold(body.Error.Errors[0].Reason, "commentsDisabled") {
			disabled := true
			return &disabled, nil
		}
		return nil, nil
	default:
		return nil, nil
	}
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("youtube: %s returned status %d", path, res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(out)
}
