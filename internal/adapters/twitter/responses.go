package twitter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lakshcode9/tweetsight/internal/domain"
)

// userResult is the resolved account from a user lookup.
type userResult struct {
	ID        string
	Username  string
	Protected bool
}

// parseUserLookup parses the /2/users/by/username response. The API reports
// an unknown handle as a 200 with an errors array and no data object.
func parseUserLookup(body []byte) (*userResult, error) {
	var raw struct {
		Data *struct {
			ID        string `json:"id"`
			Username  string `json:"username"`
			Protected bool   `json:"protected"`
		} `json:"data"`
		Errors []struct {
			Title  string `json:"title"`
			Detail string `json:"detail"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal user lookup: %w", err)
	}

	if raw.Data == nil || raw.Data.ID == "" {
		if len(raw.Errors) > 0 {
			return nil, fmt.Errorf("%s: %w", raw.Errors[0].Title, domain.ErrAccountNotFound)
		}
		return nil, domain.ErrAccountNotFound
	}

	return &userResult{
		ID:        raw.Data.ID,
		Username:  raw.Data.Username,
		Protected: raw.Data.Protected,
	}, nil
}

// parseTweets parses the /2/users/{id}/tweets response into posts, newest
// first as the API returns them. A missing data array means the account has
// no tweets; that is not an error.
func parseTweets(body []byte) ([]domain.Post, error) {
	var raw struct {
		Data []struct {
			Text          string `json:"text"`
			CreatedAt     string `json:"created_at"`
			PublicMetrics *struct {
				LikeCount    int `json:"like_count"`
				RetweetCount int `json:"retweet_count"`
				ReplyCount   int `json:"reply_count"`
			} `json:"public_metrics"`
		} `json:"data"`
		Errors []struct {
			Title  string `json:"title"`
			Detail string `json:"detail"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal tweets: %w", err)
	}

	if len(raw.Data) == 0 && len(raw.Errors) > 0 {
		return nil, fmt.Errorf("twitter API error: %s: %s", raw.Errors[0].Title, raw.Errors[0].Detail)
	}

	posts := make([]domain.Post, 0, len(raw.Data))
	for _, t := range raw.Data {
		if t.Text == "" {
			continue
		}
		post := domain.Post{Text: t.Text}
		if ts, err := time.Parse(time.RFC3339, t.CreatedAt); err == nil {
			post.CreatedAt = ts
		}
		if m := t.PublicMetrics; m != nil {
			post.Likes = m.LikeCount
			post.Retweets = m.RetweetCount
			post.Replies = m.ReplyCount
		}
		posts = append(posts, post)
	}
	return posts, nil
}
