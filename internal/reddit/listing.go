package reddit

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/baptistax/qrfeed/internal/feed"
)

const pageSize = 100

func (c *Client) TopPosts(ctx context.Context, name string, window feed.TimeWindow, after string) ([]feed.Post, feed.PageInfo, error) {
	name = normalizeSubreddit(name)
	if name == "" {
		return nil, feed.PageInfo{}, errors.New("subreddit name is empty")
	}
	if window == "" {
		window = feed.WindowDay
	}

	q := url.Values{}
	q.Set("t", string(window))
	q.Set("limit", strconv.Itoa(pageSize))
	q.Set("raw_json", "1")
	if after != "" {
		q.Set("after", after)
	}

	var out listing
	if err := c.getJSON(ctx, "/r/"+url.PathEscape(name)+"/top", q, &out); err != nil {
		return nil, feed.PageInfo{}, err
	}

	page := feed.PageInfo{After: out.Data.After, HasNextPage: out.Data.After != ""}
	return out.posts(), page, nil
}

func (c *Client) Submission(ctx context.Context, id string) (feed.Post, error) {
	id = strings.TrimPrefix(strings.TrimSpace(id), kindLink+"_")
	if id == "" {
		return feed.Post{}, errors.New("post id is empty")
	}

	q := url.Values{}
	q.Set("raw_json", "1")

	var out listing
	if err := c.getJSON(ctx, "/by_id/"+kindLink+"_"+url.PathEscape(id), q, &out); err != nil {
		return feed.Post{}, err
	}

	posts := out.posts()
	if len(posts) == 0 {
		return feed.Post{}, fmt.Errorf("%w: %s", feed.ErrPostNotFound, id)
	}
	return posts[0], nil
}

func normalizeSubreddit(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "/")
	s = strings.TrimPrefix(s, "r/")
	return strings.Trim(s, "/")
}

var _ feed.Provider = (*Client)(nil)
