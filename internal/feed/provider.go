package feed

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=provider.go -destination=mocks/mock.go
type Provider interface {
	// TopPosts returns one page of the feed's top posts for the window,
	// starting after the given cursor ("" for the first page).
	TopPosts(ctx context.Context, name string, window TimeWindow, after string) ([]Post, PageInfo, error)

	// Submission returns the full detail of a single post, gallery metadata included.
	Submission(ctx context.Context, id string) (Post, error)
}
