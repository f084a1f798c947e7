package repository

import (
	"context"
	"errors"

	"github.com/sahanr/inkpot/internal/model"
)

var ErrPostNotFound = errors.New("post not found")

// PostRepository is the post store. List returns all posts ordered by
// id descending (newest first). Delete of a nonexistent id is a no-op,
// not an error.
type PostRepository interface {
	List(ctx context.Context) ([]model.Post, error)
	Get(ctx context.Context, id int64) (model.Post, error)
	Create(ctx context.Context, post model.Post) error
	Update(ctx context.Context, post model.Post) error
	Delete(ctx context.Context, id int64) error
}
