package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/sahanr/inkpot/internal/model"
)

// MemoryPostRepository keeps the collection in memory. Used by tests
// and available for ephemeral runs.
type MemoryPostRepository struct {
	posts []model.Post
	mu    sync.RWMutex
}

func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{posts: []model.Post{}}
}

func (r *MemoryPostRepository) List(ctx context.Context) ([]model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]model.Post, len(r.posts))
	copy(posts, r.posts)
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID > posts[j].ID })
	return posts, nil
}

func (r *MemoryPostRepository) Get(ctx context.Context, id int64) (model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, post := range r.posts {
		if post.ID == id {
			return post, nil
		}
	}
	return model.Post{}, ErrPostNotFound
}

func (r *MemoryPostRepository) Create(ctx context.Context, post model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts = append([]model.Post{post}, r.posts...)
	return nil
}

func (r *MemoryPostRepository) Update(ctx context.Context, post model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID == post.ID {
			r.posts[i] = post
			return nil
		}
	}
	return ErrPostNotFound
}

func (r *MemoryPostRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.posts[:0]
	for _, post := range r.posts {
		if post.ID != id {
			kept = append(kept, post)
		}
	}
	r.posts = kept
	return nil
}
