package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/sahanr/inkpot/internal/model"
)

// FilePostRepository persists the whole collection as one JSON array
// file. Every operation loads the entire file, mutates and rewrites it;
// the mutex serializes writers so concurrent mutations cannot clobber
// each other.
type FilePostRepository struct {
	path string
	mu   sync.RWMutex
}

func NewFilePostRepository(path string) (*FilePostRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}
	r := &FilePostRepository{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := r.save([]model.Post{}); err != nil {
			return nil, fmt.Errorf("initializing data file: %w", err)
		}
	}
	return r, nil
}

func (r *FilePostRepository) List(ctx context.Context) ([]model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts, err := r.load()
	if err != nil {
		return nil, err
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID > posts[j].ID })
	return posts, nil
}

func (r *FilePostRepository) Get(ctx context.Context, id int64) (model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts, err := r.load()
	if err != nil {
		return model.Post{}, err
	}
	for _, post := range posts {
		if post.ID == id {
			return post, nil
		}
	}
	return model.Post{}, ErrPostNotFound
}

func (r *FilePostRepository) Create(ctx context.Context, post model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts, err := r.load()
	if err != nil {
		return err
	}
	posts = append([]model.Post{post}, posts...)
	return r.save(posts)
}

func (r *FilePostRepository) Update(ctx context.Context, post model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts, err := r.load()
	if err != nil {
		return err
	}
	for i := range posts {
		if posts[i].ID == post.ID {
			posts[i] = post
			return r.save(posts)
		}
	}
	return ErrPostNotFound
}

func (r *FilePostRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts, err := r.load()
	if err != nil {
		return err
	}
	kept := posts[:0]
	for _, post := range posts {
		if post.ID != id {
			kept = append(kept, post)
		}
	}
	return r.save(kept)
}

func (r *FilePostRepository) load() ([]model.Post, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return []model.Post{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}
	if len(data) == 0 {
		return []model.Post{}, nil
	}
	var posts []model.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("parsing data file: %w", err)
	}
	return posts, nil
}

func (r *FilePostRepository) save(posts []model.Post) error {
	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("writing data file: %w", err)
	}
	return nil
}
