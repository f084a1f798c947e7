package service

import (
	"context"
	"errors"
	"time"

	"github.com/sahanr/inkpot/internal/model"
	"github.com/sahanr/inkpot/internal/repository"
)

var ErrTitleRequired = errors.New("title is required")

type PostService struct {
	repo repository.PostRepository
}

func NewPostService(repo repository.PostRepository) *PostService {
	return &PostService{repo: repo}
}

func (s *PostService) ListPosts(ctx context.Context) ([]model.Post, error) {
	return s.repo.List(ctx)
}

func (s *PostService) GetPost(ctx context.Context, id int64) (model.Post, error) {
	return s.repo.Get(ctx, id)
}

// CreatePost assigns the millisecond timestamp as the post id. Two
// creates within the same millisecond collide; callers live with that.
func (s *PostService) CreatePost(ctx context.Context, title, content string) (model.Post, error) {
	if title == "" {
		return model.Post{}, ErrTitleRequired
	}
	now := time.Now().UTC()
	post := model.Post{
		ID:        now.UnixMilli(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return model.Post{}, err
	}
	return post, nil
}

// UpdatePost overwrites title and content as given. Unlike create, the
// title is not validated here.
func (s *PostService) UpdatePost(ctx context.Context, id int64, title, content string) (model.Post, error) {
	post, err := s.repo.Get(ctx, id)
	if err != nil {
		return model.Post{}, err
	}
	now := time.Now().UTC()
	post.Title = title
	post.Content = content
	post.UpdatedAt = &now
	if err := s.repo.Update(ctx, post); err != nil {
		return model.Post{}, err
	}
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
