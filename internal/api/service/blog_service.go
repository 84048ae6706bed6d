package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"villeh/bloglist/internal/api/models"
	"villeh/bloglist/internal/api/repository"
	apivalidator "villeh/bloglist/internal/validator"

	"github.com/go-playground/validator/v10"
)

// BlogService defines the interface for blog-related business logic.
type BlogService interface {
	ListAll(ctx context.Context) ([]models.Blog, error)
	Create(ctx context.Context, req *models.CreateBlogRequest) (*models.Blog, error)
	Update(ctx context.Context, id string, req *models.UpdateBlogRequest) (*models.Blog, error)
	Delete(ctx context.Context, id string) error
}

type blogService struct {
	blogRepo repository.BlogRepository
}

// NewBlogService creates a new BlogService.
func NewBlogService(blogRepo repository.BlogRepository) BlogService {
	return &blogService{blogRepo: blogRepo}
}

// ListAll returns all blogs in insertion order.
func (s *blogService) ListAll(ctx context.Context) ([]models.Blog, error) {
	return s.blogRepo.ListAll(ctx)
}

// Create validates the payload, applies the likes default and persists
// a new blog.
func (s *blogService) Create(ctx context.Context, req *models.CreateBlogRequest) (*models.Blog, error) {
	if err := apivalidator.GetValidator().Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, missingFields(err))
	}

	likes := 0
	if req.Likes != nil {
		likes = *req.Likes
	}

	blog := &models.Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  likes,
	}
	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

// Update replaces the mutable fields of an existing blog.
func (s *blogService) Update(ctx context.Context, id string, req *models.UpdateBlogRequest) (*models.Blog, error) {
	blog := &models.Blog{
		ID:     id,
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	}
	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

// Delete removes a blog by id; unknown ids are a no-op.
func (s *blogService) Delete(ctx context.Context, id string) error {
	return s.blogRepo.Delete(ctx, id)
}

// missingFields renders a validator error as a short list of the
// offending fields.
func missingFields(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return "missing required fields: " + strings.Join(fields, ", ")
}
