package service

import (
	"context"
	"errors"
	"testing"

	"villeh/bloglist/internal/api/models"
	"villeh/bloglist/internal/api/repository"
	"villeh/bloglist/internal/api/repository/mocks"

	"go.uber.org/mock/gomock"
)

func TestBlogService_CreateDefaultsLikes(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBlogRepository(ctrl)
	svc := NewBlogService(repo)

	var persisted *models.Blog
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, blog *models.Blog) error {
			persisted = blog
			return nil
		})

	blog, err := svc.Create(context.Background(), &models.CreateBlogRequest{
		Title: "Canonical string reduction",
		URL:   "https://example.com/canonical",
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if blog.Likes != 0 {
		t.Errorf("Expected likes to default to 0, got %d", blog.Likes)
	}
	if persisted == nil || persisted.Likes != 0 {
		t.Errorf("Expected the persisted blog to carry 0 likes, got %+v", persisted)
	}
}

func TestBlogService_CreateKeepsExplicitLikes(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBlogRepository(ctrl)
	svc := NewBlogService(repo)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	likes := 12
	blog, err := svc.Create(context.Background(), &models.CreateBlogRequest{
		Title: "Type wars",
		URL:   "https://example.com/typewars",
		Likes: &likes,
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if blog.Likes != 12 {
		t.Errorf("Expected 12 likes, got %d", blog.Likes)
	}
}

func TestBlogService_CreateValidation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateBlogRequest
	}{
		{
			name: "missing title",
			req:  models.CreateBlogRequest{URL: "https://example.com"},
		},
		{
			name: "missing url",
			req:  models.CreateBlogRequest{Title: "Untitled"},
		},
		{
			name: "missing both",
			req:  models.CreateBlogRequest{Author: "Nobody"},
		},
		{
			name: "empty strings",
			req:  models.CreateBlogRequest{Title: "", URL: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// No repository call is expected for invalid input.
			repo := mocks.NewMockBlogRepository(ctrl)
			svc := NewBlogService(repo)

			_, err := svc.Create(context.Background(), &tt.req)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestBlogService_UpdatePropagatesNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBlogRepository(ctrl)
	svc := NewBlogService(repo)

	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(repository.ErrBlogNotFound)

	_, err := svc.Update(context.Background(), "no-such-id", &models.UpdateBlogRequest{Title: "x", URL: "y"})
	if !errors.Is(err, repository.ErrBlogNotFound) {
		t.Errorf("Expected ErrBlogNotFound, got %v", err)
	}
}

func TestBlogService_UpdateFullReplace(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBlogRepository(ctrl)
	svc := NewBlogService(repo)

	var persisted *models.Blog
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, blog *models.Blog) error {
			persisted = blog
			return nil
		})

	blog, err := svc.Update(context.Background(), "abc-123", &models.UpdateBlogRequest{
		Title:  "Refactored",
		Author: "Kent",
		URL:    "https://example.com/refactored",
		Likes:  5,
	})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if blog.ID != "abc-123" {
		t.Errorf("Expected the path id to win, got %q", blog.ID)
	}
	if persisted.Title != "Refactored" || persisted.Author != "Kent" || persisted.Likes != 5 {
		t.Errorf("Expected a full replace, persisted %+v", persisted)
	}
}

func TestBlogService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBlogRepository(ctrl)
	svc := NewBlogService(repo)

	repo.EXPECT().Delete(gomock.Any(), "abc-123").Return(nil)

	if err := svc.Delete(context.Background(), "abc-123"); err != nil {
		t.Errorf("Delete() failed: %v", err)
	}
}
