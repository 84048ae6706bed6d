package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"villeh/bloglist/internal/api/models"
	"villeh/bloglist/internal/api/repository"
	"villeh/bloglist/internal/api/response"
	"villeh/bloglist/internal/api/service"

	"github.com/gin-gonic/gin"
)

// BlogController handles blog-related HTTP requests.
type BlogController struct {
	blogService service.BlogService
}

// NewBlogController creates a new BlogController.
func NewBlogController(blogService service.BlogService) *BlogController {
	return &BlogController{
		blogService: blogService,
	}
}

// List handles GET /api/blogs.
func (bc *BlogController) List(c *gin.Context) {
	blogs, err := bc.blogService.ListAll(c.Request.Context())
	if err != nil {
		slog.Error("listing blogs failed", "error", err)
		response.InternalErrorResponse(c)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

// Create handles POST /api/blogs.
func (bc *BlogController) Create(c *gin.Context) {
	var req models.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	blog, err := bc.blogService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			response.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("creating blog failed", "error", err)
		response.InternalErrorResponse(c)
		return
	}
	c.JSON(http.StatusCreated, blog)
}

// Update handles PUT /api/blogs/:id with a full replace of the
// mutable fields.
func (bc *BlogController) Update(c *gin.Context) {
	var req models.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	blog, err := bc.blogService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			response.ErrorResponse(c, http.StatusNotFound, repository.ErrBlogNotFound.Error())
			return
		}
		slog.Error("updating blog failed", "error", err, "id", c.Param("id"))
		response.InternalErrorResponse(c)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// Delete handles DELETE /api/blogs/:id. Deletion is idempotent: an
// unknown id still answers 204.
func (bc *BlogController) Delete(c *gin.Context) {
	if err := bc.blogService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		slog.Error("deleting blog failed", "error", err, "id", c.Param("id"))
		response.InternalErrorResponse(c)
		return
	}
	c.Status(http.StatusNoContent)
}
