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

// UserController handles user-related HTTP requests.
type UserController struct {
	userService service.UserService
}

// NewUserController creates a new UserController.
func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// List handles GET /api/users.
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.userService.ListAll(c.Request.Context())
	if err != nil {
		slog.Error("listing users failed", "error", err)
		response.InternalErrorResponse(c)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create handles POST /api/users. A duplicate username answers 400
// with a fixed error body; success answers 200 (not 201 — the
// long-standing contract of this endpoint).
func (uc *UserController) Create(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := uc.userService.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUsernameTaken):
			response.ErrorResponse(c, http.StatusBadRequest, repository.ErrUsernameTaken.Error())
		case errors.Is(err, service.ErrValidation):
			response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			slog.Error("creating user failed", "error", err)
			response.InternalErrorResponse(c)
		}
		return
	}
	c.JSON(http.StatusOK, user)
}
