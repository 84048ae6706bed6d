package server

import (
	"net/http"

	"villeh/bloglist/internal/api/controller"

	"github.com/gin-gonic/gin"
)

// Server owns the gin engine and wires the API controllers to routes.
type Server struct {
	engine         *gin.Engine
	blogController *controller.BlogController
	userController *controller.UserController
}

// NewServer creates the HTTP server and registers all routes.
func NewServer(blogController *controller.BlogController, userController *controller.UserController) *Server {
	s := &Server{
		engine:         gin.Default(),
		blogController: blogController,
		userController: userController,
	}
	s.registerRoutes()
	return s
}

// Engine exposes the underlying gin engine for net/http and tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.engine.Group("/api")
	{
		api.GET("/blogs", s.blogController.List)
		api.POST("/blogs", s.blogController.Create)
		api.PUT("/blogs/:id", s.blogController.Update)
		api.DELETE("/blogs/:id", s.blogController.Delete)

		api.GET("/users", s.userController.List)
		api.POST("/users", s.userController.Create)
	}
}
