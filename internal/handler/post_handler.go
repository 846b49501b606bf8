package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pgaray/landing-api/internal/common"
	"github.com/pgaray/landing-api/internal/service"
)

// PostHandler handles HTTP requests for blog posts
type PostHandler struct {
	service service.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// ListPosts godoc
// @Summary      List blog posts
// @Description  Metadata of every blog post, newest first. Bodies are not included.
// @Tags         blog
// @Produce      json
// @Success      200  {array}   domain.PostSummary
// @Failure      500  {object}  common.ErrorBody
// @Router       /api/blog [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.service.ListPosts()
	if err != nil {
		logFailure(c, err, "list blog posts")
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch blog posts", err)
		return
	}

	common.SuccessResponse(c, http.StatusOK, posts)
}

// GetPost godoc
// @Summary      Get a blog post
// @Description  One blog post with its body rendered to HTML
// @Tags         blog
// @Produce      json
// @Param        slug  path      string  true  "Post slug (file name without .md)"
// @Success      200  {object}  domain.PostDetail
// @Failure      404  {object}  common.ErrorBody
// @Failure      500  {object}  common.ErrorBody
// @Router       /api/blog/{slug} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.service.GetPost(c.Param("slug"))
	if errors.Is(err, common.ErrPostNotFound) {
		common.ErrorResponse(c, http.StatusNotFound, "Blog post not found", nil)
		return
	}
	if err != nil {
		logFailure(c, err, "get blog post")
		common.ErrorResponse(c, http.StatusInternalServerError, "Error reading blog post", err)
		return
	}

	common.SuccessResponse(c, http.StatusOK, post)
}
