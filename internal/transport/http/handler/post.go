package handler

import (
	"github.com/gin-gonic/gin"

	"versenotes/internal/app"
	"versenotes/internal/transport/http/response"
)

type PostHandler struct {
	postService *app.PostService
}

type CreatePostRequest struct {
	Content string     `json:"content" binding:"required"`
	UserID  FlexibleID `json:"userId" binding:"required"`
}

func NewPostHandler(postService *app.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostRequest
	if !bindJSON(c, &req, app.MsgPostFieldsRequired) {
		return
	}

	post, err := h.postService.Create(c.Request.Context(), app.CreatePostInput{
		UserID:  uint(req.UserID),
		Content: req.Content,
	})
	if err != nil {
		writeError(c, err, app.MsgCreatePostFailed)
		return
	}

	response.OK(c, "Post created successfully", gin.H{
		"postId":    post.ID,
		"createdAt": post.CreatedAt,
	})
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context())
	if err != nil {
		writeError(c, err, app.MsgListPostsFailed)
		return
	}

	response.OK(c, "", gin.H{"posts": posts})
}
