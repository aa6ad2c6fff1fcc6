package api

import (
	"net/http"
	"strconv"

	"alumni_portal/internal/middleware"
	"alumni_portal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PostRequest is the new-post form
type PostRequest struct {
	Message string `form:"message" binding:"required"`
	Tags    string `form:"tags"`
}

// ReplyRequest is the reply form
type ReplyRequest struct {
	PostID  string `form:"post_id"`
	Message string `form:"reply_message" binding:"required"`
}

// postID parses the post_id form value. Anything unparsable refers to no post.
func postID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// CommunityHandler lists the board, newest post first
func CommunityHandler(community *service.CommunityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := community.ListPosts(c.Request.Context())
		if err != nil {
			serverError(c, "Failed to fetch posts", err, nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"posts": posts, "user": middleware.CurrentIdentity(c)})
	}
}

// CreatePostHandler stores a post with its tags
func CreatePostHandler(community *service.CommunityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PostRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
			return
		}
		if _, err := community.CreatePost(c.Request.Context(), req.Message, req.Tags); err != nil {
			serverError(c, "Failed to create post", err, nil)
			return
		}
		c.Redirect(http.StatusFound, "/comm")
	}
}

// ReplyHandler appends a reply. Unknown posts are ignored.
func ReplyHandler(community *service.CommunityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ReplyRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Reply message is required"})
			return
		}
		id, ok := postID(req.PostID)
		if !ok {
			logrus.WithField("post_id", req.PostID).Warn("Reply with invalid post id ignored")
			c.Redirect(http.StatusFound, "/comm")
			return
		}
		if err := community.Reply(c.Request.Context(), id, req.Message); err != nil {
			serverError(c, "Failed to add reply", err, logrus.Fields{"post_id": id})
			return
		}
		c.Redirect(http.StatusFound, "/comm")
	}
}

// LikeHandler increments a post's like counter. Unknown posts are ignored.
func LikeHandler(community *service.CommunityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := postID(c.PostForm("post_id")); ok {
			if err := community.Like(c.Request.Context(), id); err != nil {
				serverError(c, "Failed to like post", err, logrus.Fields{"post_id": id})
				return
			}
		}
		c.Redirect(http.StatusFound, "/comm")
	}
}

// DeletePostHandler removes a post with its replies
func DeletePostHandler(community *service.CommunityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := postID(c.PostForm("post_id")); ok {
			if err := community.DeletePost(c.Request.Context(), id); err != nil {
				serverError(c, "Failed to delete post", err, logrus.Fields{"post_id": id})
				return
			}
		}
		c.Redirect(http.StatusFound, "/comm")
	}
}
