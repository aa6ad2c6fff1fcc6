package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"alumni_portal/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostView is a post with its tag names joined for display
type PostView struct {
	domain.Post
	TagsDisplay string `json:"tags_display"`
}

// CommunityService runs the discussion board
type CommunityService struct {
	db *gorm.DB
}

// NewCommunityService creates a CommunityService
func NewCommunityService(db *gorm.DB) *CommunityService {
	return &CommunityService{db: db}
}

// NormalizeTags splits a comma separated list into trimmed, lowercased, unique, non-empty names
func NormalizeTags(csv string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, raw := range strings.Split(csv, ",") {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// CreatePost stores a post and links it to its tags, reusing tags that already exist
func (s *CommunityService) CreatePost(ctx context.Context, message, tagsCSV string) (domain.Post, error) {
	post := domain.Post{Message: message}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, name := range NormalizeTags(tagsCSV) {
			// A concurrent post may insert the same tag first, the unique name absorbs it
			err := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
				Create(&domain.Tag{Name: name}).Error
			if err != nil {
				return err
			}
			var tag domain.Tag
			if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
				return err
			}
			post.Tags = append(post.Tags, tag)
		}
		// Tags are already persisted, only the join rows are written here
		return tx.Omit("Tags.*").Create(&post).Error
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{"error": err.Error()}).Error("Create post failed")
		return domain.Post{}, fmt.Errorf("create post: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"post_id":   post.ID,
		"tags":      len(post.Tags),
		"timestamp": time.Now().Format(time.RFC3339),
	}).Info("Post created")
	return post, nil
}

// Reply appends a reply. Replies to a missing post are dropped without error.
func (s *CommunityService) Reply(ctx context.Context, postID uint, message string) error {
	db := s.db.WithContext(ctx)
	var post domain.Post
	err := db.Select("id").First(&post, postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.WithField("post_id", postID).Warn("Reply to missing post ignored")
		return nil
	}
	if err != nil {
		return fmt.Errorf("load post %d: %w", postID, err)
	}
	reply := domain.Reply{PostID: postID, Message: message}
	if err := db.Create(&reply).Error; err != nil {
		return fmt.Errorf("create reply: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"post_id":  postID,
		"reply_id": reply.ID,
	}).Info("Reply added")
	return nil
}

// Like increments the like counter in a single statement. A missing post is a no-op.
func (s *CommunityService) Like(ctx context.Context, postID uint) error {
	res := s.db.WithContext(ctx).Model(&domain.Post{}).
		Where("id = ?", postID).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))
	if res.Error != nil {
		return fmt.Errorf("like post %d: %w", postID, res.Error)
	}
	if res.RowsAffected == 0 {
		logrus.WithField("post_id", postID).Warn("Like on missing post ignored")
	}
	return nil
}

// ListPosts returns posts newest first with tags and replies loaded
func (s *CommunityService) ListPosts(ctx context.Context) ([]PostView, error) {
	var posts []domain.Post
	err := s.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tag.id") }).
		Preload("Replies", func(db *gorm.DB) *gorm.DB { return db.Order("reply.id") }).
		Order("id desc").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	views := make([]PostView, len(posts))
	for i, p := range posts {
		names := make([]string, len(p.Tags))
		for j, t := range p.Tags {
			names[j] = t.Name
		}
		views[i] = PostView{Post: p, TagsDisplay: strings.Join(names, ", ")}
	}
	return views, nil
}

// DeletePost removes a post together with its replies and tag links. Tags themselves stay.
func (s *CommunityService) DeletePost(ctx context.Context, postID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post := domain.Post{ID: postID}
		if err := tx.Where("post_id = ?", postID).Delete(&domain.Reply{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&post).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		return fmt.Errorf("delete post %d: %w", postID, err)
	}
	logrus.WithField("post_id", postID).Info("Post deleted")
	return nil
}
