package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alumni_portal/internal/domain"
	"alumni_portal/internal/oauth"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AdminService maintains Admin rows for identities verified by the OAuth provider
type AdminService struct {
	db *gorm.DB
}

// NewAdminService creates an AdminService
func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// Upsert creates the admin on first login (admin=false) or refreshes name and picture on later ones
func (s *AdminService) Upsert(ctx context.Context, email, name, picture string) (domain.Admin, error) {
	if email == "" {
		return domain.Admin{}, oauth.ErrNoEmail
	}
	var admin domain.Admin
	created := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("email = ?", email).First(&admin).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			admin = domain.Admin{Email: email, Name: name, ProfilePic: picture, Admin: false}
			created = true
			return tx.Create(&admin).Error
		}
		if err != nil {
			return err
		}
		admin.Name = name
		admin.ProfilePic = picture
		return tx.Model(&admin).Updates(map[string]any{"name": name, "profile_pic": picture}).Error
	})
	if err != nil {
		return domain.Admin{}, fmt.Errorf("upsert admin %s: %w", email, err)
	}
	logrus.WithFields(logrus.Fields{
		"admin_id":  admin.ID,
		"created":   created,
		"timestamp": time.Now().Format(time.RFC3339),
	}).Info("Admin login")
	return admin, nil
}

// IsAdmin reloads the row and reports its admin flag
func (s *AdminService) IsAdmin(ctx context.Context, id uint) (bool, error) {
	var admin domain.Admin
	if err := s.db.WithContext(ctx).Select("id", "admin").First(&admin, id).Error; err != nil {
		return false, err
	}
	return admin.Admin, nil
}
