package service

import (
	"context"
	"fmt"
	"time"

	"alumni_portal/internal/domain"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"
)

// RegisterInput is the registration form
type RegisterInput struct {
	Name           string `form:"name" binding:"required"`
	Department     string `form:"department" binding:"required"`
	GraduationYear int    `form:"graduation_year" binding:"required"`
	CurrentRole    string `form:"current_role" binding:"required"`
	Company        string `form:"current_company" binding:"required"`
	Location       string `form:"location" binding:"required"`
	Industry       string `form:"industry" binding:"required"`
	LinkedInURL    string `form:"linkedin_url"`
	Email          string `form:"email"`
	Password       string `form:"password" binding:"required"`
	RePassword     string `form:"repassword"`
}

// AlumniService handles alumni registration
type AlumniService struct {
	db *gorm.DB
}

// NewAlumniService creates an AlumniService
func NewAlumniService(db *gorm.DB) *AlumniService {
	return &AlumniService{db: db}
}

// Register stores a new alumni profile. Nothing is written when the passwords differ.
func (s *AlumniService) Register(ctx context.Context, in RegisterInput) (domain.Alumni, error) {
	if in.Password != in.RePassword {
		return domain.Alumni{}, ErrPasswordMismatch
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Alumni{}, fmt.Errorf("hash password: %w", err)
	}
	alumni := domain.Alumni{
		Name:           in.Name,
		Department:     in.Department,
		GraduationYear: in.GraduationYear,
		CurrentRole:    in.CurrentRole,
		Company:        in.Company,
		Location:       in.Location,
		Industry:       in.Industry,
		LinkedInURL:    in.LinkedInURL,
		Email:          in.Email,
		PasswordHash:   string(hash),
	}
	if err := s.db.WithContext(ctx).Create(&alumni).Error; err != nil {
		logrus.WithFields(logrus.Fields{
			"email": in.Email,
			"error": err.Error(),
		}).Error("Alumni registration failed")
		return domain.Alumni{}, fmt.Errorf("create alumni: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"alumni_id": alumni.ID,
		"timestamp": time.Now().Format(time.RFC3339),
	}).Info("Alumni registered")
	return alumni, nil
}
