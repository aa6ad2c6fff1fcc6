package service

import (
	"context"
	"fmt"
	"time"

	"alumni_portal/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DonationInput is the payload posted after the payment widget returns.
// Optional fields are pointers so an absent value can be told apart from false.
type DonationInput struct {
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	GradYear          *int    `json:"grad_year"`
	Amount            int     `json:"amount"`
	Purpose           string  `json:"purpose"`
	IsRecurring       *bool   `json:"is_recurring"`
	IsAnonymous       *bool   `json:"is_anonymous"`
	RazorpayPaymentID string  `json:"razorpay_payment_id"`
	Status            *string `json:"status"`
}

// DonationService records donations. Payment processing happens at the gateway.
type DonationService struct {
	db *gorm.DB
}

// NewDonationService creates a DonationService
func NewDonationService(db *gorm.DB) *DonationService {
	return &DonationService{db: db}
}

// Record stores the donation as supplied, filling defaults for absent flags and status
func (s *DonationService) Record(ctx context.Context, in DonationInput) (domain.Donation, error) {
	donation := domain.Donation{
		Name:              in.Name,
		Email:             in.Email,
		GradYear:          in.GradYear,
		Amount:            in.Amount,
		Purpose:           in.Purpose,
		IsRecurring:       in.IsRecurring != nil && *in.IsRecurring,
		IsAnonymous:       in.IsAnonymous != nil && *in.IsAnonymous,
		RazorpayPaymentID: in.RazorpayPaymentID,
		Status:            domain.DonationStatusInitiated,
	}
	if in.Status != nil && *in.Status != "" {
		donation.Status = *in.Status
	}
	if err := s.db.WithContext(ctx).Create(&donation).Error; err != nil {
		logrus.WithFields(logrus.Fields{
			"payment_id": in.RazorpayPaymentID,
			"error":      err.Error(),
		}).Error("Record donation failed")
		return domain.Donation{}, fmt.Errorf("record donation: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"donation_id": donation.ID,
		"amount":      donation.Amount,
		"status":      donation.Status,
		"timestamp":   time.Now().Format(time.RFC3339),
	}).Info("Donation recorded")
	return donation, nil
}
