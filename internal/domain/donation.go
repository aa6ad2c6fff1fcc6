package domain

import "time"

// DonationStatusInitiated is the status recorded when the caller does not supply one
const DonationStatusInitiated = "initiated"

// Donation Model, append-only
type Donation struct {
	ID                uint      `gorm:"primaryKey" json:"id"`                    // Primary key
	Name              string    `gorm:"size:150;not null" json:"name"`           // Donor name
	Email             string    `gorm:"size:150;not null" json:"email"`          // Donor email
	GradYear          *int      `json:"grad_year"`                               // Optional graduation year
	Amount            int       `gorm:"not null" json:"amount"`                  // Amount in the smallest currency unit
	Purpose           string    `gorm:"size:100;not null" json:"purpose"`        // Fund the donation is earmarked for
	IsRecurring       bool      `gorm:"default:false" json:"is_recurring"`       // Recurring pledge
	IsAnonymous       bool      `gorm:"default:false" json:"is_anonymous"`       // Hide donor name
	RazorpayPaymentID string    `gorm:"size:100" json:"razorpay_payment_id"`     // Gateway reference, processed externally
	Status            string    `gorm:"size:50;default:initiated" json:"status"` // Gateway status
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`        // Timestamp of creation
}

func (Donation) TableName() string { return "donations" }
