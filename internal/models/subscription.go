package models

import "time"

// Cadence is the recurrence period of a subscription.
type Cadence string

const (
	CadenceWeekly    Cadence = "weekly"
	CadenceMonthly   Cadence = "monthly"
	CadenceQuarterly Cadence = "quarterly"
	CadenceYearly    Cadence = "yearly"
)

// Valid reports whether c is one of the known cadences.
func (c Cadence) Valid() bool {
	switch c {
	case CadenceWeekly, CadenceMonthly, CadenceQuarterly, CadenceYearly:
		return true
	}
	return false
}

// SubscriptionStatus is either active or paused.
type SubscriptionStatus string

const (
	SubscriptionStatusActive SubscriptionStatus = "active"
	SubscriptionStatusPaused SubscriptionStatus = "paused"
)

// Subscription is a recurring charge. NextPaymentDate is the anchor all
// future occurrences are projected from; projections never move it.
type Subscription struct {
	Base
	UserID             string             `gorm:"type:uuid;not null;index" json:"user_id"`
	Name               string             `gorm:"not null" json:"name"`
	CategoryID         *string            `gorm:"type:uuid" json:"category_id,omitempty"`
	Merchant           string             `json:"merchant,omitempty"`
	NextPaymentDate    time.Time          `gorm:"not null" json:"next_payment_date"`
	Cadence            Cadence            `gorm:"not null" json:"cadence"`
	Amount             Money              `gorm:"embedded" json:"amount"`
	Status             SubscriptionStatus `gorm:"not null;default:active" json:"status"`
	Tags               []string           `gorm:"type:text;serializer:json" json:"tags,omitempty"`
	ReminderDaysBefore *int               `json:"reminder_days_before,omitempty"`
	Notes              string             `json:"notes,omitempty"`
}
