package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// Transaction represents a single money movement recorded by a user.
// CategoryName is the denormalized display name of the category.
type Transaction struct {
	Base
	UserID       string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Type         TransactionType `gorm:"not null" json:"type"`
	CategoryID   *string         `gorm:"type:uuid;index" json:"category_id,omitempty"`
	CategoryName string          `gorm:"column:category_name" json:"category"`
	Merchant     string          `json:"merchant,omitempty"`
	Tags         []string        `gorm:"type:text;serializer:json" json:"tags,omitempty"`
	Date         time.Time       `gorm:"not null;index" json:"date"`
	Description  string          `json:"description"`
	Amount       Money           `gorm:"embedded" json:"amount"`
	Note         string          `json:"note,omitempty"`
}
