package models

import "time"

// UserRole grants access to administrative endpoints
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// UserStatus is the lifecycle state of an account
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusPending   UserStatus = "pending"
	UserStatusSuspended UserStatus = "suspended"
)

// User represents the user model in the database
type User struct {
	Base
	Email               string       `gorm:"uniqueIndex;not null" json:"email"`
	Password            string       `gorm:"not null" json:"-"`
	FullName            string       `json:"full_name"`
	Role                UserRole     `gorm:"not null;default:user" json:"role"`
	Status              UserStatus   `gorm:"not null;default:active" json:"status"`
	BaseCurrency        CurrencyCode `gorm:"type:varchar(3);not null;default:RUB" json:"base_currency"`
	RefreshTokenHash    string       `gorm:"size:64" json:"-"`
	FailedLoginAttempts int          `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time   `json:"-"`
	LastLoginAt         *time.Time   `json:"last_login_at,omitempty"`
}
