package models

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// Valid reports whether r is a known role.
func (r ChatRole) Valid() bool {
	return r == ChatRoleUser || r == ChatRoleAssistant
}

// ChatMessage is one entry of a user's assistant conversation.
type ChatMessage struct {
	Base
	UserID  string   `gorm:"type:uuid;not null;index" json:"-"`
	Role    ChatRole `gorm:"not null" json:"role"`
	Content string   `gorm:"not null" json:"content"`
}
