package models

import "time"

type ParticipantResponse struct {
	UserID   uint          `json:"user_id"`
	IsAdmin  bool          `json:"is_admin"`
	JoinedAt time.Time     `json:"joined_at"`
	User     *UserResponse `json:"user,omitempty"`
}

type ConversationResponse struct {
	ID            uint                   `json:"id"`
	Type          string                 `json:"type"`
	Name          *string                `json:"name"`
	CreatedAt     time.Time              `json:"created_at"`
	LastMessageAt time.Time              `json:"last_message_at"`
	Participants  []*ParticipantResponse `json:"participants"`
	LastMessage   *Message               `json:"last_message"`
}

type ConversationListResponse struct {
	Conversations []ConversationResponse `json:"conversations"`
	Skip          int                    `json:"skip"`
	Limit         int                    `json:"limit"`
}
