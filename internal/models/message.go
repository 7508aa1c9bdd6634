package models

import (
	"gorm.io/gorm"
)

// Message is immutable once created; there is no edit or delete path.
type Message struct {
	gorm.Model
	ConversationID uint         `gorm:"not null;index" json:"conversation_id"`
	Conversation   Conversation `json:"-"`
	SenderID       uint         `gorm:"not null" json:"sender_id"`
	Content        string       `json:"content"`
	MediaURL       *string      `json:"media_url"`
	MediaType      *string      `json:"media_type"`
}

func (message *Message) ToMessageResponse(readBy []uint) MessageResponse {
	if readBy == nil {
		readBy = []uint{}
	}
	return MessageResponse{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		SenderID:       message.SenderID,
		Content:        message.Content,
		MediaURL:       message.MediaURL,
		MediaType:      message.MediaType,
		CreatedAt:      message.CreatedAt,
		ReadBy:         readBy,
	}
}
