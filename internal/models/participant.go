package models

import (
	"time"

	"gorm.io/gorm"
)

// Participant maps a user into a conversation. A user appears at most
// once per conversation, enforced by the composite unique index.
type Participant struct {
	gorm.Model
	ConversationID uint      `gorm:"not null;uniqueIndex:idx_conversation_user" json:"conversation_id"`
	UserID         uint      `gorm:"not null;uniqueIndex:idx_conversation_user" json:"user_id"`
	IsAdmin        bool      `gorm:"default:false" json:"is_admin"`
	JoinedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"joined_at"`
	User           User      `json:"-"`
}

func (participant *Participant) ToParticipantResponse() *ParticipantResponse {
	response := &ParticipantResponse{
		UserID:   participant.UserID,
		IsAdmin:  participant.IsAdmin,
		JoinedAt: participant.JoinedAt,
	}
	if participant.User.ID != 0 {
		response.User = participant.User.ToUserResponse()
	}
	return response
}
