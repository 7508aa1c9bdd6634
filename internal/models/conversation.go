package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Conversation struct {
	gorm.Model
	Type          string        `gorm:"not null" json:"type"`
	Name          *string       `json:"name"`
	DirectKey     *string       `gorm:"uniqueIndex" json:"-"`
	LastMessageAt time.Time     `gorm:"index" json:"last_message_at"`
	Participants  []Participant `json:"participants"`
	Messages      []Message     `json:"-"`
}

// DirectKeyFor builds the unique key for a two-user direct conversation.
// The pair is unordered, so the smaller id always comes first.
func DirectKeyFor(userID1, userID2 uint) string {
	if userID2 < userID1 {
		userID1, userID2 = userID2, userID1
	}
	return fmt.Sprintf("%d:%d", userID1, userID2)
}

func (conversation *Conversation) ToConversationResponse(lastMessage *Message) ConversationResponse {
	participants := []*ParticipantResponse{}
	for i := range conversation.Participants {
		participants = append(participants, conversation.Participants[i].ToParticipantResponse())
	}
	return ConversationResponse{
		ID:            conversation.ID,
		Type:          conversation.Type,
		Name:          conversation.Name,
		CreatedAt:     conversation.CreatedAt,
		LastMessageAt: conversation.LastMessageAt,
		Participants:  participants,
		LastMessage:   lastMessage,
	}
}
