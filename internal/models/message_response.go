package models

import "time"

type MessageResponse struct {
	ID             uint      `json:"id"`
	ConversationID uint      `json:"conversation_id"`
	SenderID       uint      `json:"sender_id"`
	Content        string    `json:"content"`
	MediaURL       *string   `json:"media_url"`
	MediaType      *string   `json:"media_type"`
	CreatedAt      time.Time `json:"created_at"`
	ReadBy         []uint    `json:"read_by"`
}

// MessagesPageResponse is the paginated envelope: count carries the total
// number of pages, not the number of rows in this page.
type MessagesPageResponse struct {
	Count int               `json:"count"`
	Model []MessageResponse `json:"model"`
}
