package models

type LoginRequestBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateConversationRequestBody struct {
	ConversationType string  `json:"conversation_type"`
	Name             *string `json:"name"`
	ParticipantIDs   []uint  `json:"participant_ids"`
}

type MessageRequest struct {
	Content   string  `json:"content"`
	MediaURL  *string `json:"media_url"`
	MediaType *string `json:"media_type"`
}

type MarkReadRequest struct {
	MessageID uint `json:"message_id"`
}

type UpdateUserRequest struct {
	ID        uint    `json:"-"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Bio       *string `json:"bio"`
	Location  *string `json:"location"`
}
