package models

import "time"

// ReadReceipt records the first time a participant read a message.
// Composite primary key keeps receipt creation idempotent.
type ReadReceipt struct {
	MessageID     uint      `gorm:"primaryKey" json:"message_id"`
	ParticipantID uint      `gorm:"primaryKey" json:"participant_id"`
	ReadAt        time.Time `json:"read_at"`
}
