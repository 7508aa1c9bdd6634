package redis

const REDIS_CHANNEL_NOTIFICATIONS = "pet_social_notifications"

// NotificationEvent is the envelope published on the notification channel.
// Every instance subscribes; the one holding the user's socket delivers.
type NotificationEvent struct {
	UserID  uint   `json:"user_id"`
	Payload string `json:"payload"`
}
