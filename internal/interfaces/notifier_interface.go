package interfaces

// Notifier pushes a payload to a user's active channel, if any.
// Delivery is fire and forget; callers never learn whether it arrived.
type Notifier interface {
	Notify(userID uint, payload string)
}
