package enums

const (
	CONVERSATION_TYPE_DIRECT = "direct"
	CONVERSATION_TYPE_GROUP  = "group"

	SOCKET_EVENT_NEW_MESSAGE       = "new_message"
	SOCKET_EVENT_PARTICIPANT_ADDED = "participant_added"

	SOCKET_HEARTBEAT_PING = "ping"
	SOCKET_HEARTBEAT_PONG = "pong"

	FILE_BUCKET_USER_PROFILE  = "user-profile-photos"
	FILE_BUCKET_MESSAGE_MEDIA = "message-media"
)
