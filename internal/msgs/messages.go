package msgs

const (
	MsgOperationSuccessful     = "operation successful"
	MsgOperationFailed         = "operation failed"
	MsgUserCreatedSuccessfully = "user created successfully"
	MsgYouMustLoginFirst       = "you must login first"
	MsgMarkedAsRead            = "marked_as_read"
	MsgParticipantAdded        = "added"
)
