package errs

import "net/http"

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidRequestBody        = Error("invalid request body")
	ErrInvalidParams             = Error("invalid params")
	ErrUnauthorized              = Error("unauthorized")
	ErrUserAlreadyExists         = Error("user already exists")
	ErrUserNotFound              = Error("user not found")
	ErrInvalidEmail              = Error("invalid email")
	ErrInvalidPhone              = Error("invalid phone number")
	ErrInvalidPassword           = Error("invalid password")
	ErrInvalidUser               = Error("invalid user")
	ErrWrongPassword             = Error("wrong password")
	ErrFirstName                 = Error("first name is empty or too short")
	ErrLastName                  = Error("last name is empty or too short")
	ErrInvalidConversationType   = Error("invalid conversation type")
	ErrEmptyParticipants         = Error("participant list is empty")
	ErrSelfParticipant           = Error("do not include yourself in participant ids")
	ErrDirectNeedsOneParticipant = Error("direct conversation needs exactly one other participant")
	ErrConversationNotFound      = Error("conversation not found")
	ErrMessageNotFound           = Error("message not found")
	ErrNotParticipant            = Error("not a participant of this conversation")
	ErrAdminAccessRequired       = Error("admin access required")
	ErrAlreadyParticipant        = Error("user already in conversation")
	ErrEmptyMessage              = Error("message needs content or media")
	ErrNoFileUploaded            = Error("no file uploaded")
	ErrUnableToOpenUploadedFile  = Error("unable to open uploaded file")
	ErrUnableToUploadFile        = Error("unable to upload file")
	ErrUnableToUpdateProfile     = Error("unable to update profile")
)

// HttpStatus maps a set of errors to the status of the most specific one.
// Not found wins over permission, permission over conflict, conflict over
// validation; anything unknown is an internal error.
func HttpStatus(errors []error) int {
	status := http.StatusInternalServerError
	for _, err := range errors {
		switch err {
		case ErrUserNotFound, ErrConversationNotFound, ErrMessageNotFound:
			return http.StatusNotFound
		case ErrNotParticipant, ErrAdminAccessRequired:
			status = http.StatusForbidden
		case ErrUnauthorized:
			if status == http.StatusInternalServerError {
				status = http.StatusUnauthorized
			}
		case ErrAlreadyParticipant, ErrUserAlreadyExists:
			if status != http.StatusForbidden {
				status = http.StatusConflict
			}
		case ErrInvalidRequestBody, ErrInvalidParams, ErrInvalidEmail, ErrInvalidPhone,
			ErrInvalidPassword, ErrInvalidUser, ErrWrongPassword, ErrFirstName, ErrLastName,
			ErrInvalidConversationType, ErrEmptyParticipants, ErrSelfParticipant,
			ErrDirectNeedsOneParticipant, ErrEmptyMessage, ErrNoFileUploaded:
			if status == http.StatusInternalServerError {
				status = http.StatusBadRequest
			}
		}
	}
	return status
}
