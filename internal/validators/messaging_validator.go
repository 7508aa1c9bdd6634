package validators

import (
	"petSocial/internal/enums"
	"petSocial/internal/errs"
	"petSocial/internal/models"
)

func ValidateCreateConversation(requesterID uint, body *models.CreateConversationRequestBody) []error {
	var errors []error
	if body == nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		return errors
	}

	if body.ConversationType != enums.CONVERSATION_TYPE_DIRECT &&
		body.ConversationType != enums.CONVERSATION_TYPE_GROUP {
		errors = append(errors, errs.ErrInvalidConversationType)
	}

	if len(body.ParticipantIDs) == 0 {
		errors = append(errors, errs.ErrEmptyParticipants)
		return errors
	}

	for _, id := range body.ParticipantIDs {
		if id == requesterID {
			errors = append(errors, errs.ErrSelfParticipant)
			break
		}
	}

	if body.ConversationType == enums.CONVERSATION_TYPE_DIRECT && len(body.ParticipantIDs) != 1 {
		errors = append(errors, errs.ErrDirectNeedsOneParticipant)
	}

	return errors
}

func ValidateMessage(body *models.MessageRequest) []error {
	var errors []error
	if body == nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		return errors
	}
	if body.Content == "" && (body.MediaURL == nil || *body.MediaURL == "") {
		errors = append(errors, errs.ErrEmptyMessage)
	}
	return errors
}
