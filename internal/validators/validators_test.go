package validators

import (
	"testing"

	"petSocial/internal/errs"
	"petSocial/internal/models"
)

func containsError(errors []error, target error) bool {
	for _, err := range errors {
		if err == target {
			return true
		}
	}
	return false
}

func TestValidateCreateConversation(t *testing.T) {
	valid := &models.CreateConversationRequestBody{
		ConversationType: "direct",
		ParticipantIDs:   []uint{2},
	}
	if errors := ValidateCreateConversation(1, valid); len(errors) != 0 {
		t.Errorf("valid direct request rejected: %v", errors)
	}

	group := &models.CreateConversationRequestBody{
		ConversationType: "group",
		ParticipantIDs:   []uint{2, 3, 4},
	}
	if errors := ValidateCreateConversation(1, group); len(errors) != 0 {
		t.Errorf("valid group request rejected: %v", errors)
	}

	self := &models.CreateConversationRequestBody{
		ConversationType: "group",
		ParticipantIDs:   []uint{1, 2},
	}
	if errors := ValidateCreateConversation(1, self); !containsError(errors, errs.ErrSelfParticipant) {
		t.Errorf("requester in participant_ids not rejected: %v", errors)
	}

	badType := &models.CreateConversationRequestBody{
		ConversationType: "broadcast",
		ParticipantIDs:   []uint{2},
	}
	if errors := ValidateCreateConversation(1, badType); !containsError(errors, errs.ErrInvalidConversationType) {
		t.Errorf("unknown conversation type not rejected: %v", errors)
	}

	directMany := &models.CreateConversationRequestBody{
		ConversationType: "direct",
		ParticipantIDs:   []uint{2, 3},
	}
	if errors := ValidateCreateConversation(1, directMany); !containsError(errors, errs.ErrDirectNeedsOneParticipant) {
		t.Errorf("direct with two others not rejected: %v", errors)
	}

	empty := &models.CreateConversationRequestBody{
		ConversationType: "group",
	}
	if errors := ValidateCreateConversation(1, empty); !containsError(errors, errs.ErrEmptyParticipants) {
		t.Errorf("empty participant list not rejected: %v", errors)
	}
}

func TestValidateMessage(t *testing.T) {
	text := &models.MessageRequest{Content: "hello"}
	if errors := ValidateMessage(text); len(errors) != 0 {
		t.Errorf("text message rejected: %v", errors)
	}

	url := "http://blobs/photo.jpg"
	mediaOnly := &models.MessageRequest{MediaURL: &url}
	if errors := ValidateMessage(mediaOnly); len(errors) != 0 {
		t.Errorf("media-only message rejected: %v", errors)
	}

	empty := &models.MessageRequest{}
	if errors := ValidateMessage(empty); !containsError(errors, errs.ErrEmptyMessage) {
		t.Errorf("empty message not rejected: %v", errors)
	}
}

func TestValidateEmailAndPhone(t *testing.T) {
	if !ValidateEmail("owner@pets.dev") {
		t.Error("valid email rejected")
	}
	if ValidateEmail("not-an-email") {
		t.Error("invalid email accepted")
	}
	if !ValidatePhone("+4915112345678") {
		t.Error("valid phone rejected")
	}
	if ValidatePhone("call me") {
		t.Error("invalid phone accepted")
	}
}
