package services

import (
	"fmt"
	"log"
	"time"

	"petSocial/internal/enums"
	"petSocial/internal/errs"
	"petSocial/internal/interfaces"
	"petSocial/internal/models"
	"petSocial/internal/repositories"
	"petSocial/internal/utils"
	"petSocial/internal/validators"
)

type MessagingService struct {
	messagingRepo *repositories.MessagingRepository
	authRepo      *repositories.AuthenticationRepository
	notifier      interfaces.Notifier
}

func NewMessagingService(
	messagingRepo *repositories.MessagingRepository,
	authRepo *repositories.AuthenticationRepository,
	notifier interfaces.Notifier,
) *MessagingService {
	return &MessagingService{
		messagingRepo: messagingRepo,
		authRepo:      authRepo,
		notifier:      notifier,
	}
}

// CreateConversation creates a direct or group conversation with the
// requester as admin. Direct creation is idempotent per user pair: an
// existing conversation is returned unchanged.
func (ms *MessagingService) CreateConversation(creatorID uint, body *models.CreateConversationRequestBody) (*models.ConversationResponse, []error) {
	if validationErrs := validators.ValidateCreateConversation(creatorID, body); len(validationErrs) > 0 {
		return nil, validationErrs
	}

	participantIDs := uniqueIDs(body.ParticipantIDs)
	count, err := ms.authRepo.CountExistingUsers(participantIDs)
	if err != nil {
		return nil, []error{err}
	}
	if count != int64(len(participantIDs)) {
		return nil, []error{errs.ErrUserNotFound}
	}

	if body.ConversationType == enums.CONVERSATION_TYPE_DIRECT {
		return ms.createDirectConversation(creatorID, participantIDs[0])
	}
	return ms.createGroupConversation(creatorID, body.Name, participantIDs)
}

func (ms *MessagingService) createDirectConversation(creatorID, otherID uint) (*models.ConversationResponse, []error) {
	directKey := models.DirectKeyFor(creatorID, otherID)

	existing, findErrs := ms.messagingRepo.FindDirectConversation(directKey)
	if len(findErrs) > 0 {
		return nil, findErrs
	}
	if existing != nil {
		return ms.toConversationResponse(existing), nil
	}

	now := time.Now()
	conversation := &models.Conversation{
		Type:          enums.CONVERSATION_TYPE_DIRECT,
		DirectKey:     &directKey,
		LastMessageAt: now,
	}
	participants := []models.Participant{
		{UserID: creatorID, IsAdmin: true, JoinedAt: now},
		{UserID: otherID, IsAdmin: false, JoinedAt: now},
	}

	created, createErrs := ms.messagingRepo.CreateConversation(conversation, participants)
	if len(createErrs) > 0 {
		// A concurrent request can win the unique direct_key race;
		// the surviving row is the answer for both callers.
		if repositories.IsDuplicateKey(createErrs) {
			survivor, refetchErrs := ms.messagingRepo.FindDirectConversation(directKey)
			if len(refetchErrs) > 0 || survivor == nil {
				return nil, createErrs
			}
			return ms.toConversationResponse(survivor), nil
		}
		return nil, createErrs
	}
	return ms.toConversationResponse(created), nil
}

func (ms *MessagingService) createGroupConversation(creatorID uint, name *string, participantIDs []uint) (*models.ConversationResponse, []error) {
	now := time.Now()
	conversation := &models.Conversation{
		Type:          enums.CONVERSATION_TYPE_GROUP,
		Name:          name,
		LastMessageAt: now,
	}
	participants := []models.Participant{
		{UserID: creatorID, IsAdmin: true, JoinedAt: now},
	}
	for _, id := range participantIDs {
		participants = append(participants, models.Participant{UserID: id, JoinedAt: now})
	}

	created, createErrs := ms.messagingRepo.CreateConversation(conversation, participants)
	if len(createErrs) > 0 {
		return nil, createErrs
	}
	return ms.toConversationResponse(created), nil
}

// AddParticipant inserts a non-admin participant; only an admin of the
// conversation may do this. Every current participant, the new one
// included, gets a push notification.
func (ms *MessagingService) AddParticipant(conversationID, requesterID, newUserID uint) []error {
	if !ms.messagingRepo.CheckConversationExists(conversationID) {
		return []error{errs.ErrConversationNotFound}
	}

	requester, err := ms.messagingRepo.GetParticipant(conversationID, requesterID)
	if err != nil {
		return []error{err}
	}
	if requester == nil || !requester.IsAdmin {
		return []error{errs.ErrAdminAccessRequired}
	}

	count, err := ms.authRepo.CountExistingUsers([]uint{newUserID})
	if err != nil {
		return []error{err}
	}
	if count == 0 {
		return []error{errs.ErrUserNotFound}
	}

	if ms.messagingRepo.CheckUserInConversation(newUserID, conversationID) {
		return []error{errs.ErrAlreadyParticipant}
	}

	participant := &models.Participant{
		ConversationID: conversationID,
		UserID:         newUserID,
		IsAdmin:        false,
		JoinedAt:       time.Now(),
	}
	if addErrs := ms.messagingRepo.AddParticipant(participant); len(addErrs) > 0 {
		return addErrs
	}

	payload := fmt.Sprintf("%s:%d:%d", enums.SOCKET_EVENT_PARTICIPANT_ADDED, conversationID, newUserID)
	participants, err := ms.messagingRepo.GetConversationParticipants(conversationID)
	if err != nil {
		log.Printf("Could not load participants for notification: %v", err)
		return nil
	}
	for i := range participants {
		ms.notifier.Notify(participants[i].UserID, payload)
	}
	return nil
}

func (ms *MessagingService) GetUserConversations(userID uint, skip, limit int) (*models.ConversationListResponse, []error) {
	conversations, listErrs := ms.messagingRepo.GetUserConversations(userID, skip, limit)
	if len(listErrs) > 0 {
		return nil, listErrs
	}

	responses := make([]models.ConversationResponse, 0, len(conversations))
	for i := range conversations {
		responses = append(responses, *ms.toConversationResponse(&conversations[i]))
	}

	return &models.ConversationListResponse{
		Conversations: responses,
		Skip:          skip,
		Limit:         limit,
	}, nil
}

// SendMessage persists the message and notifies every other participant.
// Notification is best effort and never fails the send.
func (ms *MessagingService) SendMessage(conversationID, senderID uint, body *models.MessageRequest) (*models.Message, []error) {
	if validationErrs := validators.ValidateMessage(body); len(validationErrs) > 0 {
		return nil, validationErrs
	}

	if !ms.messagingRepo.CheckUserInConversation(senderID, conversationID) {
		return nil, []error{errs.ErrNotParticipant}
	}

	message := &models.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        body.Content,
		MediaURL:       body.MediaURL,
		MediaType:      body.MediaType,
	}
	saved, saveErrs := ms.messagingRepo.SaveMessage(message)
	if len(saveErrs) > 0 {
		return nil, saveErrs
	}

	payload := fmt.Sprintf("%s:%d", enums.SOCKET_EVENT_NEW_MESSAGE, conversationID)
	participants, err := ms.messagingRepo.GetConversationParticipants(conversationID)
	if err != nil {
		log.Printf("Could not load participants for notification: %v", err)
		return saved, nil
	}
	for i := range participants {
		if participants[i].UserID == senderID {
			continue
		}
		ms.notifier.Notify(participants[i].UserID, payload)
	}
	return saved, nil
}

// GetConversationMessages returns one page of messages, newest first,
// each annotated with the user ids that have read it. Count in the
// envelope is the total page count.
func (ms *MessagingService) GetConversationMessages(conversationID, requesterID uint, page, limit int) (*models.MessagesPageResponse, []error) {
	if !ms.messagingRepo.CheckUserInConversation(requesterID, conversationID) {
		return nil, []error{errs.ErrNotParticipant}
	}

	total, err := ms.messagingRepo.CountMessages(conversationID)
	if err != nil {
		return nil, []error{err}
	}

	messages, pageErrs := ms.messagingRepo.GetMessagesPage(conversationID, page, limit)
	if len(pageErrs) > 0 {
		return nil, pageErrs
	}

	responses := make([]models.MessageResponse, 0, len(messages))
	for i := range messages {
		readBy, err := ms.messagingRepo.GetMessageReadBy(messages[i].ID)
		if err != nil {
			return nil, []error{err}
		}
		responses = append(responses, messages[i].ToMessageResponse(readBy))
	}

	return &models.MessagesPageResponse{
		Count: utils.TotalPages(total, limit),
		Model: responses,
	}, nil
}

// MarkMessageRead creates a read receipt once; marking the same message
// twice is a no-op.
func (ms *MessagingService) MarkMessageRead(messageID, requesterID uint) []error {
	message, getErrs := ms.messagingRepo.GetMessageByID(messageID)
	if len(getErrs) > 0 {
		return getErrs
	}

	participant, err := ms.messagingRepo.GetParticipant(message.ConversationID, requesterID)
	if err != nil {
		return []error{err}
	}
	if participant == nil {
		return []error{errs.ErrNotParticipant}
	}

	if ms.messagingRepo.HasReadReceipt(messageID, participant.ID) {
		return nil
	}

	receipt := &models.ReadReceipt{
		MessageID:     messageID,
		ParticipantID: participant.ID,
		ReadAt:        time.Now(),
	}
	return ms.messagingRepo.CreateReadReceipt(receipt)
}

func (ms *MessagingService) CheckConversationExists(conversationID uint) bool {
	return ms.messagingRepo.CheckConversationExists(conversationID)
}

func (ms *MessagingService) CheckUserInConversation(userID, conversationID uint) bool {
	return ms.messagingRepo.CheckUserInConversation(userID, conversationID)
}

func (ms *MessagingService) toConversationResponse(conversation *models.Conversation) *models.ConversationResponse {
	lastMessage, _ := ms.messagingRepo.GetConversationLastMessage(conversation.ID)
	response := conversation.ToConversationResponse(lastMessage)
	return &response
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
