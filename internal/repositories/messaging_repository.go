package repositories

import (
	"errors"

	"petSocial/internal/errs"
	"petSocial/internal/models"
	"petSocial/internal/utils"

	"gorm.io/gorm"
)

type MessagingRepository struct {
	db *gorm.DB
}

func NewMessagingRepository(db *gorm.DB) *MessagingRepository {
	return &MessagingRepository{
		db: db,
	}
}

// CreateConversation inserts the conversation and all initial participants
// as one transaction; a failure on either side rolls back both.
func (mr *MessagingRepository) CreateConversation(conversation *models.Conversation, participants []models.Participant) (*models.Conversation, []error) {
	var errorList []error

	err := mr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(conversation).Error; err != nil {
			return err
		}
		for i := range participants {
			participants[i].ConversationID = conversation.ID
			if err := tx.Create(&participants[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}

	return mr.GetConversationByID(conversation.ID)
}

// IsDuplicateKey reports whether a create failed on a uniqueness
// constraint, e.g. two concurrent creations of the same direct pair.
func IsDuplicateKey(errorList []error) bool {
	for _, err := range errorList {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true
		}
	}
	return false
}

func (mr *MessagingRepository) FindDirectConversation(directKey string) (*models.Conversation, []error) {
	var errorList []error
	var conversation models.Conversation

	result := mr.db.
		Preload("Participants.User").
		Where("direct_key = ?", directKey).
		First(&conversation)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		errorList = append(errorList, result.Error)
		return nil, errorList
	}
	return &conversation, nil
}

func (mr *MessagingRepository) GetConversationByID(conversationID uint) (*models.Conversation, []error) {
	var errorList []error
	var conversation models.Conversation

	result := mr.db.
		Preload("Participants.User").
		Where("id = ?", conversationID).
		First(&conversation)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			errorList = append(errorList, errs.ErrConversationNotFound)
		} else {
			errorList = append(errorList, result.Error)
		}
		return nil, errorList
	}
	return &conversation, nil
}

func (mr *MessagingRepository) GetUserConversations(userID uint, skip, limit int) ([]models.Conversation, []error) {
	var errorList []error
	var conversations []models.Conversation

	if err := mr.db.
		Scopes(utils.OffsetLimit(skip, limit)).
		Preload("Participants.User").
		Where("id IN (SELECT conversation_id FROM participants WHERE user_id = ? AND deleted_at IS NULL)", userID).
		Order("last_message_at DESC").
		Find(&conversations).Error; err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}
	return conversations, nil
}

func (mr *MessagingRepository) GetConversationLastMessage(conversationID uint) (*models.Message, error) {
	var message models.Message
	if err := mr.db.
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		First(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// SaveMessage persists the message and bumps the conversation's
// last_message_at in the same transaction.
func (mr *MessagingRepository) SaveMessage(message *models.Message) (*models.Message, []error) {
	var errorList []error
	transactionErr := mr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Conversation{}).
			Where("id = ?", message.ConversationID).
			Update("last_message_at", message.CreatedAt).Error; err != nil {
			return err
		}
		return nil
	})
	if transactionErr != nil {
		errorList = append(errorList, transactionErr)
		return nil, errorList
	}
	return message, nil
}

func (mr *MessagingRepository) GetConversationParticipants(conversationID uint) ([]models.Participant, error) {
	var participants []models.Participant
	if err := mr.db.
		Where("conversation_id = ?", conversationID).
		Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

// GetParticipant returns nil without error when the user is not a member.
func (mr *MessagingRepository) GetParticipant(conversationID, userID uint) (*models.Participant, error) {
	var participant models.Participant
	result := mr.db.
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		First(&participant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &participant, nil
}

func (mr *MessagingRepository) CheckUserInConversation(userID, conversationID uint) bool {
	var count int64
	mr.db.Model(&models.Participant{}).
		Where("user_id = ? AND conversation_id = ?", userID, conversationID).
		Count(&count)
	return count > 0
}

func (mr *MessagingRepository) CheckConversationExists(conversationID uint) bool {
	var count int64
	mr.db.Model(&models.Conversation{}).Where("id = ?", conversationID).Count(&count)
	return count > 0
}

func (mr *MessagingRepository) AddParticipant(participant *models.Participant) []error {
	var errorList []error
	if err := mr.db.Create(participant).Error; err != nil {
		errorList = append(errorList, err)
		return errorList
	}
	return nil
}

func (mr *MessagingRepository) CountMessages(conversationID uint) (int64, error) {
	var total int64
	if err := mr.db.Model(&models.Message{}).
		Where("conversation_id = ?", conversationID).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (mr *MessagingRepository) GetMessagesPage(conversationID uint, page, limit int) ([]models.Message, []error) {
	var errorList []error
	var messages []models.Message

	if err := mr.db.
		Scopes(utils.Paginate(page, limit)).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		errorList = append(errorList, err)
		return nil, errorList
	}
	return messages, nil
}

func (mr *MessagingRepository) GetMessageByID(messageID uint) (*models.Message, []error) {
	var errorList []error
	var message models.Message
	result := mr.db.Where("id = ?", messageID).First(&message)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			errorList = append(errorList, errs.ErrMessageNotFound)
		} else {
			errorList = append(errorList, result.Error)
		}
		return nil, errorList
	}
	return &message, nil
}

// GetMessageReadBy returns the user ids holding a read receipt for the
// message, resolved through the participant rows.
func (mr *MessagingRepository) GetMessageReadBy(messageID uint) ([]uint, error) {
	var userIDs []uint
	if err := mr.db.Raw(
		"SELECT p.user_id FROM read_receipts rr INNER JOIN participants p ON p.id = rr.participant_id WHERE rr.message_id = ?",
		messageID,
	).Scan(&userIDs).Error; err != nil {
		return nil, err
	}
	return userIDs, nil
}

func (mr *MessagingRepository) HasReadReceipt(messageID, participantID uint) bool {
	var count int64
	mr.db.Model(&models.ReadReceipt{}).
		Where("message_id = ? AND participant_id = ?", messageID, participantID).
		Count(&count)
	return count > 0
}

func (mr *MessagingRepository) CreateReadReceipt(receipt *models.ReadReceipt) []error {
	var errorList []error
	if err := mr.db.Create(receipt).Error; err != nil {
		errorList = append(errorList, err)
		return errorList
	}
	return nil
}
