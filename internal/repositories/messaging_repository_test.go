package repositories

import (
	"testing"

	"petSocial/internal/errs"
	"petSocial/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open gorm over sqlmock: %v", err)
	}
	return gormDB, mock
}

func TestCheckUserInConversation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMessagingRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "participants"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	if !repo.CheckUserInConversation(1, 5) {
		t.Error("expected user 1 to be in conversation 5")
	}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "participants"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	if repo.CheckUserInConversation(2, 5) {
		t.Error("expected user 2 not to be in conversation 5")
	}
}

func TestFindDirectConversationAbsent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMessagingRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "conversations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "direct_key"}))

	conversation, errorList := repo.FindDirectConversation("1:2")
	if len(errorList) > 0 {
		t.Fatalf("absent direct conversation must not error: %v", errorList)
	}
	if conversation != nil {
		t.Errorf("expected nil conversation, got id %d", conversation.ID)
	}
}

func TestFindDirectConversationPresent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMessagingRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "conversations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "direct_key"}).
			AddRow(9, "direct", "1:2"))
	// Preloaded participant rows, empty is fine for this check.
	mock.ExpectQuery(`SELECT (.+) FROM "participants"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "user_id"}))

	conversation, errorList := repo.FindDirectConversation("1:2")
	if len(errorList) > 0 {
		t.Fatalf("unexpected errors: %v", errorList)
	}
	if conversation == nil || conversation.ID != 9 {
		t.Fatalf("expected conversation 9, got %+v", conversation)
	}
}

func TestSaveMessageCommitsBothWrites(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMessagingRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectExec(`UPDATE "conversations" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	message := &models.Message{ConversationID: 5, SenderID: 1, Content: "hi"}
	saved, errorList := repo.SaveMessage(message)
	if len(errorList) > 0 {
		t.Fatalf("unexpected errors: %v", errorList)
	}
	if saved.ID != 11 {
		t.Errorf("expected message id 11, got %d", saved.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaveMessageRollsBackOnTimestampFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMessagingRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
	mock.ExpectExec(`UPDATE "conversations" SET`).
		WillReturnError(errs.Error("connection reset"))
	mock.ExpectRollback()

	message := &models.Message{ConversationID: 5, SenderID: 1, Content: "hi"}
	if _, errorList := repo.SaveMessage(message); len(errorList) == 0 {
		t.Fatal("expected save to fail when timestamp update fails")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateConversationRollsBackOnParticipantFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMessagingRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "conversations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectQuery(`INSERT INTO "participants"`).
		WillReturnError(errs.Error("insert failed"))
	mock.ExpectRollback()

	conversation := &models.Conversation{Type: "group"}
	participants := []models.Participant{{UserID: 1, IsAdmin: true}}
	if _, errorList := repo.CreateConversation(conversation, participants); len(errorList) == 0 {
		t.Fatal("expected creation to fail when a participant insert fails")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetMessageByIDNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMessagingRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, errorList := repo.GetMessageByID(99)
	if len(errorList) != 1 || errorList[0] != errs.ErrMessageNotFound {
		t.Errorf("expected ErrMessageNotFound, got %v", errorList)
	}
}

func TestHasReadReceipt(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMessagingRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "read_receipts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	if !repo.HasReadReceipt(1, 2) {
		t.Error("expected receipt to exist")
	}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "read_receipts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	if repo.HasReadReceipt(1, 3) {
		t.Error("expected no receipt")
	}
}
