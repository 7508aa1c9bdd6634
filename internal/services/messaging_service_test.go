package services

import (
	"testing"

	"petSocial/internal/errs"
	"petSocial/internal/models"
	"petSocial/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeNotifier struct {
	notified map[uint][]string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{notified: make(map[uint][]string)}
}

func (f *fakeNotifier) Notify(userID uint, payload string) {
	f.notified[userID] = append(f.notified[userID], payload)
}

func setupService(t *testing.T) (*MessagingService, sqlmock.Sqlmock, *fakeNotifier) {
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

	notifier := newFakeNotifier()
	messagingRepo := repositories.NewMessagingRepository(gormDB)
	authRepo := repositories.NewAuthenticationRepository(gormDB)
	return NewMessagingService(messagingRepo, authRepo, notifier), mock, notifier
}

func TestSendMessageRejectsNonParticipant(t *testing.T) {
	service, mock, notifier := setupService(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "participants"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, sendErrs := service.SendMessage(5, 9, &models.MessageRequest{Content: "hi"})
	if len(sendErrs) != 1 || sendErrs[0] != errs.ErrNotParticipant {
		t.Fatalf("expected ErrNotParticipant, got %v", sendErrs)
	}
	if len(notifier.notified) != 0 {
		t.Error("no notification may be sent for a rejected message")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected persistence activity: %v", err)
	}
}

func TestSendMessageFansOutToOtherParticipants(t *testing.T) {
	service, mock, notifier := setupService(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "participants"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
	mock.ExpectExec(`UPDATE "conversations" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT (.+) FROM "participants"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "user_id"}).
			AddRow(1, 5, 1).
			AddRow(2, 5, 2).
			AddRow(3, 5, 3))

	message, sendErrs := service.SendMessage(5, 1, &models.MessageRequest{Content: "hello"})
	if len(sendErrs) > 0 {
		t.Fatalf("unexpected errors: %v", sendErrs)
	}
	if message.ID != 21 {
		t.Errorf("expected message id 21, got %d", message.ID)
	}

	if _, ok := notifier.notified[1]; ok {
		t.Error("sender must not be notified")
	}
	for _, userID := range []uint{2, 3} {
		payloads := notifier.notified[userID]
		if len(payloads) != 1 || payloads[0] != "new_message:5" {
			t.Errorf("user %d: expected one new_message:5 payload, got %v", userID, payloads)
		}
	}
}

func TestSendMessageRejectsEmptyBody(t *testing.T) {
	service, mock, _ := setupService(t)

	_, sendErrs := service.SendMessage(5, 1, &models.MessageRequest{})
	if len(sendErrs) != 1 || sendErrs[0] != errs.ErrEmptyMessage {
		t.Fatalf("expected ErrEmptyMessage, got %v", sendErrs)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected persistence activity: %v", err)
	}
}

func TestMarkMessageReadIsIdempotent(t *testing.T) {
	service, mock, _ := setupService(t)

	mock.ExpectQuery(`SELECT (.+) FROM "messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "sender_id"}).
			AddRow(21, 5, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "participants"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "user_id"}).
			AddRow(7, 5, 2))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "read_receipts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	if markErrs := service.MarkMessageRead(21, 2); len(markErrs) > 0 {
		t.Fatalf("second mark-read must be a no-op, got %v", markErrs)
	}
	// No INSERT was scripted: an attempted second receipt would fail here.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected persistence activity: %v", err)
	}
}

func TestMarkMessageReadUnknownMessage(t *testing.T) {
	service, mock, _ := setupService(t)

	mock.ExpectQuery(`SELECT (.+) FROM "messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	markErrs := service.MarkMessageRead(404, 2)
	if len(markErrs) != 1 || markErrs[0] != errs.ErrMessageNotFound {
		t.Fatalf("expected ErrMessageNotFound, got %v", markErrs)
	}
}

func TestMarkMessageReadRejectsNonParticipant(t *testing.T) {
	service, mock, _ := setupService(t)

	mock.ExpectQuery(`SELECT (.+) FROM "messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "sender_id"}).
			AddRow(21, 5, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "participants"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "user_id"}))

	markErrs := service.MarkMessageRead(21, 9)
	if len(markErrs) != 1 || markErrs[0] != errs.ErrNotParticipant {
		t.Fatalf("expected ErrNotParticipant, got %v", markErrs)
	}
}

func TestAddParticipantRequiresAdmin(t *testing.T) {
	service, mock, notifier := setupService(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "conversations"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT (.+) FROM "participants"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "user_id", "is_admin"}).
			AddRow(2, 5, 2, false))

	addErrs := service.AddParticipant(5, 2, 3)
	if len(addErrs) != 1 || addErrs[0] != errs.ErrAdminAccessRequired {
		t.Fatalf("expected ErrAdminAccessRequired, got %v", addErrs)
	}
	if len(notifier.notified) != 0 {
		t.Error("no notification may be sent for a rejected add")
	}
}

func TestAddParticipantRejectsDuplicate(t *testing.T) {
	service, mock, _ := setupService(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "conversations"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT (.+) FROM "participants"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "user_id", "is_admin"}).
			AddRow(1, 5, 1, true))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "participants"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	addErrs := service.AddParticipant(5, 1, 2)
	if len(addErrs) != 1 || addErrs[0] != errs.ErrAlreadyParticipant {
		t.Fatalf("expected ErrAlreadyParticipant, got %v", addErrs)
	}
}

func TestCreateConversationRejectsUnknownUser(t *testing.T) {
	service, mock, _ := setupService(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	body := &models.CreateConversationRequestBody{
		ConversationType: "direct",
		ParticipantIDs:   []uint{42},
	}
	_, createErrs := service.CreateConversation(1, body)
	if len(createErrs) != 1 || createErrs[0] != errs.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", createErrs)
	}
}

func TestCreateDirectConversationReusesExisting(t *testing.T) {
	service, mock, _ := setupService(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	// Existing direct conversation for the pair: returned unchanged.
	mock.ExpectQuery(`SELECT (.+) FROM "conversations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "direct_key"}).
			AddRow(9, "direct", "1:2"))
	mock.ExpectQuery(`SELECT (.+) FROM "participants"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "user_id", "is_admin"}).
			AddRow(1, 9, 1, true).
			AddRow(2, 9, 2, false))
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name"}).
			AddRow(1, "Riley").
			AddRow(2, "Alex"))
	// Last message annotation; none sent yet.
	mock.ExpectQuery(`SELECT (.+) FROM "messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	body := &models.CreateConversationRequestBody{
		ConversationType: "direct",
		ParticipantIDs:   []uint{2},
	}
	conversation, createErrs := service.CreateConversation(1, body)
	if len(createErrs) > 0 {
		t.Fatalf("unexpected errors: %v", createErrs)
	}
	if conversation.ID != 9 {
		t.Errorf("expected existing conversation 9, got %d", conversation.ID)
	}
	if len(conversation.Participants) != 2 {
		t.Errorf("expected 2 participants, got %d", len(conversation.Participants))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected persistence activity (a new row?): %v", err)
	}
}
