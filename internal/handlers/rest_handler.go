package handlers

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"petSocial/internal/enums"
	"petSocial/internal/errs"
	"petSocial/internal/models"
	"petSocial/internal/msgs"
	"petSocial/internal/services"
	"petSocial/internal/utils"

	"github.com/gin-gonic/gin"
)

type RestHandler struct {
	authService        *services.AuthenticationService
	messagingService   *services.MessagingService
	fileManagerService *services.FileManagerService
}

func NewRestHandler(
	authService *services.AuthenticationService,
	messagingService *services.MessagingService,
	fileManagerService *services.FileManagerService,
) *RestHandler {
	return &RestHandler{
		authService:        authService,
		messagingService:   messagingService,
		fileManagerService: fileManagerService,
	}
}

func abortWithErrors(ctx *gin.Context, errors []error) {
	ctx.AbortWithStatusJSON(errs.HttpStatus(errors), models.Response{
		Success: false,
		Message: msgs.MsgOperationFailed,
		Errors:  models.ErrorMessages(errors),
	})
}

// Register godoc
// @Summary      Register a new user
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        user  body      models.User  true  "User data"
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /register [post]
func (rh *RestHandler) Register(ctx *gin.Context) {
	var user models.User
	if err := ctx.BindJSON(&user); err != nil {
		abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	if _, registerErrs := rh.authService.Register(&user); len(registerErrs) > 0 {
		abortWithErrors(ctx, registerErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgUserCreatedSuccessfully,
	})
}

// Login godoc
// @Summary      Login user to account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        credentials  body      models.LoginRequestBody  true  "Credentials"
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /login [post]
func (rh *RestHandler) Login(ctx *gin.Context) {
	var loginData models.LoginRequestBody
	if err := ctx.BindJSON(&loginData); err != nil {
		log.Println("Error login data json binding:", err)
		abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	loginResponse, loginErrs := rh.authService.Login(&loginData)
	if len(loginErrs) > 0 {
		abortWithErrors(ctx, loginErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    loginResponse,
	})
}

func (rh *RestHandler) GetAllUsersWithPagination(ctx *gin.Context) {
	pageInt, sizeInt := pageAndSize(ctx, "page", "size")

	response, getErrs := rh.authService.GetAllUsersWithPagination(pageInt, sizeInt)
	if len(getErrs) > 0 {
		abortWithErrors(ctx, getErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    response,
	})
}

func (rh *RestHandler) GetSingleUser(ctx *gin.Context) {
	idInt, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || idInt < 1 {
		abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	user, getErrs := rh.authService.GetSingleUser(uint(idInt))
	if len(getErrs) > 0 {
		abortWithErrors(ctx, getErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    user,
	})
}

func (rh *RestHandler) UpdateUser(ctx *gin.Context) {
	var updateUserRequest models.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&updateUserRequest); err != nil {
		abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	userID := utils.GetUserIdFromContext(ctx)
	if userID < 1 {
		abortWithErrors(ctx, []error{errs.ErrUnauthorized})
		return
	}
	updateUserRequest.ID = userID

	updatedUser, updateErrs := rh.authService.UpdateUser(&updateUserRequest)
	if len(updateErrs) > 0 {
		abortWithErrors(ctx, updateErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    updatedUser,
	})
}

// UploadUserProfilePhoto godoc
// @Summary      Upload profile photo
// @Tags         accounts
// @Accept       mpfd
// @Produce      json
// @Success      200  {object}  models.Response
// @Router       /users/profile-photo [post]
func (rh *RestHandler) UploadUserProfilePhoto(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	if userID < 1 {
		abortWithErrors(ctx, []error{errs.ErrUnauthorized})
		return
	}

	url, uploadErrs := rh.uploadFormFile(ctx, "profile_photo",
		fmt.Sprintf("user_profile_photo_%d", userID), enums.FILE_BUCKET_USER_PROFILE)
	if len(uploadErrs) > 0 {
		abortWithErrors(ctx, uploadErrs)
		return
	}

	if updateErrs := rh.authService.UpdateUserProfilePhoto(userID, url); len(updateErrs) > 0 {
		abortWithErrors(ctx, []error{errs.ErrUnableToUpdateProfile})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    url,
	})
}

// UploadMedia stores a message attachment and returns the URL the client
// passes back as media_url when sending the message.
func (rh *RestHandler) UploadMedia(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	if userID < 1 {
		abortWithErrors(ctx, []error{errs.ErrUnauthorized})
		return
	}

	url, uploadErrs := rh.uploadFormFile(ctx, "media",
		fmt.Sprintf("message_media_%d_%d", userID, ctx.Request.ContentLength), enums.FILE_BUCKET_MESSAGE_MEDIA)
	if len(uploadErrs) > 0 {
		abortWithErrors(ctx, uploadErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    url,
	})
}

func (rh *RestHandler) uploadFormFile(ctx *gin.Context, field, baseName, bucket string) (string, []error) {
	file, err := ctx.FormFile(field)
	if err != nil {
		return "", []error{errs.ErrNoFileUploaded}
	}

	src, err := file.Open()
	if err != nil {
		return "", []error{errs.ErrUnableToOpenUploadedFile}
	}
	defer src.Close()

	fileName := baseName + filepath.Ext(file.Filename)
	url, err := rh.fileManagerService.UploadUserProfilePhoto(fileName, src, file.Size, file.Header.Get("Content-Type"), bucket)
	if err != nil {
		return "", []error{errs.ErrUnableToUploadFile}
	}
	return url, nil
}

// CreateConversation godoc
// @Summary      Create a direct or group conversation
// @Tags         messaging
// @Accept       json
// @Produce      json
// @Param        conversation  body      models.CreateConversationRequestBody  true  "Conversation data"
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /messaging/conversation [post]
func (rh *RestHandler) CreateConversation(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	if userID < 1 {
		abortWithErrors(ctx, []error{errs.ErrUnauthorized})
		return
	}

	var body models.CreateConversationRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	conversation, createErrs := rh.messagingService.CreateConversation(userID, &body)
	if len(createErrs) > 0 {
		abortWithErrors(ctx, createErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    conversation,
	})
}

// GetUserConversations godoc
// @Summary      List the requester's conversations
// @Tags         messaging
// @Produce      json
// @Param        skip   query  int  false  "Offset"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  models.Response
// @Router       /messaging/conversations [get]
func (rh *RestHandler) GetUserConversations(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	if userID < 1 {
		abortWithErrors(ctx, []error{errs.ErrUnauthorized})
		return
	}

	skipInt, err := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	if err != nil || skipInt < 0 {
		skipInt = 0
	}
	limitInt, err := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if err != nil || limitInt < 1 {
		limitInt = 20
	}

	conversations, listErrs := rh.messagingService.GetUserConversations(userID, skipInt, limitInt)
	if len(listErrs) > 0 {
		abortWithErrors(ctx, listErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    conversations,
	})
}

// SendMessage godoc
// @Summary      Send a message to a conversation
// @Tags         messaging
// @Accept       json
// @Produce      json
// @Param        id       path  int                    true  "Conversation ID"
// @Param        message  body  models.MessageRequest  true  "Message data"
// @Success      200  {object}  models.Response
// @Failure      403  {object}  models.Response
// @Router       /messaging/conversations/{id}/messages [post]
func (rh *RestHandler) SendMessage(ctx *gin.Context) {
	senderID := utils.GetUserIdFromContext(ctx)
	if senderID < 1 {
		abortWithErrors(ctx, []error{errs.ErrUnauthorized})
		return
	}

	conversationID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || conversationID < 1 {
		abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	var body models.MessageRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	message, sendErrs := rh.messagingService.SendMessage(uint(conversationID), senderID, &body)
	if len(sendErrs) > 0 {
		abortWithErrors(ctx, sendErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    message,
	})
}

// GetConversationMessages godoc
// @Summary      Page through conversation messages with read state
// @Tags         messaging
// @Produce      json
// @Param        id     path   int  true   "Conversation ID"
// @Param        page   query  int  false  "Page number (1-based)"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  models.Response
// @Failure      403  {object}  models.Response
// @Router       /messaging/conversations/{id}/messages [get]
func (rh *RestHandler) GetConversationMessages(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	if userID < 1 {
		abortWithErrors(ctx, []error{errs.ErrUnauthorized})
		return
	}

	conversationID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || conversationID < 1 {
		abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	pageInt, limitInt := pageAndSize(ctx, "page", "limit")

	messages, getErrs := rh.messagingService.GetConversationMessages(uint(conversationID), userID, pageInt, limitInt)
	if len(getErrs) > 0 {
		abortWithErrors(ctx, getErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    messages,
	})
}

// MarkMessageRead godoc
// @Summary      Mark a message as read by the requester
// @Tags         messaging
// @Accept       json
// @Produce      json
// @Param        read  body  models.MarkReadRequest  true  "Message to mark"
// @Success      200  {object}  models.Response
// @Failure      403  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /messaging/messages/mark-read [post]
func (rh *RestHandler) MarkMessageRead(ctx *gin.Context) {
	userID := utils.GetUserIdFromContext(ctx)
	if userID < 1 {
		abortWithErrors(ctx, []error{errs.ErrUnauthorized})
		return
	}

	var body models.MarkReadRequest
	if err := ctx.ShouldBindJSON(&body); err != nil || body.MessageID < 1 {
		abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	if markErrs := rh.messagingService.MarkMessageRead(body.MessageID, userID); len(markErrs) > 0 {
		abortWithErrors(ctx, markErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgMarkedAsRead,
	})
}

// AddParticipant godoc
// @Summary      Add a user to a conversation (admin only)
// @Tags         messaging
// @Produce      json
// @Param        id       path   int  true  "Conversation ID"
// @Param        user_id  query  int  true  "User to add"
// @Success      200  {object}  models.Response
// @Failure      403  {object}  models.Response
// @Failure      409  {object}  models.Response
// @Router       /messaging/conversations/{id}/participants [post]
func (rh *RestHandler) AddParticipant(ctx *gin.Context) {
	requesterID := utils.GetUserIdFromContext(ctx)
	if requesterID < 1 {
		abortWithErrors(ctx, []error{errs.ErrUnauthorized})
		return
	}

	conversationID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || conversationID < 1 {
		abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	newUserID, err := strconv.Atoi(ctx.Query("user_id"))
	if err != nil || newUserID < 1 {
		abortWithErrors(ctx, []error{errs.ErrInvalidParams})
		return
	}

	if addErrs := rh.messagingService.AddParticipant(uint(conversationID), requesterID, uint(newUserID)); len(addErrs) > 0 {
		abortWithErrors(ctx, addErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgParticipantAdded,
	})
}

func pageAndSize(ctx *gin.Context, pageKey, sizeKey string) (int, int) {
	pageInt, err := strconv.Atoi(ctx.DefaultQuery(pageKey, "1"))
	if err != nil || pageInt < 1 {
		pageInt = 1
	}
	sizeInt, err := strconv.Atoi(ctx.DefaultQuery(sizeKey, "50"))
	if err != nil || sizeInt < 1 {
		sizeInt = 50
	}
	return pageInt, sizeInt
}
