package services

import (
	"time"

	"petSocial/configs"
	"petSocial/internal/errs"
	"petSocial/internal/models"
	"petSocial/internal/repositories"
	"petSocial/internal/utils"
	"petSocial/internal/validators"
)

type AuthenticationService struct {
	authRepo *repositories.AuthenticationRepository
	config   *configs.Config
}

func NewAuthenticationService(
	authRepo *repositories.AuthenticationRepository,
	config *configs.Config,
) *AuthenticationService {
	return &AuthenticationService{
		authRepo: authRepo,
		config:   config,
	}
}

func (as *AuthenticationService) Register(user *models.User) (*models.User, []error) {
	var errors []error
	if as.authRepo.CheckIfUserExists(user.Email) != nil {
		errors = append(errors, errs.ErrUserAlreadyExists)
		return nil, errors
	}
	if validationErrs := validators.ValidateUser(user); len(validationErrs) > 0 {
		errors = append(errors, validationErrs...)
		return nil, errors
	}
	password, err := utils.HashPassword(user.Password)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	user.PasswordHash = password
	return as.authRepo.CreateUser(user)
}

func (as *AuthenticationService) Login(loginData *models.LoginRequestBody) (*models.LoginResponse, []error) {
	var errors []error

	user, loginErrs := as.authRepo.Login(loginData)
	if len(loginErrs) > 0 {
		errors = append(errors, loginErrs...)
		return nil, errors
	}

	expiration := time.Now().Add(time.Duration(as.config.Viper.GetInt("jwt.expiration_time")) * time.Second)
	token, jwtErr := utils.CreateJwtToken(
		user.ID,
		user.Email,
		user.FirstName,
		user.LastName,
		utils.GetJwtKey(),
		expiration,
	)
	if jwtErr != nil {
		errors = append(errors, jwtErr)
		return nil, errors
	}

	return &models.LoginResponse{
		User:  user.ToUserResponse(),
		Token: token,
	}, nil
}

func (as *AuthenticationService) GetAllUsersWithPagination(page, size int) (*models.GetUsersResponse, []error) {
	return as.authRepo.GetAllUsersWithPagination(page, size)
}

func (as *AuthenticationService) GetSingleUser(userID uint) (*models.ProfileResponse, []error) {
	user, getErrs := as.authRepo.GetUserByID(userID)
	if len(getErrs) > 0 {
		return nil, getErrs
	}
	return user.ToProfileResponse(), nil
}

func (as *AuthenticationService) UpdateUserProfilePhoto(userID uint, url string) []error {
	return as.authRepo.UpdateUserProfilePhoto(userID, url)
}

func (as *AuthenticationService) UpdateUser(update *models.UpdateUserRequest) (*models.ProfileResponse, []error) {
	user, updateErrs := as.authRepo.UpdateUser(update)
	if len(updateErrs) > 0 {
		return nil, updateErrs
	}
	return user.ToProfileResponse(), nil
}
