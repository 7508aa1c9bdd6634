package repositories

import (
	"petSocial/internal/errs"
	"petSocial/internal/models"
	"petSocial/internal/utils"

	"gorm.io/gorm"
)

type AuthenticationRepository struct {
	db *gorm.DB
}

func NewAuthenticationRepository(db *gorm.DB) *AuthenticationRepository {
	return &AuthenticationRepository{
		db: db,
	}
}

func (ar *AuthenticationRepository) CreateUser(user *models.User) (*models.User, []error) {
	var errors []error
	result := ar.db.Create(user)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return nil, errors
	}
	if result.RowsAffected == 0 {
		errors = append(errors, errs.ErrUserNotFound)
		return nil, errors
	}
	return user, nil
}

func (ar *AuthenticationRepository) CheckIfUserExists(email string) *models.User {
	var user models.User
	result := ar.db.Where("email = ?", email).First(&user)
	if result.Error == nil && result.RowsAffected > 0 {
		return &user
	}
	return nil
}

func (ar *AuthenticationRepository) Login(login *models.LoginRequestBody) (*models.User, []error) {
	var errors []error
	user := ar.CheckIfUserExists(login.Email)
	if user == nil {
		errors = append(errors, errs.ErrUserNotFound)
		return nil, errors
	}
	if err := utils.CompareHashAndPassword(user.PasswordHash, login.Password); err != nil {
		errors = append(errors, errs.ErrWrongPassword)
		return nil, errors
	}
	return user, nil
}

func (ar *AuthenticationRepository) GetUserByID(userID uint) (*models.User, []error) {
	var errors []error
	var user models.User
	result := ar.db.Preload("Pets").Where("id = ?", userID).First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			errors = append(errors, errs.ErrUserNotFound)
		} else {
			errors = append(errors, result.Error)
		}
		return nil, errors
	}
	return &user, nil
}

// CountExistingUsers reports how many of the given ids resolve to users.
func (ar *AuthenticationRepository) CountExistingUsers(userIDs []uint) (int64, error) {
	var count int64
	if err := ar.db.Model(&models.User{}).Where("id IN ?", userIDs).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (ar *AuthenticationRepository) GetAllUsersWithPagination(page, size int) (*models.GetUsersResponse, []error) {
	var errors []error
	var users []models.User
	var total int64

	transactionErr := ar.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Scopes(utils.Paginate(page, size)).
			Order("created_at DESC").
			Find(&users).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Count(&total).Error; err != nil {
			return err
		}
		return nil
	})
	if transactionErr != nil {
		errors = append(errors, transactionErr)
		return nil, errors
	}

	userResponses := make([]*models.UserResponse, 0, len(users))
	for i := range users {
		userResponses = append(userResponses, users[i].ToUserResponse())
	}

	return &models.GetUsersResponse{
		Users: userResponses,
		Page:  page,
		Size:  size,
		Total: total,
	}, nil
}

func (ar *AuthenticationRepository) UpdateUserProfilePhoto(userID uint, url string) []error {
	var errors []error
	result := ar.db.Model(&models.User{}).Where("id = ?", userID).Update("profile_photo", url)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return errors
	}
	if result.RowsAffected == 0 {
		errors = append(errors, errs.ErrUserNotFound)
		return errors
	}
	return nil
}

func (ar *AuthenticationRepository) UpdateUser(update *models.UpdateUserRequest) (*models.User, []error) {
	var errors []error
	updates := map[string]interface{}{
		"first_name": update.FirstName,
		"last_name":  update.LastName,
		"bio":        update.Bio,
		"location":   update.Location,
	}
	result := ar.db.Model(&models.User{}).Where("id = ?", update.ID).Updates(updates)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return nil, errors
	}
	if result.RowsAffected == 0 {
		errors = append(errors, errs.ErrUserNotFound)
		return nil, errors
	}
	return ar.GetUserByID(update.ID)
}
