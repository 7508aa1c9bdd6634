package validators

import (
	"regexp"

	"petSocial/internal/errs"
	"petSocial/internal/models"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

func ValidateUser(user *models.User) []error {
	var errors []error
	if user == nil {
		errors = append(errors, errs.ErrInvalidUser)
		return errors
	}

	if user.Email == "" || !ValidateEmail(user.Email) {
		errors = append(errors, errs.ErrInvalidEmail)
	}

	if !ValidatePhone(user.Phone) {
		errors = append(errors, errs.ErrInvalidPhone)
	}

	if !ValidatePassword(user.Password) {
		errors = append(errors, errs.ErrInvalidPassword)
	}

	if user.FirstName == "" || len(user.FirstName) < 2 {
		errors = append(errors, errs.ErrFirstName)
	}

	return errors
}

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidatePassword requires at least 8 characters out of letters, digits
// and @#$%^&+=! specials.
func ValidatePassword(password string) bool {
	pattern := `^(?:[0-9a-zA-Z@#$%^&+=!]{8,})$`
	regex, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return regex.MatchString(password)
}
