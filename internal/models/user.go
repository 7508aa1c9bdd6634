package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account owner in the application
type User struct {
	gorm.Model
	FirstName    string     `gorm:"not null" json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `gorm:"unique;not null" json:"email"`
	Phone        string     `gorm:"unique;not null" json:"phone"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Password     string     `gorm:"-" json:"password"`
	ProfilePhoto *string    `json:"profile_photo"`
	Bio          *string    `json:"bio"`
	Location     *string    `json:"location"`
	DateOfBirth  *time.Time `json:"date_of_birth"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	Pets         []Pet      `gorm:"foreignKey:OwnerID" json:"pets,omitempty"`
}

func (user *User) ToUserResponse() *UserResponse {
	return &UserResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		ProfilePhoto: user.ProfilePhoto,
		Bio:          user.Bio,
	}
}

func (user *User) ToProfileResponse() *ProfileResponse {
	pets := []*PetResponse{}
	for i := range user.Pets {
		pets = append(pets, user.Pets[i].ToPetResponse())
	}
	return &ProfileResponse{
		ID:           user.ID,
		Email:        user.Email,
		Phone:        user.Phone,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		ProfilePhoto: user.ProfilePhoto,
		Bio:          user.Bio,
		Location:     user.Location,
		Pets:         pets,
	}
}
