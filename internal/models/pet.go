package models

import (
	"time"

	"gorm.io/gorm"
)

// Pet is a profile owned by a user, e.g. pet_type "Cat", breed "Persian"
type Pet struct {
	gorm.Model
	Name         string     `gorm:"not null" json:"name"`
	AnimalType   string     `gorm:"not null" json:"animal_type"`
	PetType      string     `gorm:"not null" json:"pet_type"`
	Breed        string     `json:"breed"`
	Gender       string     `gorm:"size:1" json:"gender"`
	ProfilePhoto *string    `json:"profile_photo"`
	Bio          *string    `json:"bio"`
	DateOfBirth  *time.Time `json:"date_of_birth"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	OwnerID      uint       `gorm:"not null" json:"owner_id"`
}

func (pet *Pet) ToPetResponse() *PetResponse {
	return &PetResponse{
		ID:           pet.ID,
		Name:         pet.Name,
		AnimalType:   pet.AnimalType,
		PetType:      pet.PetType,
		Breed:        pet.Breed,
		ProfilePhoto: pet.ProfilePhoto,
	}
}
