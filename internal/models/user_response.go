package models

type UserResponse struct {
	ID           uint    `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	ProfilePhoto *string `json:"profile_photo"`
	Bio          *string `json:"bio"`
}

type PetResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	AnimalType   string  `json:"animal_type"`
	PetType      string  `json:"pet_type"`
	Breed        string  `json:"breed"`
	ProfilePhoto *string `json:"profile_photo"`
}

type ProfileResponse struct {
	ID           uint           `json:"id"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	ProfilePhoto *string        `json:"profile_photo"`
	Bio          *string        `json:"bio"`
	Location     *string        `json:"location"`
	Pets         []*PetResponse `json:"pets"`
}

type LoginResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}

type GetUsersResponse struct {
	Users []*UserResponse `json:"users"`
	Page  int             `json:"page"`
	Size  int             `json:"size"`
	Total int64           `json:"total"`
}
