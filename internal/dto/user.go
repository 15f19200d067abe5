package dto

import "github.com/graphico/brief-api/internal/models"

// UserDTO represents a user in API responses
type UserDTO struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
	Level  string `json:"level"`
	XP     int    `json:"xp"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		Name:   user.Name,
		Email:  user.Email,
		Avatar: user.Avatar,
		Level:  user.Level,
		XP:     user.XP,
	}
}
