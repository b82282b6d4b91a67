package payload

import (
	"biowallet/internal/repository"

	"github.com/jellydator/validation"
)

// UpdateUserRequest carries the user profile fields the owner may change. A
// field left out of the JSON body stays unchanged.
type UpdateUserRequest struct {
	Email     *string `json:"email"`
	DeviceID  *string `json:"deviceId"`
	IsPremium *bool   `json:"isPremium"`
}

func (u UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Email, validation.Length(0, 255)),
		validation.Field(&u.DeviceID, validation.Length(0, 64)),
	)
}

func (u UpdateUserRequest) ToUserUpdate() repository.UserUpdate {
	return repository.UserUpdate{
		Email:     u.Email,
		DeviceID:  u.DeviceID,
		IsPremium: u.IsPremium,
	}
}
