package auth

import (
	internal "github.com/frahmantamala/company-management/internal"
	"github.com/frahmantamala/company-management/internal/core/common/validation"
)

type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (dto LoginDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("username", dto.Username).Required().MinLength(1).MaxLength(100)
	v.Field("password", dto.Password).Required().MinLength(6).MaxLength(100)
	return v.Validate()
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}
