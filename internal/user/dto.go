package user

import (
	internal "github.com/frahmantamala/company-management/internal"
	"github.com/frahmantamala/company-management/internal/core/common/validation"
	"github.com/frahmantamala/company-management/internal/core/datamodel"
)

// Roles is the closed set of accepted user roles.
var Roles = []string{"Admin", "User"}

type CreateUserDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (dto CreateUserDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("username", dto.Username).Required().MinLength(1).MaxLength(100)
	v.Field("password", dto.Password).Required().MinLength(6).MaxLength(100)
	v.Field("name", dto.Name).Required().MinLength(1).MaxLength(100)
	v.Field("email", dto.Email).Required().Email()
	v.Field("role", dto.Role).Required().OneOf(Roles...)
	return v.Validate()
}

// UpdateUserDTO carries partial fields; the ID comes from the URL path.
type UpdateUserDTO struct {
	ID       string  `json:"-"`
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *string `json:"role,omitempty"`
}

func (dto UpdateUserDTO) Validate() *internal.AppError {
	v := validation.NewValidator()
	v.Field("id", dto.ID).Required().UUID()
	v.Field("username", dto.Username).MinLength(1).MaxLength(100)
	v.Field("password", dto.Password).MinLength(6).MaxLength(100)
	v.Field("name", dto.Name).MinLength(1).MaxLength(100)
	v.Field("email", dto.Email).Email()
	v.Field("role", dto.Role).OneOf(Roles...)
	return v.Validate()
}

// UserResponse never carries the password, hashed or otherwise.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func FromDataModel(u *datamodel.User) *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
	}
}
