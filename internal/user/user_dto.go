package user

import "github.com/vbasilioo/workly-web/internal/shared/apperror"

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=120"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Role     string `json:"role" binding:"required,oneof=administrator user"`
}

func (r CreateUserRequest) Validate() error {
	return apperror.Validate(r)
}

// UpdateUserRequest leaves the password unchanged when it is omitted.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=3,max=120"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=6,max=72"`
	Role     *string `json:"role,omitempty" binding:"omitempty,oneof=administrator user"`
}

func (r UpdateUserRequest) Validate() error {
	return apperror.Validate(r)
}
