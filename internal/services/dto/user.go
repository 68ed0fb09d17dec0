package dto

// UpdateUserRequest updates profile fields. Password change requires the
// current password.
type UpdateUserRequest struct {
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Phone       string `json:"phone"`
	OldPassword string `json:"oldPassword"`
	Password    string `json:"password" validate:"omitempty,min=6"`
}

type UpdateRolesRequest struct {
	Roles []string `json:"roles" validate:"required,min=1"`
}
