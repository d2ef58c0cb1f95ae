package request

// UserUpdateRequest is a partial update; only non-nil fields are applied.
type UserUpdateRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role" validate:"omitempty,oneof=editor admin"`
	IsActive *bool   `json:"is_active"`
}

type UserListQuery struct {
	PaginatedRequest
	Search   string
	Role     *string
	IsActive *bool
}
