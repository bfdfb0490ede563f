package response

import (
	"time"

	"promoservice/internal/data/entity"
)

// UserResponse never carries the password hash or the issued token.
type UserResponse struct {
	ID        int64             `json:"id"`
	Username  string            `json:"username"`
	Role      entity.Role       `json:"role"`
	Email     *string           `json:"email,omitempty"`
	Status    entity.UserStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		Email:     user.Email,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	}
}

func UsersToResponse(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserToResponse(u))
	}
	return out
}
