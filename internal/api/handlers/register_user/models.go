package register_user

import "github.com/damn-devil/bath.book/internal/service/users"

// RegisterUserRequest HTTP request model
type RegisterUserRequest struct {
	DisplayName string  `json:"displayName"`
	Gender      *string `json:"gender,omitempty"` // "male" | "female"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RegisterUserRequest) ToServiceRequest(userID int64) *users.RegisterOrUpdateRequest {
	return &users.RegisterOrUpdateRequest{
		UserID:      userID,
		DisplayName: r.DisplayName,
		Gender:      r.Gender,
	}
}
