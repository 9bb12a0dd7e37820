package serializers

import (
	"github.com/foodshare-dev/foodshare/internal/models"
	"gorm.io/gorm"
)

type UserResponse struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	// Omitted entirely for anonymous viewers.
	IsSubscribed *bool `json:"is_subscribed,omitempty"`
}

// NewUserResponse builds the API representation of a user as seen by
// viewerID (0 = anonymous).
func NewUserResponse(database *gorm.DB, user models.User, viewerID uint) UserResponse {
	response := UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}

	if viewerID != 0 {
		subscribed := exists(database.Model(&models.Subscription{}).
			Where("user_id = ? AND author_id = ?", viewerID, user.ID))
		response.IsSubscribed = &subscribed
	}

	return response
}

func exists(query *gorm.DB) bool {
	var count int64

	query.Count(&count)

	return count > 0
}
