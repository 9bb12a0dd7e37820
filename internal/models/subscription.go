package models

import "time"

// Subscription links a follower (UserID) to an author (AuthorID).
// user != author is enforced at the handler boundary, not here.
type Subscription struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_subscription_user_author"`
	AuthorID  uint `gorm:"not null;uniqueIndex:idx_subscription_user_author"`
	CreatedAt time.Time

	// Relationships
	User   User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Author User `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
