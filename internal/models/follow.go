package models

import "time"

// Follow is a subscription edge from User to Author.
type Follow struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID   uint `gorm:"not null;uniqueIndex:idx_follows_pair;check:chk_follows_not_self,user_id <> author_id" json:"user_id"`
	User     User `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	AuthorID uint `gorm:"not null;uniqueIndex:idx_follows_pair;index" json:"author_id"`
	Author   User `gorm:"constraint:OnDelete:CASCADE;" json:"author"`

	CreatedAt time.Time `json:"created_at"`
}
