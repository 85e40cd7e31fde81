package models

import "time"

type Favorite struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID   uint   `gorm:"not null;uniqueIndex:idx_favorites_pair" json:"user_id"`
	User     User   `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	RecipeID uint   `gorm:"not null;uniqueIndex:idx_favorites_pair;index" json:"recipe_id"`
	Recipe   Recipe `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

type ShoppingCartItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID   uint   `gorm:"not null;uniqueIndex:idx_cart_pair" json:"user_id"`
	User     User   `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	RecipeID uint   `gorm:"not null;uniqueIndex:idx_cart_pair;index" json:"recipe_id"`
	Recipe   Recipe `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
