package models

type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:32;not null;uniqueIndex:idx_tags_name_slug" json:"name"`
	Slug string `gorm:"size:32;not null;uniqueIndex;uniqueIndex:idx_tags_name_slug" json:"slug"`
}
