package dto

import (
	"github.com/BruksfildServices01/foodgram/internal/models"
)

type UserDTO struct {
	Email        string  `json:"email"`
	ID           uint    `json:"id"`
	Username     string  `json:"username"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	IsSubscribed bool    `json:"is_subscribed"`
	Avatar       *string `json:"avatar"`
}

type AvatarDTO struct {
	Avatar string `json:"avatar"`
}

type FollowDTO struct {
	UserDTO
	Recipes      []RecipeShortDTO `json:"recipes"`
	RecipesCount int64            `json:"recipes_count"`
}

func User(u *models.User, subscribed bool, media MediaURL) UserDTO {
	out := UserDTO{
		Email:        u.Email,
		ID:           u.ID,
		Username:     u.UsernameOrEmpty(),
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: subscribed,
	}
	if u.Avatar != nil && *u.Avatar != "" {
		url := media(*u.Avatar)
		out.Avatar = &url
	}
	return out
}

// Follow renders a followed author. The requester follows them by
// construction, so is_subscribed is always true.
func Follow(author *models.User, recipes []models.Recipe, count int64, media MediaURL) FollowDTO {
	short := make([]RecipeShortDTO, 0, len(recipes))
	for i := range recipes {
		short = append(short, RecipeShort(&recipes[i], media))
	}
	return FollowDTO{
		UserDTO:      User(author, true, media),
		Recipes:      short,
		RecipesCount: count,
	}
}
