package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/foodgram/internal/domain/user"
	"github.com/BruksfildServices01/foodgram/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// --------------------------------------------------
// Accounts
// --------------------------------------------------

func (r *UserGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) ListUsers(
	ctx context.Context,
	offset int,
	limit int,
) ([]models.User, int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserGormRepository) UpdateUser(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserGormRepository) EmailTaken(
	ctx context.Context,
	email string,
	exceptID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("LOWER(email) = ? AND id <> ?", strings.ToLower(email), exceptID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserGormRepository) UsernameTaken(
	ctx context.Context,
	username string,
	exceptID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("username = ? AND id <> ?", username, exceptID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Follows
// --------------------------------------------------

func (r *UserGormRepository) Follow(
	ctx context.Context,
	userID uint,
	authorID uint,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(&models.Follow{UserID: userID, AuthorID: authorID}).Error
}

func (r *UserGormRepository) Unfollow(
	ctx context.Context,
	userID uint,
	authorID uint,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *UserGormRepository) FollowedAuthorIDs(
	ctx context.Context,
	userID uint,
	authorIDs []uint,
) (map[uint]bool, error) {
	return followedAuthorIDs(ctx, r.db, userID, authorIDs)
}

func followedAuthorIDs(
	ctx context.Context,
	db *gorm.DB,
	userID uint,
	authorIDs []uint,
) (map[uint]bool, error) {

	out := map[uint]bool{}
	if userID == 0 || len(authorIDs) == 0 {
		return out, nil
	}

	var ids []uint
	if err := db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("user_id = ? AND author_id IN ?", userID, authorIDs).
		Pluck("author_id", &ids).Error; err != nil {
		return nil, err
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func (r *UserGormRepository) ListSubscriptions(
	ctx context.Context,
	userID uint,
	offset int,
	limit int,
) ([]models.User, int64, error) {

	followed := func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN follows ON follows.author_id = users.id").
			Where("follows.user_id = ?", userID)
	}

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Scopes(followed).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var authors []models.User
	if err := r.db.WithContext(ctx).
		Scopes(followed).
		Order("follows.id ASC").
		Offset(offset).
		Limit(limit).
		Find(&authors).Error; err != nil {
		return nil, 0, err
	}
	return authors, total, nil
}

// --------------------------------------------------
// Author recipes
// --------------------------------------------------

func (r *UserGormRepository) AuthorRecipes(
	ctx context.Context,
	authorIDs []uint,
	limit int,
) (map[uint][]models.Recipe, error) {

	out := map[uint][]models.Recipe{}
	if len(authorIDs) == 0 || limit == 0 {
		return out, nil
	}

	var recipes []models.Recipe
	if err := r.db.WithContext(ctx).
		Scopes(latestPerAuthor(r.db.WithContext(ctx), authorIDs, limit)).
		Find(&recipes).Error; err != nil {
		return nil, err
	}

	for _, rec := range recipes {
		out[rec.AuthorID] = append(out[rec.AuthorID], rec)
	}
	return out, nil
}

// latestPerAuthor selects each author's recipes newest first. A positive
// limit keeps only that many per author, ranked in SQL.
func latestPerAuthor(db *gorm.DB, authorIDs []uint, limit int) func(*gorm.DB) *gorm.DB {
	const columns = "id, author_id, name, image, cooking_time"

	return func(q *gorm.DB) *gorm.DB {
		if limit < 0 {
			return q.Model(&models.Recipe{}).
				Select(columns).
				Where("author_id IN ?", authorIDs).
				Order("author_id").
				Order("id DESC")
		}

		ranked := db.Model(&models.Recipe{}).
			Select(columns+", ROW_NUMBER() OVER (PARTITION BY author_id ORDER BY id DESC) AS rn").
			Where("author_id IN ?", authorIDs)

		return q.Table("(?) AS ranked", ranked).
			Select(columns).
			Where("rn <= ?", limit).
			Order("author_id").
			Order("id DESC")
	}
}

func (r *UserGormRepository) RecipeCounts(
	ctx context.Context,
	authorIDs []uint,
) (map[uint]int64, error) {

	out := map[uint]int64{}
	if len(authorIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		AuthorID uint
		Total    int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Select("author_id, COUNT(*) AS total").
		Where("author_id IN ?", authorIDs).
		Group("author_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.AuthorID] = row.Total
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
