package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/foodgram/internal/testutil"
)

func TestFollow_UniqueAndNotSelf(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserGormRepository(db)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")

	require.NoError(t, repo.Follow(ctx, alice.ID, bob.ID))
	assert.ErrorIs(t, repo.Follow(ctx, alice.ID, bob.ID), gorm.ErrDuplicatedKey)
	assert.Error(t, repo.Follow(ctx, alice.ID, alice.ID))

	followed, err := repo.FollowedAuthorIDs(ctx, alice.ID, []uint{alice.ID, bob.ID})
	require.NoError(t, err)
	assert.Equal(t, map[uint]bool{bob.ID: true}, followed)

	removed, err := repo.Unfollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Unfollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestListSubscriptionsWithRecipes(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserGormRepository(db)
	ctx := context.Background()

	me := testutil.CreateUser(t, db, "me")
	chef := testutil.CreateUser(t, db, "chef")
	baker := testutil.CreateUser(t, db, "baker")
	testutil.CreateUser(t, db, "stranger")

	testutil.CreateRecipe(t, db, chef, "soup", nil)
	newest := testutil.CreateRecipe(t, db, chef, "stew", nil)
	testutil.CreateRecipe(t, db, baker, "bread", nil)

	require.NoError(t, repo.Follow(ctx, me.ID, chef.ID))
	require.NoError(t, repo.Follow(ctx, me.ID, baker.ID))

	authors, total, err := repo.ListSubscriptions(ctx, me.ID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, authors, 2)
	assert.Equal(t, []uint{chef.ID, baker.ID}, []uint{authors[0].ID, authors[1].ID})

	recipes, err := repo.AuthorRecipes(ctx, []uint{chef.ID, baker.ID}, 1)
	require.NoError(t, err)
	require.Len(t, recipes[chef.ID], 1)
	assert.Equal(t, newest.ID, recipes[chef.ID][0].ID)
	require.Len(t, recipes[baker.ID], 1)

	all, err := repo.AuthorRecipes(ctx, []uint{chef.ID}, -1)
	require.NoError(t, err)
	assert.Len(t, all[chef.ID], 2)

	counts, err := repo.RecipeCounts(ctx, []uint{chef.ID, baker.ID})
	require.NoError(t, err)
	assert.Equal(t, map[uint]int64{chef.ID: 2, baker.ID: 1}, counts)
}

func TestEmailAndUsernameTaken(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserGormRepository(db)
	ctx := context.Background()

	u := testutil.CreateUser(t, db, "alice")

	taken, err := repo.EmailTaken(ctx, "ALICE@example.com", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.EmailTaken(ctx, "alice@example.com", u.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.UsernameTaken(ctx, "alice", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	got, err := repo.GetUserByEmail(ctx, "Alice@Example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestAuthorRecipes_LimitIsAppliedInSQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectQuery(
		regexp.QuoteMeta("ROW_NUMBER() OVER (PARTITION BY author_id ORDER BY id DESC) AS rn") +
			".*" + regexp.QuoteMeta(") AS ranked WHERE rn <= $3"),
	).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "author_id", "name", "image", "cooking_time"}).
			AddRow(12, 1, "stew", "recipes/a.webp", 30).
			AddRow(11, 1, "soup", "recipes/b.webp", 20).
			AddRow(20, 2, "bread", "recipes/c.webp", 90))

	recipes, err := NewUserGormRepository(gdb).AuthorRecipes(context.Background(), []uint{1, 2}, 3)
	require.NoError(t, err)
	assert.Len(t, recipes[1], 2)
	assert.Len(t, recipes[2], 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
