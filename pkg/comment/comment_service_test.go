package comment

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/entities"
	"Recipe-Share-API/pkg/recipe"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Recipe{},
		&entities.RecipeComment{},
	))
	return db
}

func newTestService(t *testing.T) (CommentService, *gorm.DB) {
	db := setupTestDB(t)
	return NewCommentService(NewCommentRepository(db), recipe.NewRecipeRepository(db)), db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *entities.User {
	u := entities.User{
		ID:       uuid.New(),
		Username: username,
		Email:    username + "@example.com",
		IsActive: true,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func seedRecipe(t *testing.T, db *gorm.DB, author *entities.User, public bool) *entities.Recipe {
	r := entities.Recipe{
		ID:       uuid.New(),
		AuthorID: author.ID,
		Title:    "Commented Recipe",
		IsPublic: public,
	}
	require.NoError(t, db.Create(&r).Error)
	return &r
}

func TestCreateComment(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	author := seedUser(t, db, "author")
	commenter := seedUser(t, db, "commenter")
	rec := seedRecipe(t, db, author, true)
	otherRec := seedRecipe(t, db, author, true)

	t.Run("Top level comment", func(t *testing.T) {
		res, err := service.CreateComment(ctx, rec.ID.String(), commenter.ID.String(), domain.CommentRequest{
			Comment: "Looks delicious",
		})
		require.NoError(t, err)
		assert.Equal(t, "Looks delicious", res.Comment)
		assert.Equal(t, "commenter", res.User.Username)
		assert.Empty(t, res.ParentCommentID)
	})

	t.Run("Unknown parent", func(t *testing.T) {
		_, err := service.CreateComment(ctx, rec.ID.String(), commenter.ID.String(), domain.CommentRequest{
			Comment:         "reply",
			ParentCommentID: uuid.NewString(),
		})
		assert.ErrorIs(t, err, domain.ErrParentCommentMissing)
	})

	t.Run("Parent from another recipe", func(t *testing.T) {
		foreign, err := service.CreateComment(ctx, otherRec.ID.String(), commenter.ID.String(), domain.CommentRequest{
			Comment: "on another recipe",
		})
		require.NoError(t, err)

		_, err = service.CreateComment(ctx, rec.ID.String(), commenter.ID.String(), domain.CommentRequest{
			Comment:         "reply",
			ParentCommentID: foreign.ID,
		})
		assert.ErrorIs(t, err, domain.ErrParentCommentForeign)
	})

	t.Run("Reply to reply flattens to root", func(t *testing.T) {
		root, err := service.CreateComment(ctx, rec.ID.String(), commenter.ID.String(), domain.CommentRequest{
			Comment: "root",
		})
		require.NoError(t, err)

		reply, err := service.CreateComment(ctx, rec.ID.String(), author.ID.String(), domain.CommentRequest{
			Comment:         "first reply",
			ParentCommentID: root.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, root.ID, reply.ParentCommentID)

		nested, err := service.CreateComment(ctx, rec.ID.String(), commenter.ID.String(), domain.CommentRequest{
			Comment:         "reply to the reply",
			ParentCommentID: reply.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, root.ID, nested.ParentCommentID)
	})

	t.Run("Private recipe denied", func(t *testing.T) {
		hidden := seedRecipe(t, db, author, false)
		_, err := service.CreateComment(ctx, hidden.ID.String(), commenter.ID.String(), domain.CommentRequest{
			Comment: "sneaky",
		})
		assert.ErrorIs(t, err, domain.ErrRecipeAccessDenied)
	})
}

func TestGetComments(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	author := seedUser(t, db, "host")
	guest := seedUser(t, db, "guest")
	rec := seedRecipe(t, db, author, true)

	first, err := service.CreateComment(ctx, rec.ID.String(), guest.ID.String(), domain.CommentRequest{Comment: "first"})
	require.NoError(t, err)
	_, err = service.CreateComment(ctx, rec.ID.String(), author.ID.String(), domain.CommentRequest{
		Comment:         "a reply",
		ParentCommentID: first.ID,
	})
	require.NoError(t, err)
	_, err = service.CreateComment(ctx, rec.ID.String(), guest.ID.String(), domain.CommentRequest{Comment: "second"})
	require.NoError(t, err)

	comments, count, err := service.GetComments(ctx, rec.ID.String(), "", "", 1, 20)
	require.NoError(t, err)

	// replies nest under their parent, only top level comments are counted
	assert.Equal(t, int64(2), count)
	require.Len(t, comments, 2)

	var root domain.CommentResponse
	for _, c := range comments {
		if c.ID == first.ID {
			root = c
		}
		assert.NotNil(t, c.Replies)
	}
	require.Len(t, root.Replies, 1)
	assert.Equal(t, "a reply", root.Replies[0].Comment)
}

func TestUpdateComment(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	author := seedUser(t, db, "writer")
	other := seedUser(t, db, "other")
	rec := seedRecipe(t, db, author, true)

	created, err := service.CreateComment(ctx, rec.ID.String(), author.ID.String(), domain.CommentRequest{Comment: "typo hre"})
	require.NoError(t, err)

	t.Run("Only the comment author can edit", func(t *testing.T) {
		_, err := service.UpdateComment(ctx, created.ID, other.ID.String(), "hijacked")
		assert.ErrorIs(t, err, domain.ErrNotCommentOwner)
	})

	t.Run("Edit marks the comment edited", func(t *testing.T) {
		res, err := service.UpdateComment(ctx, created.ID, author.ID.String(), "typo here")
		require.NoError(t, err)
		assert.Equal(t, "typo here", res.Comment)
		assert.True(t, res.IsEdited)
	})

	t.Run("Unknown comment", func(t *testing.T) {
		_, err := service.UpdateComment(ctx, uuid.NewString(), author.ID.String(), "text")
		assert.ErrorIs(t, err, domain.ErrCommentNotFound)
	})
}

func TestDeleteComment(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	recipeAuthor := seedUser(t, db, "owner")
	commenter := seedUser(t, db, "visitor")
	bystander := seedUser(t, db, "bystander")
	rec := seedRecipe(t, db, recipeAuthor, true)

	t.Run("Unrelated user cannot delete", func(t *testing.T) {
		c, err := service.CreateComment(ctx, rec.ID.String(), commenter.ID.String(), domain.CommentRequest{Comment: "mine"})
		require.NoError(t, err)

		err = service.DeleteComment(ctx, c.ID, bystander.ID.String())
		assert.ErrorIs(t, err, domain.ErrCommentDeleteDenied)
	})

	t.Run("Recipe author can moderate", func(t *testing.T) {
		c, err := service.CreateComment(ctx, rec.ID.String(), commenter.ID.String(), domain.CommentRequest{Comment: "spam"})
		require.NoError(t, err)

		require.NoError(t, service.DeleteComment(ctx, c.ID, recipeAuthor.ID.String()))
	})

	t.Run("Deleting a root removes its replies", func(t *testing.T) {
		root, err := service.CreateComment(ctx, rec.ID.String(), commenter.ID.String(), domain.CommentRequest{Comment: "root"})
		require.NoError(t, err)
		_, err = service.CreateComment(ctx, rec.ID.String(), recipeAuthor.ID.String(), domain.CommentRequest{
			Comment:         "reply",
			ParentCommentID: root.ID,
		})
		require.NoError(t, err)

		require.NoError(t, service.DeleteComment(ctx, root.ID, commenter.ID.String()))

		var count int64
		db.Model(&entities.RecipeComment{}).Where("recipe_id = ?", rec.ID).Count(&count)
		assert.Zero(t, count)
	})
}
