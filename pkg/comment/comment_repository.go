package comment

import (
	"Recipe-Share-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	CommentRow struct {
		entities.RecipeComment
		Username        string
		FirstName       string
		LastName        string
		ProfileImageURL string
	}

	CommentRepository interface {
		CreateComment(ctx context.Context, comment *entities.RecipeComment) error
		GetCommentByID(ctx context.Context, id string) (*entities.RecipeComment, error)
		GetCommentRow(ctx context.Context, id string) (*CommentRow, error)
		UpdateComment(ctx context.Context, comment *entities.RecipeComment) error
		DeleteCommentTree(ctx context.Context, id string) error
		GetTopLevelComments(ctx context.Context, recipeID, sort string, offset, limit int) ([]CommentRow, int64, error)
		GetReplies(ctx context.Context, parentIDs []string) ([]CommentRow, error)
	}

	commentRepository struct {
		db *gorm.DB
	}
)

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

const userJoinSelect = "recipe_comments.*, users.username, users.first_name, users.last_name, users.profile_image_url"

func (r *commentRepository) CreateComment(ctx context.Context, comment *entities.RecipeComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetCommentByID(ctx context.Context, id string) (*entities.RecipeComment, error) {
	var comment entities.RecipeComment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) GetCommentRow(ctx context.Context, id string) (*CommentRow, error) {
	var row CommentRow
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeComment{}).
		Select(userJoinSelect).
		Joins("JOIN users ON users.id = recipe_comments.user_id").
		Where("recipe_comments.id = ?", id).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *commentRepository) UpdateComment(ctx context.Context, comment *entities.RecipeComment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

// DeleteCommentTree removes a comment together with its direct replies.
func (r *commentRepository) DeleteCommentTree(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_comment_id = ?", id).Delete(&entities.RecipeComment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.RecipeComment{}).Error
	})
}

func (r *commentRepository) GetTopLevelComments(ctx context.Context, recipeID, sort string, offset, limit int) ([]CommentRow, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeComment{}).
		Where("recipe_id = ? AND parent_comment_id IS NULL", recipeID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	column := "recipe_comments.created_at"
	if sort == "updated_at" {
		column = "recipe_comments.updated_at"
	}

	var rows []CommentRow
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeComment{}).
		Select(userJoinSelect).
		Joins("JOIN users ON users.id = recipe_comments.user_id").
		Where("recipe_comments.recipe_id = ? AND recipe_comments.parent_comment_id IS NULL", recipeID).
		Order(column + " DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, count, nil
}

func (r *commentRepository) GetReplies(ctx context.Context, parentIDs []string) ([]CommentRow, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	var rows []CommentRow
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeComment{}).
		Select(userJoinSelect).
		Joins("JOIN users ON users.id = recipe_comments.user_id").
		Where("recipe_comments.parent_comment_id IN ?", parentIDs).
		Order("recipe_comments.created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
