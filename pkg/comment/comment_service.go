package comment

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/entities"
	"Recipe-Share-API/pkg/recipe"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CommentService interface {
		CreateComment(ctx context.Context, recipeID, userID string, req domain.CommentRequest) (domain.CommentResponse, error)
		GetComments(ctx context.Context, recipeID, viewerID, sort string, page, limit int) ([]domain.CommentResponse, int64, error)
		UpdateComment(ctx context.Context, commentID, userID string, comment string) (domain.CommentResponse, error)
		DeleteComment(ctx context.Context, commentID, userID string) error
	}

	commentService struct {
		commentRepository CommentRepository
		recipeRepository  recipe.RecipeRepository
	}
)

func NewCommentService(commentRepository CommentRepository, recipeRepository recipe.RecipeRepository) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		recipeRepository:  recipeRepository,
	}
}

func toCommentResponse(row CommentRow) domain.CommentResponse {
	res := domain.CommentResponse{
		ID:        row.ID.String(),
		Comment:   row.Comment,
		IsEdited:  row.IsEdited,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		User: domain.AuthorInfo{
			ID:              row.UserID.String(),
			Username:        row.Username,
			FirstName:       row.FirstName,
			LastName:        row.LastName,
			FullName:        domain.FullName(row.FirstName, row.LastName),
			ProfileImageURL: row.ProfileImageURL,
		},
		Replies: []domain.CommentResponse{},
	}
	if row.ParentCommentID != nil {
		res.ParentCommentID = row.ParentCommentID.String()
	}
	return res
}

func (s *commentService) visibleRecipe(ctx context.Context, recipeID, viewerID string) (*entities.Recipe, error) {
	rec, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if !rec.IsPublic && rec.AuthorID.String() != viewerID {
		return nil, domain.ErrRecipeAccessDenied
	}
	return rec, nil
}

func (s *commentService) CreateComment(ctx context.Context, recipeID, userID string, req domain.CommentRequest) (domain.CommentResponse, error) {
	if _, err := s.visibleRecipe(ctx, recipeID, userID); err != nil {
		return domain.CommentResponse{}, err
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.CommentResponse{}, domain.ErrParseUUID
	}
	rid, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.CommentResponse{}, domain.ErrParseUUID
	}

	comment := entities.RecipeComment{
		ID:       uuid.New(),
		RecipeID: rid,
		UserID:   uid,
		Comment:  req.Comment,
	}

	if req.ParentCommentID != "" {
		parent, err := s.commentRepository.GetCommentByID(ctx, req.ParentCommentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.CommentResponse{}, domain.ErrParentCommentMissing
			}
			return domain.CommentResponse{}, err
		}
		if parent.RecipeID != rid {
			return domain.CommentResponse{}, domain.ErrParentCommentForeign
		}
		// replies stay one level deep, a reply to a reply attaches to the root
		parentID := parent.ID
		if parent.ParentCommentID != nil {
			parentID = *parent.ParentCommentID
		}
		comment.ParentCommentID = &parentID
	}

	if err := s.commentRepository.CreateComment(ctx, &comment); err != nil {
		return domain.CommentResponse{}, err
	}

	row, err := s.commentRepository.GetCommentRow(ctx, comment.ID.String())
	if err != nil {
		return domain.CommentResponse{}, err
	}
	return toCommentResponse(*row), nil
}

func (s *commentService) GetComments(ctx context.Context, recipeID, viewerID, sort string, page, limit int) ([]domain.CommentResponse, int64, error) {
	if _, err := s.visibleRecipe(ctx, recipeID, viewerID); err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	rows, count, err := s.commentRepository.GetTopLevelComments(ctx, recipeID, sort, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	parentIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		parentIDs = append(parentIDs, row.ID.String())
	}
	replies, err := s.commentRepository.GetReplies(ctx, parentIDs)
	if err != nil {
		return nil, 0, err
	}

	repliesByParent := make(map[string][]domain.CommentResponse, len(rows))
	for _, reply := range replies {
		key := reply.ParentCommentID.String()
		repliesByParent[key] = append(repliesByParent[key], toCommentResponse(reply))
	}

	result := make([]domain.CommentResponse, 0, len(rows))
	for _, row := range rows {
		res := toCommentResponse(row)
		if nested, ok := repliesByParent[res.ID]; ok {
			res.Replies = nested
		}
		result = append(result, res)
	}
	return result, count, nil
}

func (s *commentService) UpdateComment(ctx context.Context, commentID, userID string, text string) (domain.CommentResponse, error) {
	comment, err := s.commentRepository.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CommentResponse{}, domain.ErrCommentNotFound
		}
		return domain.CommentResponse{}, err
	}
	if comment.UserID.String() != userID {
		return domain.CommentResponse{}, domain.ErrNotCommentOwner
	}

	comment.Comment = text
	comment.IsEdited = true
	if err := s.commentRepository.UpdateComment(ctx, comment); err != nil {
		return domain.CommentResponse{}, err
	}

	row, err := s.commentRepository.GetCommentRow(ctx, commentID)
	if err != nil {
		return domain.CommentResponse{}, err
	}
	return toCommentResponse(*row), nil
}

// DeleteComment allows the comment author and the recipe author to remove a
// comment; replies go with it.
func (s *commentService) DeleteComment(ctx context.Context, commentID, userID string) error {
	comment, err := s.commentRepository.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCommentNotFound
		}
		return err
	}

	if comment.UserID.String() != userID {
		rec, err := s.recipeRepository.GetRecipeByID(ctx, comment.RecipeID.String())
		if err != nil {
			return err
		}
		if rec.AuthorID.String() != userID {
			return domain.ErrCommentDeleteDenied
		}
	}

	return s.commentRepository.DeleteCommentTree(ctx, commentID)
}
