package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateComment = "comment created successfully"
	MessageSuccessGetComments   = "success get comments"
	MessageSuccessUpdateComment = "comment updated successfully"
	MessageSuccessDeleteComment = "comment deleted successfully"

	MessageFailedCreateComment = "failed to create comment"
	MessageFailedGetComments   = "failed to get comments"
	MessageFailedUpdateComment = "failed to update comment"
	MessageFailedDeleteComment = "failed to delete comment"

	ErrCommentNotFound      = errors.New("comment not found")
	ErrParentCommentMissing = errors.New("parent comment not found")
	ErrParentCommentForeign = errors.New("parent comment does not belong to this recipe")
	ErrNotCommentOwner      = errors.New("you can only update your own comments")
	ErrCommentDeleteDenied  = errors.New("you can only delete your own comments or comments on your recipes")
)

type (
	CommentRequest struct {
		Comment         string `json:"comment" validate:"required,min=1,max=1000"`
		ParentCommentID string `json:"parent_comment_id" validate:"omitempty,uuid"`
	}

	CommentResponse struct {
		ID              string            `json:"id"`
		Comment         string            `json:"comment"`
		ParentCommentID string            `json:"parent_comment_id,omitempty"`
		IsEdited        bool              `json:"is_edited"`
		CreatedAt       time.Time         `json:"created_at"`
		UpdatedAt       time.Time         `json:"updated_at"`
		User            AuthorInfo        `json:"user"`
		Replies         []CommentResponse `json:"replies"`
	}
)
