package service

import (
	"context"
	"database/sql"
	"errors"

	"radioapp/internal/models"
	"radioapp/internal/repository"
)

var ErrParentCommentMismatch = errors.New("parent comment does not belong to the same publication")

type CreateCommentRequest struct {
	PublicationID   int64  `json:"publication_id"`
	UserID          int64  `json:"user_id"`
	ParentCommentID *int64 `json:"parent_comment_id"`
	Content         string `json:"content"`
}

type CommentService interface {
	AddComment(ctx context.Context, req CreateCommentRequest) (*models.Comment, error)
	GetCommentTree(ctx context.Context, publicationID int64) ([]*models.CommentNode, error)
	EditComment(ctx context.Context, commentID int64, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
}

type commentService struct {
	commentRepo     repository.CommentRepository
	publicationRepo repository.PublicationRepository
	userRepo        repository.UserRepository
}

func NewCommentService(commentRepo repository.CommentRepository, publicationRepo repository.PublicationRepository, userRepo repository.UserRepository) CommentService {
	return &commentService{
		commentRepo:     commentRepo,
		publicationRepo: publicationRepo,
		userRepo:        userRepo,
	}
}

func (s *commentService) AddComment(ctx context.Context, req CreateCommentRequest) (*models.Comment, error) {
	publication, err := s.publicationRepo.GetByID(ctx, req.PublicationID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PublicationID: req.PublicationID,
		UserID:        req.UserID,
		Content:       req.Content,
		Username:      user.Username,
		ProgramID:     publication.ProgramID,
	}

	if req.ParentCommentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *req.ParentCommentID)
		if err != nil {
			return nil, err
		}
		if parent.PublicationID != req.PublicationID {
			return nil, ErrParentCommentMismatch
		}
		comment.ParentCommentID = sql.NullInt64{Int64: *req.ParentCommentID, Valid: true}
	}

	if err = s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) GetCommentTree(ctx context.Context, publicationID int64) ([]*models.CommentNode, error) {
	comments, err := s.commentRepo.GetByPublicationID(ctx, publicationID)
	if err != nil {
		return nil, err
	}

	return BuildCommentTree(comments), nil
}

func (s *commentService) EditComment(ctx context.Context, commentID int64, content string) (*models.Comment, error) {
	return s.commentRepo.Update(ctx, commentID, content)
}

func (s *commentService) DeleteComment(ctx context.Context, commentID int64) error {
	return s.commentRepo.Delete(ctx, commentID)
}

// BuildCommentTree turns a flat comment list into a reply forest. Two
// passes: first every comment gets a node in a lookup map, then each node is
// linked under its parent, so input order does not matter. A comment whose
// parent is missing from the input set is kept as a root rather than
// dropped.
func BuildCommentTree(comments []models.Comment) []*models.CommentNode {
	nodes := make(map[int64]*models.CommentNode, len(comments))
	for i := range comments {
		nodes[comments[i].ID] = &models.CommentNode{
			Comment: comments[i],
			Replies: []*models.CommentNode{},
		}
	}

	tree := []*models.CommentNode{}
	for i := range comments {
		node := nodes[comments[i].ID]
		if comments[i].ParentCommentID.Valid {
			parent, ok := nodes[comments[i].ParentCommentID.Int64]
			if ok {
				parent.Replies = append(parent.Replies, node)
				continue
			}
		}
		tree = append(tree, node)
	}

	return tree
}
