package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"radioapp/internal/models"
	"radioapp/internal/repository"
	"radioapp/internal/service"
)

func TestAddComment_Created(t *testing.T) {
	commentService := new(MockCommentService)
	handler := createTestHandler()
	handler.CommentService = commentService

	commentService.On("AddComment", mock.Anything, service.CreateCommentRequest{
		PublicationID: 1,
		UserID:        7,
		Content:       "gran episodio",
	}).Return(&models.Comment{ID: 3, PublicationID: 1, UserID: 7, Content: "gran episodio", Username: "ana"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/comments",
		strings.NewReader(`{"publication_id": 1, "user_id": 7, "content": "gran episodio"}`))
	rr := httptest.NewRecorder()

	handler.AddComment(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var comment models.Comment
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &comment))
	assert.Equal(t, "ana", comment.Username)
	commentService.AssertExpectations(t)
}

func TestAddComment_ParentMismatch(t *testing.T) {
	commentService := new(MockCommentService)
	handler := createTestHandler()
	handler.CommentService = commentService

	commentService.On("AddComment", mock.Anything, mock.Anything).
		Return(nil, service.ErrParentCommentMismatch)

	req := httptest.NewRequest(http.MethodPost, "/api/comments",
		strings.NewReader(`{"publication_id": 1, "user_id": 7, "parent_comment_id": 9, "content": "hola"}`))
	rr := httptest.NewRecorder()

	handler.AddComment(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAddComment_MissingContent(t *testing.T) {
	commentService := new(MockCommentService)
	handler := createTestHandler()
	handler.CommentService = commentService

	req := httptest.NewRequest(http.MethodPost, "/api/comments",
		strings.NewReader(`{"publication_id": 1, "user_id": 7}`))
	rr := httptest.NewRecorder()

	handler.AddComment(rr, req)

	assertJSONError(t, rr, http.StatusBadRequest, "Make sure publication_id, user_id, and content are provided")
	commentService.AssertNotCalled(t, "AddComment", mock.Anything, mock.Anything)
}

func TestGetComments_ReturnsTree(t *testing.T) {
	commentService := new(MockCommentService)
	handler := createTestHandler()
	handler.CommentService = commentService

	tree := []*models.CommentNode{
		{
			Comment: models.Comment{ID: 1, PublicationID: 5, Content: "raíz"},
			Replies: []*models.CommentNode{
				{Comment: models.Comment{ID: 2, PublicationID: 5, Content: "respuesta"}, Replies: []*models.CommentNode{}},
			},
		},
	}
	commentService.On("GetCommentTree", mock.Anything, int64(5)).Return(tree, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/comments/5", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "5"})
	rr := httptest.NewRecorder()

	handler.GetComments(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got []*models.CommentNode
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Len(t, got[0].Replies, 1)
	assert.Equal(t, int64(2), got[0].Replies[0].ID)
}

func TestGetComments_InvalidID(t *testing.T) {
	handler := createTestHandler()
	handler.CommentService = new(MockCommentService)

	req := httptest.NewRequest(http.MethodGet, "/api/comments/abc", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})
	rr := httptest.NewRecorder()

	handler.GetComments(rr, req)

	assertJSONError(t, rr, http.StatusBadRequest, "Invalid publication id")
}

func TestEditComment_OK(t *testing.T) {
	commentService := new(MockCommentService)
	handler := createTestHandler()
	handler.CommentService = commentService

	commentService.On("EditComment", mock.Anything, int64(3), "editado").
		Return(&models.Comment{ID: 3, Content: "editado"}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/comments/3",
		strings.NewReader(`{"content": "editado"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "3"})
	rr := httptest.NewRecorder()

	handler.EditComment(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "editado")
}

func TestEditComment_NotFound(t *testing.T) {
	commentService := new(MockCommentService)
	handler := createTestHandler()
	handler.CommentService = commentService

	commentService.On("EditComment", mock.Anything, int64(99), "editado").
		Return(nil, repository.ErrCommentNotFound)

	req := httptest.NewRequest(http.MethodPut, "/api/comments/99",
		strings.NewReader(`{"content": "editado"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "99"})
	rr := httptest.NewRecorder()

	handler.EditComment(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteComment_OK(t *testing.T) {
	commentService := new(MockCommentService)
	handler := createTestHandler()
	handler.CommentService = commentService

	commentService.On("DeleteComment", mock.Anything, int64(3)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/comments/3", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "3"})
	rr := httptest.NewRecorder()

	handler.DeleteComment(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	commentService.AssertExpectations(t)
}
