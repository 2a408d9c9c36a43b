package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/bigstack/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=question.go -destination=question_mock.go -package=handlers

// QuestionLister returns every question.
type QuestionLister interface {
	List(ctx context.Context) ([]models.Question, error)
}

// OwnQuestionLister returns the questions posted by a person.
type OwnQuestionLister interface {
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Question, error)
}

// QuestionGetter returns a single question.
type QuestionGetter interface {
	Get(ctx context.Context, id primitive.ObjectID) (*models.Question, error)
}

// QuestionCreator posts a question.
type QuestionCreator interface {
	Create(ctx context.Context, author *models.Person, title, body string) (*models.Question, error)
}

// QuestionUpdater edits a question owned by a person.
type QuestionUpdater interface {
	Update(ctx context.Context, userID, id primitive.ObjectID, upd models.QuestionUpdate) (*models.Question, error)
}

// QuestionDeleter removes a question owned by a person.
type QuestionDeleter interface {
	Delete(ctx context.Context, userID, id primitive.ObjectID) error
}

// QuestionRequest represents the JSON body for posting a question
// swagger:model QuestionRequest
type QuestionRequest struct {
	// Title
	// required: true
	// default: How do I close a channel?
	Title string `json:"title"`

	// Body
	// required: true
	Body string `json:"body"`
}

// QuestionUpdateRequest represents the JSON body for editing a question.
// Omitted fields are left untouched.
// swagger:model QuestionUpdateRequest
type QuestionUpdateRequest struct {
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
}

// NewListQuestionsHandler returns an HTTP handler listing every question.
// @Summary List questions
// @Description Returns all questions, newest first.
// @Tags questions
// @Produce json
// @Success 200 {array} models.Question "Questions"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/questions/ [get]
func NewListQuestionsHandler(svc QuestionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questions, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, questions)
	}
}

// NewListOwnQuestionsHandler returns an HTTP handler listing the caller's questions.
// @Summary List own questions
// @Tags questions
// @Produce json
// @Success 200 {array} models.Question "Questions"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/questions/mine [get]
// @Security BearerAuth
func NewListOwnQuestionsHandler(svc OwnQuestionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		person, ok := currentPerson(w, r)
		if !ok {
			return
		}

		questions, err := svc.ListByUser(r.Context(), person.ID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, questions)
	}
}

// NewGetQuestionHandler returns an HTTP handler for a single question.
// @Summary Get question
// @Tags questions
// @Produce json
// @Param id path string true "Question id"
// @Success 200 {object} models.Question "Question"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Question not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/questions/{id} [get]
func NewGetQuestionHandler(svc QuestionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseObjectID(w, r, "id")
		if !ok {
			return
		}

		question, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, question)
	}
}

// NewCreateQuestionHandler returns an HTTP handler for posting a question.
// @Summary Post question
// @Tags questions
// @Accept json
// @Produce json
// @Param questionRequest body handlers.QuestionRequest true "Question"
// @Success 201 {object} models.Question "Question created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/questions/ [post]
// @Security BearerAuth
func NewCreateQuestionHandler(svc QuestionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		person, ok := currentPerson(w, r)
		if !ok {
			return
		}

		var req QuestionRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		question, err := svc.Create(r.Context(), person, req.Title, req.Body)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, question)
	}
}

// NewUpdateQuestionHandler returns an HTTP handler for editing the caller's question.
// @Summary Update own question
// @Tags questions
// @Accept json
// @Produce json
// @Param id path string true "Question id"
// @Param questionUpdateRequest body handlers.QuestionUpdateRequest true "Fields to change"
// @Success 200 {object} models.Question "Question updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Question not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/questions/{id} [put]
// @Security BearerAuth
func NewUpdateQuestionHandler(svc QuestionUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		person, ok := currentPerson(w, r)
		if !ok {
			return
		}

		id, ok := parseObjectID(w, r, "id")
		if !ok {
			return
		}

		var req QuestionUpdateRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		question, err := svc.Update(r.Context(), person.ID, id, models.QuestionUpdate{
			Title: req.Title,
			Body:  req.Body,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, question)
	}
}

// NewDeleteQuestionHandler returns an HTTP handler for deleting the caller's question.
// @Summary Delete own question
// @Tags questions
// @Produce json
// @Param id path string true "Question id"
// @Success 200 {object} handlers.MessageResponse "question deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Question not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/questions/{id} [delete]
// @Security BearerAuth
func NewDeleteQuestionHandler(svc QuestionDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		person, ok := currentPerson(w, r)
		if !ok {
			return
		}

		id, ok := parseObjectID(w, r, "id")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), person.ID, id); err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "question deleted"})
	}
}
