package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/bigstack/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=answer.go -destination=answer_mock.go -package=handlers

// AnswerAdder appends an answer to a question.
type AnswerAdder interface {
	AddAnswer(ctx context.Context, author *models.Person, id primitive.ObjectID, text string) (*models.Question, error)
}

// QuestionUpvoter records a person's upvote.
type QuestionUpvoter interface {
	Upvote(ctx context.Context, userID, id primitive.ObjectID) (*models.Question, error)
}

// AnswerRequest represents the JSON body of an answer
// swagger:model AnswerRequest
type AnswerRequest struct {
	// Answer text
	// required: true
	Text string `json:"text"`
}

// NewAddAnswerHandler returns an HTTP handler that answers a question.
// @Summary Answer question
// @Tags questions
// @Accept json
// @Produce json
// @Param id path string true "Question id"
// @Param answerRequest body handlers.AnswerRequest true "Answer"
// @Success 200 {object} models.Question "Question with the new answer"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Question not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/questions/{id}/answers [post]
// @Security BearerAuth
func NewAddAnswerHandler(svc AnswerAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		person, ok := currentPerson(w, r)
		if !ok {
			return
		}

		id, ok := parseObjectID(w, r, "id")
		if !ok {
			return
		}

		var req AnswerRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		question, err := svc.AddAnswer(r.Context(), person, id, req.Text)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, question)
	}
}

// NewUpvoteHandler returns an HTTP handler that upvotes a question once per person.
// @Summary Upvote question
// @Tags questions
// @Produce json
// @Param id path string true "Question id"
// @Success 200 {object} models.Question "Question with the new upvote"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Question not found"
// @Failure 409 {object} handlers.ErrorResponse "already upvoted"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/questions/{id}/upvote [post]
// @Security BearerAuth
func NewUpvoteHandler(svc QuestionUpvoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		person, ok := currentPerson(w, r)
		if !ok {
			return
		}

		id, ok := parseObjectID(w, r, "id")
		if !ok {
			return
		}

		question, err := svc.Upvote(r.Context(), person.ID, id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, question)
	}
}
