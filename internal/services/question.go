package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sbilibin2017/bigstack/internal/logger"
	"github.com/sbilibin2017/bigstack/internal/models"
	"github.com/sbilibin2017/bigstack/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=question.go -destination=question_mock.go -package=services

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrAlreadyUpvoted   = errors.New("already upvoted")
)

// QuestionReader defines read-only operations for questions.
type QuestionReader interface {
	List(ctx context.Context) ([]models.Question, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Question, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Question, error)
}

// QuestionWriter defines write operations for questions.
type QuestionWriter interface {
	Insert(ctx context.Context, question *models.Question) error
	Update(ctx context.Context, id, userID primitive.ObjectID, upd models.QuestionUpdate) (*models.Question, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
	PushAnswer(ctx context.Context, id primitive.ObjectID, answer models.Answer) (*models.Question, error)
	AddUpvote(ctx context.Context, id, userID primitive.ObjectID) (*models.Question, error)
}

// QuestionService handles questions, answers and upvotes.
type QuestionService struct {
	reader QuestionReader
	writer QuestionWriter
	events KafkaWriter
}

// NewQuestionService creates a new QuestionService. events may be nil.
func NewQuestionService(reader QuestionReader, writer QuestionWriter, events KafkaWriter) *QuestionService {
	return &QuestionService{
		reader: reader,
		writer: writer,
		events: events,
	}
}

// List returns every question, newest first.
func (svc *QuestionService) List(ctx context.Context) ([]models.Question, error) {
	questions, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list questions", "err", err)
		return nil, err
	}
	return nonNilQuestions(questions), nil
}

// ListByUser returns the person's questions, newest first.
func (svc *QuestionService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Question, error) {
	questions, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list questions", "user_id", userID.Hex(), "err", err)
		return nil, err
	}
	return nonNilQuestions(questions), nil
}

// Get returns a single question.
func (svc *QuestionService) Get(ctx context.Context, id primitive.ObjectID) (*models.Question, error) {
	question, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		return nil, svc.mapError(err, "failed to get question", id)
	}
	return question, nil
}

// Create posts a new question on behalf of author.
func (svc *QuestionService) Create(ctx context.Context, author *models.Person, title, body string) (*models.Question, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	switch {
	case title == "":
		return nil, invalidInput("title is required")
	case body == "":
		return nil, invalidInput("body is required")
	}

	question := &models.Question{
		User:    author.ID,
		Name:    author.Name,
		Title:   title,
		Body:    body,
		Upvotes: []models.Upvote{},
		Answers: []models.Answer{},
		Date:    time.Now().UTC(),
	}
	if err := svc.writer.Insert(ctx, question); err != nil {
		logger.Log.Errorw("question not saved", "user_id", author.ID.Hex(), "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.events, models.EventQuestionCreated, author.ID, map[string]string{
		"question_id": question.ID.Hex(),
		"title":       question.Title,
	})
	return question, nil
}

// Update edits a question owned by userID. Questions of other persons are reported as not found.
func (svc *QuestionService) Update(ctx context.Context, userID, id primitive.ObjectID, upd models.QuestionUpdate) (*models.Question, error) {
	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title == "" {
			return nil, invalidInput("title must not be empty")
		}
		upd.Title = &title
	}
	if upd.Body != nil {
		body := strings.TrimSpace(*upd.Body)
		if body == "" {
			return nil, invalidInput("body must not be empty")
		}
		upd.Body = &body
	}

	question, err := svc.writer.Update(ctx, id, userID, upd)
	if err != nil {
		return nil, svc.mapError(err, "failed to update question", id)
	}
	return question, nil
}

// Delete removes a question owned by userID.
func (svc *QuestionService) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	if err := svc.writer.Delete(ctx, id, userID); err != nil {
		return svc.mapError(err, "failed to delete question", id)
	}
	return nil
}

// AddAnswer appends an answer by author to the question.
func (svc *QuestionService) AddAnswer(ctx context.Context, author *models.Person, id primitive.ObjectID, text string) (*models.Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, invalidInput("text is required")
	}

	answer := models.Answer{
		ID:   primitive.NewObjectID(),
		User: author.ID,
		Name: author.Name,
		Text: text,
		Date: time.Now().UTC(),
	}
	question, err := svc.writer.PushAnswer(ctx, id, answer)
	if err != nil {
		return nil, svc.mapError(err, "failed to add answer", id)
	}
	return question, nil
}

// Upvote records one upvote per person.
func (svc *QuestionService) Upvote(ctx context.Context, userID, id primitive.ObjectID) (*models.Question, error) {
	question, err := svc.writer.AddUpvote(ctx, id, userID)
	if err == nil {
		return question, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		logger.Log.Errorw("failed to upvote question", "question_id", id.Hex(), "err", err)
		return nil, err
	}

	// Nothing matched: either the question is missing or already upvoted.
	if _, err := svc.reader.GetByID(ctx, id); err != nil {
		return nil, svc.mapError(err, "failed to get question", id)
	}
	return nil, ErrAlreadyUpvoted
}

func (svc *QuestionService) mapError(err error, msg string, id primitive.ObjectID) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrQuestionNotFound
	}
	logger.Log.Errorw(msg, "question_id", id.Hex(), "err", err)
	return err
}

func nonNilQuestions(questions []models.Question) []models.Question {
	if questions == nil {
		return []models.Question{}
	}
	return questions
}
