package repositories

import (
	"context"
	"time"

	"github.com/sbilibin2017/bigstack/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// QuestionReadRepository reads questions.
type QuestionReadRepository struct {
	coll *mongo.Collection
}

func NewQuestionReadRepository(db *mongo.Database) *QuestionReadRepository {
	return &QuestionReadRepository{coll: db.Collection(QuestionsCollection)}
}

// List returns every question, newest first.
func (r *QuestionReadRepository) List(ctx context.Context) ([]models.Question, error) {
	return r.find(ctx, bson.M{})
}

// ListByUser returns the person's questions, newest first.
func (r *QuestionReadRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Question, error) {
	return r.find(ctx, bson.M{"user": userID})
}

// GetByID returns ErrNotFound when no question has the id.
func (r *QuestionReadRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Question, error) {
	filter := bson.M{"_id": id}

	var question models.Question
	err := r.coll.FindOne(ctx, filter).Decode(&question)
	logOperation(QuestionsCollection, "findOne", filter, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &question, nil
}

func (r *QuestionReadRepository) find(ctx context.Context, filter bson.M) ([]models.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	logOperation(QuestionsCollection, "find", filter, err)
	if err != nil {
		return nil, translateError(err)
	}
	defer cursor.Close(ctx)

	questions := make([]models.Question, 0)
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// QuestionWriteRepository writes questions. Ownership is enforced in the
// filter of every owner-scoped write.
type QuestionWriteRepository struct {
	coll *mongo.Collection
}

func NewQuestionWriteRepository(db *mongo.Database) *QuestionWriteRepository {
	return &QuestionWriteRepository{coll: db.Collection(QuestionsCollection)}
}

// Insert stores a new question, assigning ID and Date when unset.
func (r *QuestionWriteRepository) Insert(ctx context.Context, question *models.Question) error {
	if question.ID.IsZero() {
		question.ID = primitive.NewObjectID()
	}
	if question.Date.IsZero() {
		question.Date = time.Now().UTC()
	}
	if question.Upvotes == nil {
		question.Upvotes = []models.Upvote{}
	}
	if question.Answers == nil {
		question.Answers = []models.Answer{}
	}

	_, err := r.coll.InsertOne(ctx, question)
	logOperation(QuestionsCollection, "insertOne", bson.M{"_id": question.ID, "user": question.User}, err)
	return translateError(err)
}

// Update applies the non-nil fields of upd to a question owned by userID.
// ErrNotFound when the question does not exist or belongs to someone else.
func (r *QuestionWriteRepository) Update(ctx context.Context, id, userID primitive.ObjectID, upd models.QuestionUpdate) (*models.Question, error) {
	filter := bson.M{"_id": id, "user": userID}

	if upd.IsEmpty() {
		var question models.Question
		err := r.coll.FindOne(ctx, filter).Decode(&question)
		logOperation(QuestionsCollection, "findOne", filter, err)
		if err != nil {
			return nil, translateError(err)
		}
		return &question, nil
	}

	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Body != nil {
		set["body"] = *upd.Body
	}

	return r.findOneAndUpdate(ctx, "update", filter, bson.M{"$set": set})
}

// Delete removes a question owned by userID.
func (r *QuestionWriteRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	filter := bson.M{"_id": id, "user": userID}

	res, err := r.coll.DeleteOne(ctx, filter)
	logOperation(QuestionsCollection, "deleteOne", filter, err)
	if err != nil {
		return translateError(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// PushAnswer appends an answer, generating its ID when unset.
func (r *QuestionWriteRepository) PushAnswer(ctx context.Context, id primitive.ObjectID, answer models.Answer) (*models.Question, error) {
	if answer.ID.IsZero() {
		answer.ID = primitive.NewObjectID()
	}
	if answer.Date.IsZero() {
		answer.Date = time.Now().UTC()
	}
	update := bson.M{"$push": bson.M{"answers": answer}}
	return r.findOneAndUpdate(ctx, "pushAnswer", bson.M{"_id": id}, update)
}

// AddUpvote records userID's upvote. ErrNotFound when the question does not
// exist or userID already upvoted it.
func (r *QuestionWriteRepository) AddUpvote(ctx context.Context, id, userID primitive.ObjectID) (*models.Question, error) {
	filter := bson.M{"_id": id, "upvotes.user": bson.M{"$ne": userID}}
	update := bson.M{"$push": bson.M{"upvotes": models.Upvote{User: userID}}}
	return r.findOneAndUpdate(ctx, "addUpvote", filter, update)
}

func (r *QuestionWriteRepository) findOneAndUpdate(ctx context.Context, op string, filter, update bson.M) (*models.Question, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var question models.Question
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&question)
	logOperation(QuestionsCollection, op, filter, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &question, nil
}
