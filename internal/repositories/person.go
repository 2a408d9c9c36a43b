package repositories

import (
	"context"
	"time"

	"github.com/sbilibin2017/bigstack/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PersonReadRepository reads persons.
type PersonReadRepository struct {
	coll *mongo.Collection
}

func NewPersonReadRepository(db *mongo.Database) *PersonReadRepository {
	return &PersonReadRepository{coll: db.Collection(PersonsCollection)}
}

// GetByID returns ErrNotFound when no person has the id.
func (r *PersonReadRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Person, error) {
	filter := bson.M{"_id": id}

	var person models.Person
	err := r.coll.FindOne(ctx, filter).Decode(&person)
	logOperation(PersonsCollection, "findOne", filter, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &person, nil
}

// GetByEmail returns ErrNotFound when no person has the email.
func (r *PersonReadRepository) GetByEmail(ctx context.Context, email string) (*models.Person, error) {
	filter := bson.M{"email": email}

	var person models.Person
	err := r.coll.FindOne(ctx, filter).Decode(&person)
	logOperation(PersonsCollection, "findOne", filter, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &person, nil
}

// PersonWriteRepository writes persons.
type PersonWriteRepository struct {
	coll *mongo.Collection
}

func NewPersonWriteRepository(db *mongo.Database) *PersonWriteRepository {
	return &PersonWriteRepository{coll: db.Collection(PersonsCollection)}
}

// Save inserts the person, assigning ID and Date when unset.
// A second person with the same email yields ErrDuplicate.
func (r *PersonWriteRepository) Save(ctx context.Context, person *models.Person) error {
	if person.ID.IsZero() {
		person.ID = primitive.NewObjectID()
	}
	if person.Date.IsZero() {
		person.Date = time.Now().UTC()
	}

	_, err := r.coll.InsertOne(ctx, person)
	logOperation(PersonsCollection, "insertOne", bson.M{"_id": person.ID, "email": person.Email}, err)
	return translateError(err)
}

// Delete removes the person by id. ErrNotFound when nothing was deleted.
func (r *PersonWriteRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	filter := bson.M{"_id": id}

	res, err := r.coll.DeleteOne(ctx, filter)
	logOperation(PersonsCollection, "deleteOne", filter, err)
	if err != nil {
		return translateError(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
