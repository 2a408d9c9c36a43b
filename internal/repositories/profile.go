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

// ProfileReadRepository reads profiles.
type ProfileReadRepository struct {
	coll *mongo.Collection
}

func NewProfileReadRepository(db *mongo.Database) *ProfileReadRepository {
	return &ProfileReadRepository{coll: db.Collection(ProfilesCollection)}
}

// GetByUser returns the profile owned by the person.
func (r *ProfileReadRepository) GetByUser(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	return r.findOne(ctx, bson.M{"user": userID})
}

// GetByUsername returns the profile with the username.
func (r *ProfileReadRepository) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *ProfileReadRepository) findOne(ctx context.Context, filter bson.M) (*models.Profile, error) {
	var profile models.Profile
	err := r.coll.FindOne(ctx, filter).Decode(&profile)
	logOperation(ProfilesCollection, "findOne", filter, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &profile, nil
}

// GetPublicByUsername returns the profile with its owner resolved.
func (r *ProfileReadRepository) GetPublicByUsername(ctx context.Context, username string) (*models.PublicProfile, error) {
	profiles, err := r.aggregatePublic(ctx, bson.D{{Key: "username", Value: username}})
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, ErrNotFound
	}
	return &profiles[0], nil
}

// ListPublic returns every profile with its owner resolved, oldest first.
func (r *ProfileReadRepository) ListPublic(ctx context.Context) ([]models.PublicProfile, error) {
	return r.aggregatePublic(ctx, bson.D{})
}

func (r *ProfileReadRepository) aggregatePublic(ctx context.Context, match bson.D) ([]models.PublicProfile, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: PersonsCollection},
			{Key: "localField", Value: "user"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "user"},
		}}},
		// Profiles whose owner is gone are dropped.
		{{Key: "$unwind", Value: "$user"}},
		{{Key: "$project", Value: bson.D{
			{Key: "user.password", Value: 0},
			{Key: "user.email", Value: 0},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	logOperation(ProfilesCollection, "aggregate", match, err)
	if err != nil {
		return nil, translateError(err)
	}
	defer cursor.Close(ctx)

	profiles := make([]models.PublicProfile, 0)
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// ProfileWriteRepository writes profiles. Every method is a single atomic document write.
type ProfileWriteRepository struct {
	coll *mongo.Collection
}

func NewProfileWriteRepository(db *mongo.Database) *ProfileWriteRepository {
	return &ProfileWriteRepository{coll: db.Collection(ProfilesCollection)}
}

// Insert stores a new profile. A second profile for the same person or
// username yields ErrDuplicate.
func (r *ProfileWriteRepository) Insert(ctx context.Context, profile *models.Profile) error {
	if profile.ID.IsZero() {
		profile.ID = primitive.NewObjectID()
	}
	if profile.Date.IsZero() {
		profile.Date = time.Now().UTC()
	}
	if profile.Languages == nil {
		profile.Languages = []string{}
	}
	if profile.WorkRole == nil {
		profile.WorkRole = []models.WorkRole{}
	}

	_, err := r.coll.InsertOne(ctx, profile)
	logOperation(ProfilesCollection, "insertOne", bson.M{"user": profile.User, "username": profile.Username}, err)
	return translateError(err)
}

// Update applies the non-nil fields of upd and returns the updated profile.
func (r *ProfileWriteRepository) Update(ctx context.Context, userID primitive.ObjectID, upd models.ProfileUpdate) (*models.Profile, error) {
	filter := bson.M{"user": userID}
	if upd.IsEmpty() {
		var profile models.Profile
		err := r.coll.FindOne(ctx, filter).Decode(&profile)
		logOperation(ProfilesCollection, "findOne", filter, err)
		if err != nil {
			return nil, translateError(err)
		}
		return &profile, nil
	}

	return r.findOneAndUpdate(ctx, "update", filter, bson.M{"$set": profileSetDocument(upd)})
}

// DeleteByUser removes the person's profile and returns what was deleted.
func (r *ProfileWriteRepository) DeleteByUser(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	filter := bson.M{"user": userID}

	var profile models.Profile
	err := r.coll.FindOneAndDelete(ctx, filter).Decode(&profile)
	logOperation(ProfilesCollection, "findOneAndDelete", filter, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &profile, nil
}

// PushWorkRole prepends a work-history entry, generating its ID when unset.
func (r *ProfileWriteRepository) PushWorkRole(ctx context.Context, userID primitive.ObjectID, role models.WorkRole) (*models.Profile, error) {
	if role.ID.IsZero() {
		role.ID = primitive.NewObjectID()
	}
	update := bson.M{
		"$push": bson.M{
			"workrole": bson.M{
				"$each":     []models.WorkRole{role},
				"$position": 0,
			},
		},
	}
	return r.findOneAndUpdate(ctx, "pushWorkRole", bson.M{"user": userID}, update)
}

// PullWorkRole removes the work-history entry. ErrNotFound when either the
// profile or the entry does not exist.
func (r *ProfileWriteRepository) PullWorkRole(ctx context.Context, userID, workRoleID primitive.ObjectID) (*models.Profile, error) {
	filter := bson.M{"user": userID, "workrole._id": workRoleID}
	update := bson.M{"$pull": bson.M{"workrole": bson.M{"_id": workRoleID}}}
	return r.findOneAndUpdate(ctx, "pullWorkRole", filter, update)
}

func (r *ProfileWriteRepository) findOneAndUpdate(ctx context.Context, op string, filter, update bson.M) (*models.Profile, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var profile models.Profile
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&profile)
	logOperation(ProfilesCollection, op, filter, err)
	if err != nil {
		return nil, translateError(err)
	}
	return &profile, nil
}

func profileSetDocument(upd models.ProfileUpdate) bson.M {
	set := bson.M{}
	setString := func(key string, v *string) {
		if v != nil {
			set[key] = *v
		}
	}

	setString("username", upd.Username)
	setString("website", upd.Website)
	setString("country", upd.Country)
	setString("portfolio", upd.Portfolio)
	setString("social.youtube", upd.YouTube)
	setString("social.facebook", upd.Facebook)
	setString("social.instagram", upd.Instagram)
	if upd.Languages != nil {
		set["languages"] = upd.Languages
	}
	return set
}
