package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/bigstack/internal/logger"
	"github.com/sbilibin2017/bigstack/internal/models"
	"github.com/sbilibin2017/bigstack/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=services

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrUsernameTaken    = errors.New("username already exists")
	ErrWorkRoleNotFound = errors.New("work role not found")
)

// ProfileReader defines read-only operations for profiles.
type ProfileReader interface {
	GetByUser(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error)
	GetByUsername(ctx context.Context, username string) (*models.Profile, error)
	GetPublicByUsername(ctx context.Context, username string) (*models.PublicProfile, error)
	ListPublic(ctx context.Context) ([]models.PublicProfile, error)
}

// ProfileWriter defines write operations for profiles.
type ProfileWriter interface {
	Insert(ctx context.Context, profile *models.Profile) error
	Update(ctx context.Context, userID primitive.ObjectID, upd models.ProfileUpdate) (*models.Profile, error)
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error)
	PushWorkRole(ctx context.Context, userID primitive.ObjectID, role models.WorkRole) (*models.Profile, error)
	PullWorkRole(ctx context.Context, userID, workRoleID primitive.ObjectID) (*models.Profile, error)
}

// PersonDeleter removes the person owning a deleted profile.
type PersonDeleter interface {
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ProfileCache caches public profiles by username.
type ProfileCache interface {
	Get(ctx context.Context, username string) (*models.PublicProfile, error)
	Set(ctx context.Context, profile *models.PublicProfile) error
	Delete(ctx context.Context, username string) error
}

// ProfileService manages profiles and their work history.
type ProfileService struct {
	reader  ProfileReader
	writer  ProfileWriter
	persons PersonDeleter
	cache   ProfileCache
	events  KafkaWriter
}

// NewProfileService creates a new ProfileService. cache and events may be nil.
func NewProfileService(
	reader ProfileReader,
	writer ProfileWriter,
	persons PersonDeleter,
	cache ProfileCache,
	events KafkaWriter,
) *ProfileService {
	return &ProfileService{
		reader:  reader,
		writer:  writer,
		persons: persons,
		cache:   cache,
		events:  events,
	}
}

// GetByUser returns the profile owned by the person.
func (svc *ProfileService) GetByUser(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	profile, err := svc.reader.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		logger.Log.Errorw("failed to get profile", "user_id", userID.Hex(), "err", err)
		return nil, err
	}
	return profile, nil
}

// GetByUsername returns the public profile, served from cache when possible.
func (svc *ProfileService) GetByUsername(ctx context.Context, username string) (*models.PublicProfile, error) {
	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx, username)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			logger.Log.Warnw("profile cache read failed", "username", username, "err", err)
		}
	}

	profile, err := svc.reader.GetPublicByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		logger.Log.Errorw("failed to get profile by username", "username", username, "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, profile); err != nil {
			logger.Log.Warnw("profile cache write failed", "username", username, "err", err)
		}
	}
	return profile, nil
}

// List returns every public profile. An empty result is not an error.
func (svc *ProfileService) List(ctx context.Context) ([]models.PublicProfile, error) {
	profiles, err := svc.reader.ListPublic(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list profiles", "err", err)
		return nil, err
	}
	if profiles == nil {
		profiles = []models.PublicProfile{}
	}
	return profiles, nil
}

// Save updates the person's profile, or creates it when none exists.
// The boolean result reports whether a profile was created.
func (svc *ProfileService) Save(ctx context.Context, userID primitive.ObjectID, upd models.ProfileUpdate) (*models.Profile, bool, error) {
	if upd.Username != nil {
		username := strings.TrimSpace(*upd.Username)
		if username == "" {
			return nil, false, invalidInput("username must not be empty")
		}
		upd.Username = &username
	}

	existing, err := svc.reader.GetByUser(ctx, userID)
	switch {
	case err == nil:
		profile, err := svc.update(ctx, existing, upd)
		return profile, false, err
	case errors.Is(err, repositories.ErrNotFound):
		profile, err := svc.create(ctx, userID, upd)
		switch {
		case err == nil:
			return profile, true, nil
		case errors.Is(err, repositories.ErrDuplicate):
			return svc.resolveDuplicateCreate(ctx, userID, upd)
		default:
			return nil, false, err
		}
	default:
		logger.Log.Errorw("failed to fetch profile", "user_id", userID.Hex(), "err", err)
		return nil, false, err
	}
}

func (svc *ProfileService) update(ctx context.Context, existing *models.Profile, upd models.ProfileUpdate) (*models.Profile, error) {
	if upd.Username != nil && *upd.Username != existing.Username {
		if err := svc.ensureUsernameFree(ctx, *upd.Username); err != nil {
			return nil, err
		}
	}

	profile, err := svc.writer.Update(ctx, existing.User, upd)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicate):
			return nil, ErrUsernameTaken
		case errors.Is(err, repositories.ErrNotFound):
			// Deleted between the read and the update.
			return nil, ErrProfileNotFound
		}
		logger.Log.Errorw("problem with profile update", "user_id", existing.User.Hex(), "err", err)
		return nil, err
	}

	svc.evict(ctx, existing.Username, profile.Username)
	return profile, nil
}

func (svc *ProfileService) create(ctx context.Context, userID primitive.ObjectID, upd models.ProfileUpdate) (*models.Profile, error) {
	if upd.Username == nil {
		return nil, invalidInput("username is required")
	}
	if err := svc.ensureUsernameFree(ctx, *upd.Username); err != nil {
		return nil, err
	}

	profile := newProfile(userID, upd)
	if err := svc.writer.Insert(ctx, profile); err != nil {
		if !errors.Is(err, repositories.ErrDuplicate) {
			logger.Log.Errorw("profile not saved", "user_id", userID.Hex(), "err", err)
		}
		return nil, err
	}
	return profile, nil
}

// resolveDuplicateCreate handles an insert rejected by a unique index.
// If the person's profile now exists another request created it first and
// the update is applied to it; otherwise the username was taken.
func (svc *ProfileService) resolveDuplicateCreate(ctx context.Context, userID primitive.ObjectID, upd models.ProfileUpdate) (*models.Profile, bool, error) {
	existing, err := svc.reader.GetByUser(ctx, userID)
	switch {
	case err == nil:
		profile, err := svc.update(ctx, existing, upd)
		return profile, false, err
	case errors.Is(err, repositories.ErrNotFound):
		return nil, false, ErrUsernameTaken
	default:
		logger.Log.Errorw("failed to fetch profile", "user_id", userID.Hex(), "err", err)
		return nil, false, err
	}
}

func (svc *ProfileService) ensureUsernameFree(ctx context.Context, username string) error {
	_, err := svc.reader.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return ErrUsernameTaken
	case errors.Is(err, repositories.ErrNotFound):
		return nil
	default:
		logger.Log.Errorw("problem in finding username", "username", username, "err", err)
		return err
	}
}

// Delete removes the person's profile and then the person itself.
// The person is kept when the profile cannot be deleted.
func (svc *ProfileService) Delete(ctx context.Context, userID primitive.ObjectID) error {
	deleted, err := svc.writer.DeleteByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProfileNotFound
		}
		logger.Log.Errorw("deleting profile error", "user_id", userID.Hex(), "err", err)
		return err
	}
	svc.evict(ctx, deleted.Username)

	if err := svc.persons.Delete(ctx, userID); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			logger.Log.Errorw("deleting person error", "user_id", userID.Hex(), "err", err)
			return err
		}
		logger.Log.Warnw("person of deleted profile already gone", "user_id", userID.Hex())
	}

	publishEvent(ctx, svc.events, models.EventProfileDeleted, userID, map[string]string{
		"username": deleted.Username,
	})
	return nil
}

// AddWorkRole prepends a work-history entry to the person's profile.
func (svc *ProfileService) AddWorkRole(ctx context.Context, userID primitive.ObjectID, role models.WorkRole) (*models.Profile, error) {
	role.Role = strings.TrimSpace(role.Role)
	if role.Role == "" {
		return nil, invalidInput("role is required")
	}
	if role.From != nil && role.To != nil && role.To.Before(*role.From) {
		return nil, invalidInput("to must not be before from")
	}
	role.ID = primitive.NewObjectID()

	profile, err := svc.writer.PushWorkRole(ctx, userID, role)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		logger.Log.Errorw("workrole push error", "user_id", userID.Hex(), "err", err)
		return nil, err
	}

	svc.evict(ctx, profile.Username)
	return profile, nil
}

// RemoveWorkRole deletes a work-history entry by id.
func (svc *ProfileService) RemoveWorkRole(ctx context.Context, userID, workRoleID primitive.ObjectID) (*models.Profile, error) {
	profile, err := svc.writer.PullWorkRole(ctx, userID, workRoleID)
	if err == nil {
		svc.evict(ctx, profile.Username)
		return profile, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		logger.Log.Errorw("workrole pull error", "user_id", userID.Hex(), "err", err)
		return nil, err
	}

	// Nothing matched: tell a missing profile apart from a missing entry.
	if _, err := svc.reader.GetByUser(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		logger.Log.Errorw("failed to get profile", "user_id", userID.Hex(), "err", err)
		return nil, err
	}
	return nil, ErrWorkRoleNotFound
}

func (svc *ProfileService) evict(ctx context.Context, usernames ...string) {
	if svc.cache == nil {
		return
	}
	seen := make(map[string]struct{}, len(usernames))
	for _, username := range usernames {
		if username == "" {
			continue
		}
		if _, ok := seen[username]; ok {
			continue
		}
		seen[username] = struct{}{}
		if err := svc.cache.Delete(ctx, username); err != nil {
			logger.Log.Warnw("profile cache eviction failed", "username", username, "err", err)
		}
	}
}

func newProfile(userID primitive.ObjectID, upd models.ProfileUpdate) *models.Profile {
	deref := func(v *string) string {
		if v == nil {
			return ""
		}
		return *v
	}

	languages := upd.Languages
	if languages == nil {
		languages = []string{}
	}

	return &models.Profile{
		User: userID,
		ProfileDetails: models.ProfileDetails{
			Username:  deref(upd.Username),
			Website:   deref(upd.Website),
			Country:   deref(upd.Country),
			Portfolio: deref(upd.Portfolio),
			Languages: languages,
			Social: models.Social{
				YouTube:   deref(upd.YouTube),
				Facebook:  deref(upd.Facebook),
				Instagram: deref(upd.Instagram),
			},
			WorkRole: []models.WorkRole{},
		},
	}
}
