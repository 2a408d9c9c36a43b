package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/bigstack/internal/models"
	"github.com/sbilibin2017/bigstack/internal/repositories"
	"github.com/sbilibin2017/bigstack/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type profileMocks struct {
	reader  *services.MockProfileReader
	writer  *services.MockProfileWriter
	persons *services.MockPersonDeleter
	cache   *services.MockProfileCache
}

func newProfileService(t *testing.T, withCache bool) (*services.ProfileService, profileMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := profileMocks{
		reader:  services.NewMockProfileReader(ctrl),
		writer:  services.NewMockProfileWriter(ctrl),
		persons: services.NewMockPersonDeleter(ctrl),
		cache:   services.NewMockProfileCache(ctrl),
	}
	if !withCache {
		return services.NewProfileService(m.reader, m.writer, m.persons, nil, nil), m
	}
	return services.NewProfileService(m.reader, m.writer, m.persons, m.cache, nil), m
}

func strPtr(s string) *string { return &s }

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, s)
	require.NoError(t, err)
	return d
}

func TestProfileService_GetByUser(t *testing.T) {
	userID := primitive.NewObjectID()

	tests := []struct {
		name    string
		profile *models.Profile
		repoErr error
		wantErr error
	}{
		{
			name:    "found",
			profile: &models.Profile{User: userID, ProfileDetails: models.ProfileDetails{Username: "alice"}},
		},
		{
			name:    "no profile",
			repoErr: repositories.ErrNotFound,
			wantErr: services.ErrProfileNotFound,
		},
		{
			name:    "db error",
			repoErr: errors.New("db error"),
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newProfileService(t, false)
			m.reader.EXPECT().GetByUser(gomock.Any(), userID).Return(tt.profile, tt.repoErr)

			profile, err := svc.GetByUser(context.Background(), userID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice", profile.Username)
		})
	}
}

func TestProfileService_GetByUsername_CacheHit(t *testing.T) {
	svc, m := newProfileService(t, true)

	cached := &models.PublicProfile{ProfileDetails: models.ProfileDetails{Username: "alice"}}
	m.cache.EXPECT().Get(gomock.Any(), "alice").Return(cached, nil)

	profile, err := svc.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Same(t, cached, profile)
}

func TestProfileService_GetByUsername_CacheMiss(t *testing.T) {
	svc, m := newProfileService(t, true)

	stored := &models.PublicProfile{ProfileDetails: models.ProfileDetails{Username: "alice"}}
	gomock.InOrder(
		m.cache.EXPECT().Get(gomock.Any(), "alice").Return(nil, repositories.ErrNotFound),
		m.reader.EXPECT().GetPublicByUsername(gomock.Any(), "alice").Return(stored, nil),
		m.cache.EXPECT().Set(gomock.Any(), stored).Return(errors.New("redis down")),
	)

	profile, err := svc.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, stored, profile)
}

func TestProfileService_GetByUsername_NotFound(t *testing.T) {
	svc, m := newProfileService(t, false)
	m.reader.EXPECT().GetPublicByUsername(gomock.Any(), "ghost").Return(nil, repositories.ErrNotFound)

	_, err := svc.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, services.ErrProfileNotFound)
}

func TestProfileService_List(t *testing.T) {
	svc, m := newProfileService(t, false)
	m.reader.EXPECT().ListPublic(gomock.Any()).Return(nil, nil)

	profiles, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, profiles)
	assert.Empty(t, profiles)
}

func TestProfileService_Save_Create(t *testing.T) {
	svc, m := newProfileService(t, false)
	userID := primitive.NewObjectID()

	m.reader.EXPECT().GetByUser(gomock.Any(), userID).Return(nil, repositories.ErrNotFound)
	m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, repositories.ErrNotFound)
	m.writer.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Profile) error {
			assert.Equal(t, userID, p.User)
			assert.Equal(t, "alice", p.Username)
			assert.Equal(t, []string{"go", "rust"}, p.Languages)
			assert.Equal(t, "https://youtube.com/alice", p.Social.YouTube)
			assert.Empty(t, p.WorkRole)
			return nil
		})

	profile, created, err := svc.Save(context.Background(), userID, models.ProfileUpdate{
		Username:  strPtr("  alice "),
		Languages: []string{"go", "rust"},
		YouTube:   strPtr("https://youtube.com/alice"),
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "alice", profile.Username)
}

func TestProfileService_Save_CreateRequiresUsername(t *testing.T) {
	svc, m := newProfileService(t, false)
	userID := primitive.NewObjectID()

	m.reader.EXPECT().GetByUser(gomock.Any(), userID).Return(nil, repositories.ErrNotFound)

	_, _, err := svc.Save(context.Background(), userID, models.ProfileUpdate{Website: strPtr("https://a.dev")})
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestProfileService_Save_EmptyUsername(t *testing.T) {
	svc, _ := newProfileService(t, false)

	_, _, err := svc.Save(context.Background(), primitive.NewObjectID(), models.ProfileUpdate{Username: strPtr("   ")})
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestProfileService_Save_CreateUsernameTaken(t *testing.T) {
	svc, m := newProfileService(t, false)
	userID := primitive.NewObjectID()

	m.reader.EXPECT().GetByUser(gomock.Any(), userID).Return(nil, repositories.ErrNotFound)
	m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").
		Return(&models.Profile{User: primitive.NewObjectID()}, nil)
	m.writer.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

	_, created, err := svc.Save(context.Background(), userID, models.ProfileUpdate{Username: strPtr("alice")})
	assert.ErrorIs(t, err, services.ErrUsernameTaken)
	assert.False(t, created)
}

func TestProfileService_Save_CreateUsernameRace(t *testing.T) {
	svc, m := newProfileService(t, false)
	userID := primitive.NewObjectID()

	gomock.InOrder(
		m.reader.EXPECT().GetByUser(gomock.Any(), userID).Return(nil, repositories.ErrNotFound),
		m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, repositories.ErrNotFound),
		m.writer.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(repositories.ErrDuplicate),
		m.reader.EXPECT().GetByUser(gomock.Any(), userID).Return(nil, repositories.ErrNotFound),
	)
	m.writer.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, created, err := svc.Save(context.Background(), userID, models.ProfileUpdate{Username: strPtr("alice")})
	assert.ErrorIs(t, err, services.ErrUsernameTaken)
	assert.False(t, created)
}

func TestProfileService_Save_ConcurrentCreateBySamePerson(t *testing.T) {
	svc, m := newProfileService(t, false)
	userID := primitive.NewObjectID()

	upd := models.ProfileUpdate{Username: strPtr("alice"), Country: strPtr("NL")}
	winner := &models.Profile{User: userID, ProfileDetails: models.ProfileDetails{Username: "alice"}}
	updated := &models.Profile{User: userID, ProfileDetails: models.ProfileDetails{Username: "alice", Country: "NL"}}

	gomock.InOrder(
		m.reader.EXPECT().GetByUser(gomock.Any(), userID).Return(nil, repositories.ErrNotFound),
		m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, repositories.ErrNotFound),
		m.writer.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(repositories.ErrDuplicate),
		m.reader.EXPECT().GetByUser(gomock.Any(), userID).Return(winner, nil),
		m.writer.EXPECT().Update(gomock.Any(), userID, upd).Return(updated, nil),
	)

	profile, created, err := svc.Save(context.Background(), userID, upd)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, updated, profile)
}

func TestProfileService_Save_DuplicateRereadFails(t *testing.T) {
	svc, m := newProfileService(t, false)
	userID := primitive.NewObjectID()
	dbErr := errors.New("mongo down")

	gomock.InOrder(
		m.reader.EXPECT().GetByUser(gomock.Any(), userID).Return(nil, repositories.ErrNotFound),
		m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, repositories.ErrNotFound),
		m.writer.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(repositories.ErrDuplicate),
		m.reader.EXPECT().GetByUser(gomock.Any(), userID).Return(nil, dbErr),
	)

	_, _, err := svc.Save(context.Background(), userID, models.ProfileUpdate{Username: strPtr("alice")})
	assert.ErrorIs(t, err, dbErr)
}

func TestProfileService_Save_Update(t *testing.T) {
	svc, m := newProfileService(t, true)
	userID := primitive.NewObjectID()

	existing := &models.Profile{User: userID, ProfileDetails: models.ProfileDetails{Username: "alice"}}
	updated := &models.Profile{User: userID, ProfileDetails: models.ProfileDetails{Username: "alice2", Website: "https://a.dev"}}
	upd := models.ProfileUpdate{Username: strPtr("alice2"), Website: strPtr("https://a.dev")}

	m.reader.EXPECT().GetByUser(gomock.Any(), userID).Return(existing, nil)
	m.reader.EXPECT().GetByUsername(gomock.Any(), "alice2").Return(nil, repositories.ErrNotFound)
	m.writer.EXPECT().Update(gomock.Any(), userID, upd).Return(updated, nil)
	m.cache.EXPECT().Delete(gomock.Any(), "alice").Return(nil)
	m.cache.EXPECT().Delete(gomock.Any(), "alice2").Return(nil)

	profile, created, err := svc.Save(context.Background(), userID, upd)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, updated, profile)
}

func TestProfileService_Save_UpdateSameUsernameSkipsCheck(t *testing.T) {
	svc, m := newProfileService(t, false)
	userID := primitive.NewObjectID()

	existing := &models.Profile{User: userID, ProfileDetails: models.ProfileDetails{Username: "alice"}}
	upd := models.ProfileUpdate{Username: strPtr("alice"), Country: strPtr("NL")}

	m.reader.EXPECT().GetByUser(gomock.Any(), userID).Return(existing, nil)
	m.reader.EXPECT().GetByUsername(gomock.Any(), gomock.Any()).Times(0)
	m.writer.EXPECT().Update(gomock.Any(), userID, upd).Return(existing, nil)

	_, created, err := svc.Save(context.Background(), userID, upd)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestProfileService_Save_UpdateUsernameTaken(t *testing.T) {
	svc, m := newProfileService(t, false)
	userID := primitive.NewObjectID()

	existing := &models.Profile{User: userID, ProfileDetails: models.ProfileDetails{Username: "alice"}}
	m.reader.EXPECT().GetByUser(gomock.Any(), userID).Return(existing, nil)
	m.reader.EXPECT().GetByUsername(gomock.Any(), "bob").Return(&models.Profile{}, nil)
	m.writer.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, _, err := svc.Save(context.Background(), userID, models.ProfileUpdate{Username: strPtr("bob")})
	assert.ErrorIs(t, err, services.ErrUsernameTaken)
}

func TestProfileService_Delete(t *testing.T) {
	userID := primitive.NewObjectID()

	tests := []struct {
		name       string
		deleteErr  error
		personErr  error
		wantErr    error
		wantPerson bool
	}{
		{
			name:       "profile and person removed",
			wantPerson: true,
		},
		{
			name:       "person already gone",
			personErr:  repositories.ErrNotFound,
			wantPerson: true,
		},
		{
			name:       "person delete fails",
			personErr:  errors.New("db error"),
			wantErr:    errors.New("db error"),
			wantPerson: true,
		},
		{
			name:      "no profile keeps person",
			deleteErr: repositories.ErrNotFound,
			wantErr:   services.ErrProfileNotFound,
		},
		{
			name:      "profile delete fails keeps person",
			deleteErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newProfileService(t, true)

			var deleted *models.Profile
			if tt.deleteErr == nil {
				deleted = &models.Profile{User: userID, ProfileDetails: models.ProfileDetails{Username: "alice"}}
				m.cache.EXPECT().Delete(gomock.Any(), "alice").Return(nil)
			}
			m.writer.EXPECT().DeleteByUser(gomock.Any(), userID).Return(deleted, tt.deleteErr)
			if tt.wantPerson {
				m.persons.EXPECT().Delete(gomock.Any(), userID).Return(tt.personErr)
			} else {
				m.persons.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)
			}

			err := svc.Delete(context.Background(), userID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestProfileService_AddWorkRole(t *testing.T) {
	userID := primitive.NewObjectID()
	from := mustDate(t, "2020-01-01")
	to := mustDate(t, "2019-01-01")

	t.Run("prepends entry", func(t *testing.T) {
		svc, m := newProfileService(t, false)
		m.writer.EXPECT().PushWorkRole(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ primitive.ObjectID, role models.WorkRole) (*models.Profile, error) {
				assert.False(t, role.ID.IsZero())
				assert.Equal(t, "Engineer", role.Role)
				return &models.Profile{User: userID, ProfileDetails: models.ProfileDetails{
					Username: "alice",
					WorkRole: []models.WorkRole{role},
				}}, nil
			})

		profile, err := svc.AddWorkRole(context.Background(), userID, models.WorkRole{Role: " Engineer ", From: &from})
		require.NoError(t, err)
		require.Len(t, profile.WorkRole, 1)
	})

	t.Run("role required", func(t *testing.T) {
		svc, _ := newProfileService(t, false)
		_, err := svc.AddWorkRole(context.Background(), userID, models.WorkRole{})
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})

	t.Run("to before from", func(t *testing.T) {
		svc, _ := newProfileService(t, false)
		_, err := svc.AddWorkRole(context.Background(), userID, models.WorkRole{Role: "Engineer", From: &from, To: &to})
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})

	t.Run("no profile", func(t *testing.T) {
		svc, m := newProfileService(t, false)
		m.writer.EXPECT().PushWorkRole(gomock.Any(), userID, gomock.Any()).Return(nil, repositories.ErrNotFound)

		_, err := svc.AddWorkRole(context.Background(), userID, models.WorkRole{Role: "Engineer"})
		assert.ErrorIs(t, err, services.ErrProfileNotFound)
	})
}

func TestProfileService_RemoveWorkRole(t *testing.T) {
	userID := primitive.NewObjectID()
	roleID := primitive.NewObjectID()

	t.Run("removed", func(t *testing.T) {
		svc, m := newProfileService(t, false)
		m.writer.EXPECT().PullWorkRole(gomock.Any(), userID, roleID).
			Return(&models.Profile{User: userID, ProfileDetails: models.ProfileDetails{WorkRole: []models.WorkRole{}}}, nil)

		profile, err := svc.RemoveWorkRole(context.Background(), userID, roleID)
		require.NoError(t, err)
		assert.Empty(t, profile.WorkRole)
	})

	t.Run("unknown entry", func(t *testing.T) {
		svc, m := newProfileService(t, false)
		m.writer.EXPECT().PullWorkRole(gomock.Any(), userID, roleID).Return(nil, repositories.ErrNotFound)
		m.reader.EXPECT().GetByUser(gomock.Any(), userID).Return(&models.Profile{User: userID}, nil)

		_, err := svc.RemoveWorkRole(context.Background(), userID, roleID)
		assert.ErrorIs(t, err, services.ErrWorkRoleNotFound)
	})

	t.Run("no profile", func(t *testing.T) {
		svc, m := newProfileService(t, false)
		m.writer.EXPECT().PullWorkRole(gomock.Any(), userID, roleID).Return(nil, repositories.ErrNotFound)
		m.reader.EXPECT().GetByUser(gomock.Any(), userID).Return(nil, repositories.ErrNotFound)

		_, err := svc.RemoveWorkRole(context.Background(), userID, roleID)
		assert.ErrorIs(t, err, services.ErrProfileNotFound)
	})
}
