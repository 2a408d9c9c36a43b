package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/bigstack/internal/models"
	"github.com/sbilibin2017/bigstack/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLanguages(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: " , ,", want: nil},
		{in: "go", want: []string{"go"}},
		{in: "go, python ,,rust", want: []string{"go", "python", "rust"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, splitLanguages(tt.in))
		})
	}
}

func TestProfileRequest_ToUpdate(t *testing.T) {
	upd := ProfileRequest{
		Username:  " alice ",
		Website:   "",
		Languages: "go, sql",
		Instagram: "https://instagram.com/alice",
	}.toUpdate()

	require.NotNil(t, upd.Username)
	assert.Equal(t, "alice", *upd.Username)
	assert.Nil(t, upd.Website)
	assert.Nil(t, upd.YouTube)
	assert.Equal(t, []string{"go", "sql"}, upd.Languages)
	require.NotNil(t, upd.Instagram)
	assert.Equal(t, "https://instagram.com/alice", *upd.Instagram)
}

func TestGetProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	person := testPerson()

	tests := []struct {
		name          string
		mockSetup     func(m *MockProfileGetter)
		noPerson      bool
		expectedCode  int
		expectedError string
	}{
		{
			name: "found",
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().GetByUser(gomock.Any(), person.ID).
					Return(&models.Profile{User: person.ID, ProfileDetails: models.ProfileDetails{Username: "alice"}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "no profile",
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().GetByUser(gomock.Any(), person.ID).Return(nil, services.ErrProfileNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "profile not found",
		},
		{
			name:          "unauthenticated",
			mockSetup:     func(m *MockProfileGetter) {},
			noPerson:      true,
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProfileGetter(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/profile/", nil)
			if !tt.noPerson {
				req = withPerson(req, person)
			}
			rr := httptest.NewRecorder()

			NewGetProfileHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr))
				return
			}
			var profile models.Profile
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &profile))
			assert.Equal(t, "alice", profile.Username)
		})
	}
}

func TestSaveProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	person := testPerson()
	saved := &models.Profile{User: person.ID, ProfileDetails: models.ProfileDetails{Username: "alice"}}

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockProfileSaver)
		expectedCode  int
		expectedError string
	}{
		{
			name: "created",
			body: `{"username":"alice","languages":"go, rust"}`,
			mockSetup: func(m *MockProfileSaver) {
				username := "alice"
				m.EXPECT().Save(gomock.Any(), person.ID, models.ProfileUpdate{
					Username:  &username,
					Languages: []string{"go", "rust"},
				}).Return(saved, true, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "updated",
			body: `{"website":"https://alice.dev"}`,
			mockSetup: func(m *MockProfileSaver) {
				m.EXPECT().Save(gomock.Any(), person.ID, gomock.Any()).Return(saved, false, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "username taken",
			body: `{"username":"bob"}`,
			mockSetup: func(m *MockProfileSaver) {
				m.EXPECT().Save(gomock.Any(), person.ID, gomock.Any()).Return(nil, false, services.ErrUsernameTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "username already exists",
		},
		{
			name: "username required",
			body: `{"website":"https://alice.dev"}`,
			mockSetup: func(m *MockProfileSaver) {
				m.EXPECT().Save(gomock.Any(), person.ID, gomock.Any()).
					Return(nil, false, errors.Join(services.ErrInvalidInput, errors.New("username is required")))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:          "invalid json",
			body:          `{`,
			mockSetup:     func(m *MockProfileSaver) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProfileSaver(ctrl)
			tt.mockSetup(mockSvc)

			req := withPerson(httptest.NewRequest(http.MethodPost, "/api/profile/", bytes.NewBufferString(tt.body)), person)
			rr := httptest.NewRecorder()

			NewSaveProfileHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr))
			}
		})
	}
}

func TestDeleteProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	person := testPerson()

	tests := []struct {
		name         string
		svcErr       error
		expectedCode int
		expectedBody string
	}{
		{name: "deleted", expectedCode: http.StatusOK, expectedBody: `{"message":"delete was successful"}`},
		{name: "no profile", svcErr: services.ErrProfileNotFound, expectedCode: http.StatusNotFound, expectedBody: `{"error":"profile not found"}`},
		{name: "db error", svcErr: errors.New("db"), expectedCode: http.StatusInternalServerError, expectedBody: `{"error":"Internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProfileDeleter(ctrl)
			mockSvc.EXPECT().Delete(gomock.Any(), person.ID).Return(tt.svcErr)

			req := withPerson(httptest.NewRequest(http.MethodDelete, "/api/profile/", nil), person)
			rr := httptest.NewRecorder()

			NewDeleteProfileHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
