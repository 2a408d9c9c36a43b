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
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestListQuestionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockQuestionLister(ctrl)
	mockSvc.EXPECT().List(gomock.Any()).Return([]models.Question{{Title: "newest"}, {Title: "older"}}, nil)

	rr := httptest.NewRecorder()
	NewListQuestionsHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/api/questions/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var questions []models.Question
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &questions))
	require.Len(t, questions, 2)
	assert.Equal(t, "newest", questions[0].Title)
}

func TestListOwnQuestionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	person := testPerson()

	t.Run("own questions", func(t *testing.T) {
		mockSvc := NewMockOwnQuestionLister(ctrl)
		mockSvc.EXPECT().ListByUser(gomock.Any(), person.ID).Return([]models.Question{}, nil)

		rr := httptest.NewRecorder()
		NewListOwnQuestionsHandler(mockSvc)(rr, withPerson(httptest.NewRequest(http.MethodGet, "/api/questions/mine", nil), person))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("unauthenticated", func(t *testing.T) {
		mockSvc := NewMockOwnQuestionLister(ctrl)

		rr := httptest.NewRecorder()
		NewListOwnQuestionsHandler(mockSvc)(rr, httptest.NewRequest(http.MethodGet, "/api/questions/mine", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestGetQuestionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := primitive.NewObjectID()

	tests := []struct {
		name         string
		param        string
		mockSetup    func(m *MockQuestionGetter)
		expectedCode int
	}{
		{
			name:  "found",
			param: id.Hex(),
			mockSetup: func(m *MockQuestionGetter) {
				m.EXPECT().Get(gomock.Any(), id).Return(&models.Question{ID: id}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "missing",
			param: id.Hex(),
			mockSetup: func(m *MockQuestionGetter) {
				m.EXPECT().Get(gomock.Any(), id).Return(nil, services.ErrQuestionNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid id",
			param:        "123",
			mockSetup:    func(m *MockQuestionGetter) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockQuestionGetter(ctrl)
			tt.mockSetup(mockSvc)

			req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/questions/"+tt.param, nil), "id", tt.param)
			rr := httptest.NewRecorder()

			NewGetQuestionHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestCreateQuestionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	person := testPerson()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockQuestionCreator)
		expectedCode int
	}{
		{
			name: "created",
			body: `{"title":"How?","body":"Like this"}`,
			mockSetup: func(m *MockQuestionCreator) {
				m.EXPECT().Create(gomock.Any(), person, "How?", "Like this").
					Return(&models.Question{ID: primitive.NewObjectID(), User: person.ID, Title: "How?"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "missing title",
			body: `{"body":"Like this"}`,
			mockSetup: func(m *MockQuestionCreator) {
				m.EXPECT().Create(gomock.Any(), person, "", "Like this").
					Return(nil, errors.Join(services.ErrInvalidInput, errors.New("title is required")))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid json",
			body:         `nope`,
			mockSetup:    func(m *MockQuestionCreator) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockQuestionCreator(ctrl)
			tt.mockSetup(mockSvc)

			req := withPerson(httptest.NewRequest(http.MethodPost, "/api/questions/", bytes.NewBufferString(tt.body)), person)
			rr := httptest.NewRecorder()

			NewCreateQuestionHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUpdateQuestionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	person := testPerson()
	id := primitive.NewObjectID()

	t.Run("owner updates title", func(t *testing.T) {
		mockSvc := NewMockQuestionUpdater(ctrl)
		title := "Better title"
		mockSvc.EXPECT().Update(gomock.Any(), person.ID, id, models.QuestionUpdate{Title: &title}).
			Return(&models.Question{ID: id, Title: title}, nil)

		req := httptest.NewRequest(http.MethodPut, "/api/questions/"+id.Hex(), bytes.NewBufferString(`{"title":"Better title"}`))
		req = withURLParam(withPerson(req, person), "id", id.Hex())
		rr := httptest.NewRecorder()

		NewUpdateQuestionHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("someone else's question", func(t *testing.T) {
		mockSvc := NewMockQuestionUpdater(ctrl)
		mockSvc.EXPECT().Update(gomock.Any(), person.ID, id, gomock.Any()).Return(nil, services.ErrQuestionNotFound)

		req := httptest.NewRequest(http.MethodPut, "/api/questions/"+id.Hex(), bytes.NewBufferString(`{"body":"x"}`))
		req = withURLParam(withPerson(req, person), "id", id.Hex())
		rr := httptest.NewRecorder()

		NewUpdateQuestionHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "question not found", decodeError(t, rr))
	})
}

func TestDeleteQuestionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	person := testPerson()
	id := primitive.NewObjectID()

	tests := []struct {
		name         string
		svcErr       error
		expectedCode int
		expectedBody string
	}{
		{name: "deleted", expectedCode: http.StatusOK, expectedBody: `{"message":"question deleted"}`},
		{name: "not owned", svcErr: services.ErrQuestionNotFound, expectedCode: http.StatusNotFound, expectedBody: `{"error":"question not found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockQuestionDeleter(ctrl)
			mockSvc.EXPECT().Delete(gomock.Any(), person.ID, id).Return(tt.svcErr)

			req := httptest.NewRequest(http.MethodDelete, "/api/questions/"+id.Hex(), nil)
			req = withURLParam(withPerson(req, person), "id", id.Hex())
			rr := httptest.NewRecorder()

			NewDeleteQuestionHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
