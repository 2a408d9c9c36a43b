package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/bigstack/internal/logger"
	"github.com/sbilibin2017/bigstack/internal/middlewares"
	"github.com/sbilibin2017/bigstack/internal/models"
	"github.com/sbilibin2017/bigstack/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func withPerson(r *http.Request, person *models.Person) *http.Request {
	return r.WithContext(middlewares.SetPersonToContext(r.Context(), person))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}

func testPerson() *models.Person {
	return &models.Person{ID: primitive.NewObjectID(), Name: "Alice", Email: "alice@example.com"}
}

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "validation",
			err:          fmt.Errorf("%w: title is required", services.ErrInvalidInput),
			expectedCode: http.StatusBadRequest,
			expectedBody: "invalid input: title is required",
		},
		{name: "unknown person", err: services.ErrPersonDoesNotExist, expectedCode: http.StatusUnauthorized, expectedBody: "Invalid email or password"},
		{name: "wrong password", err: services.ErrInvalidCredentials, expectedCode: http.StatusUnauthorized, expectedBody: "Invalid email or password"},
		{name: "profile not found", err: services.ErrProfileNotFound, expectedCode: http.StatusNotFound, expectedBody: "profile not found"},
		{name: "work role not found", err: services.ErrWorkRoleNotFound, expectedCode: http.StatusNotFound, expectedBody: "work role not found"},
		{name: "question not found", err: services.ErrQuestionNotFound, expectedCode: http.StatusNotFound, expectedBody: "question not found"},
		{name: "email exists", err: services.ErrPersonAlreadyExists, expectedCode: http.StatusConflict, expectedBody: "email already exists"},
		{name: "username taken", err: services.ErrUsernameTaken, expectedCode: http.StatusConflict, expectedBody: "username already exists"},
		{name: "already upvoted", err: services.ErrAlreadyUpvoted, expectedCode: http.StatusConflict, expectedBody: "already upvoted"},
		{name: "unexpected", err: errors.New("boom"), expectedCode: http.StatusInternalServerError, expectedBody: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()
			writeServiceError(rr, req, tt.err)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedBody, decodeError(t, rr))
		})
	}
}

func TestParseObjectID(t *testing.T) {
	id := primitive.NewObjectID()

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", id.Hex())
	rr := httptest.NewRecorder()
	got, ok := parseObjectID(rr, req, "id")
	assert.True(t, ok)
	assert.Equal(t, id, got)

	req = withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "nope")
	rr = httptest.NewRecorder()
	_, ok = parseObjectID(rr, req, "id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid id", decodeError(t, rr))
}

func TestCurrentPerson_Missing(t *testing.T) {
	rr := httptest.NewRecorder()
	_, ok := currentPerson(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Unauthorized", decodeError(t, rr))
}

func TestWriteServiceError_LogsRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	originalLog := logger.Log
	logger.Log = zap.New(core).Sugar()
	defer func() { logger.Log = originalLog }()

	handler := middlewares.LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeServiceError(w, r, errors.New("mongo down"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/questions/", nil)
	req.Header.Set("X-Request-ID", "req-500")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	entries := logs.FilterMessage("internal server error").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-500", fields["request_id"])
	assert.Equal(t, "/api/questions/", fields["uri"])
	assert.Equal(t, "mongo down", fields["err"])
}
