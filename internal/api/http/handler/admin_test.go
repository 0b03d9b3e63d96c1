package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sid-4215/marketbloom-backend/config"
	"github.com/Sid-4215/marketbloom-backend/internal/model"
	"github.com/Sid-4215/marketbloom-backend/internal/repository"
	"github.com/Sid-4215/marketbloom-backend/internal/service/submission"
)

const testAdminSecret = "test-admin-secret"

func newAdminApp(repo *mockRepo) *fiber.App {
	svc := submission.New(repo, noopNotifier{}, time.Second, time.Second)
	h := NewAdminHandler(config.AuthConfig{AdminSecret: testAdminSecret}, svc)

	app := fiber.New()
	app.Post("/api/admin/login", h.Login)
	app.Get("/api/submissions", h.List)
	app.Delete("/api/submissions/:id", h.Delete)
	return app
}

func TestAdminLogin(t *testing.T) {
	app := newAdminApp(&mockRepo{})

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantToken  string
	}{
		{"missing password", `{}`, http.StatusBadRequest, ""},
		{"wrong password", `{"password":"nope"}`, http.StatusUnauthorized, ""},
		{"correct password", `{"password":"` + testAdminSecret + `"}`, http.StatusOK, testAdminSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := postJSON(t, app, "/api/admin/login", tt.body)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantToken != "" {
				assert.Equal(t, true, body["success"])
				assert.Equal(t, tt.wantToken, body["token"])
			} else {
				assert.Equal(t, false, body["success"])
			}
		})
	}
}

func TestAdminList_NewestFirst(t *testing.T) {
	t1 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	repo := &mockRepo{
		listFunc: func(ctx context.Context) ([]*model.Submission, error) {
			// The store already orders by timestamp descending.
			return []*model.Submission{
				{ID: 2, Name: "Later", Timestamp: t2, Status: model.StatusNew},
				{ID: 1, Name: "Earlier", Timestamp: t1, Status: model.StatusNew},
			}, nil
		},
	}
	app := newAdminApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/submissions", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool                `json:"success"`
		Data    []*model.Submission `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	require.Len(t, body.Data, 2)
	assert.Equal(t, "Later", body.Data[0].Name)
	assert.Equal(t, "Earlier", body.Data[1].Name)
}

func TestAdminList_EmptyIsArrayNotNull(t *testing.T) {
	app := newAdminApp(&mockRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/submissions", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "[]", string(body["data"]))
}

func TestAdminList_StoreFailure(t *testing.T) {
	repo := &mockRepo{
		listFunc: func(ctx context.Context) ([]*model.Submission, error) {
			return nil, errors.New("boom")
		},
	}
	app := newAdminApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/submissions", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestAdminDelete(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		deleteErr  error
		wantStatus int
	}{
		{"existing id", "/api/submissions/5", nil, http.StatusOK},
		{"absent id", "/api/submissions/5", repository.ErrNotFound, http.StatusNotFound},
		{"store failure", "/api/submissions/5", errors.New("boom"), http.StatusInternalServerError},
		{"non-numeric id", "/api/submissions/abc", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID int64
			repo := &mockRepo{
				deleteFunc: func(ctx context.Context, id int64) error {
					gotID = id
					return tt.deleteErr
				},
			}
			app := newAdminApp(repo)

			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantStatus != http.StatusBadRequest {
				assert.Equal(t, int64(5), gotID)
			}
		})
	}
}
