package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stock-tracker/internal/dto"
	"stock-tracker/internal/model"
	"stock-tracker/internal/service"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserService struct {
	service.UserService

	createFn func(ctx context.Context, req dto.CreateUserRequest) (*model.User, error)
	getFn    func(ctx context.Context, id uint) (*model.User, error)
}

func (s *stubUserService) Create(ctx context.Context, req dto.CreateUserRequest) (*model.User, error) {
	return s.createFn(ctx, req)
}

func (s *stubUserService) Get(ctx context.Context, id uint) (*model.User, error) {
	return s.getFn(ctx, id)
}

func newTestHandler(users *stubUserService) *HttpAPIHandler {
	e := echo.New()
	h := NewHttpAPIHandler(context.Background(), e, goValidator.New(), &service.Service{
		UserService: users,
	})
	h.SetupRoutes()
	return h
}

func doRequest(h *HttpAPIHandler, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	h.echo.ServeHTTP(rec, req)
	return rec
}

func TestCreateUser(t *testing.T) {
	users := &stubUserService{
		createFn: func(ctx context.Context, req dto.CreateUserRequest) (*model.User, error) {
			return &model.User{ID: 1, Username: req.Username, Email: req.Email}, nil
		},
	}
	h := newTestHandler(users)

	rec := doRequest(h, http.MethodPost, "/api/v1/users",
		`{"username":"john_doe","email":"john@example.com","password":"password123","first_name":"John","last_name":"Doe"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.BaseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, "user created successfully", resp.Message)
}

func TestCreateUser_ValidationFailure(t *testing.T) {
	h := newTestHandler(&stubUserService{})

	// Missing required fields never reaches the service.
	rec := doRequest(h, http.MethodPost, "/api/v1/users", `{"username":"john_doe"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateUser_RuleErrorMapsTo400(t *testing.T) {
	users := &stubUserService{
		createFn: func(ctx context.Context, req dto.CreateUserRequest) (*model.User, error) {
			return nil, service.NewRuleError("username must be alphanumeric")
		},
	}
	h := newTestHandler(users)

	rec := doRequest(h, http.MethodPost, "/api/v1/users",
		`{"username":"bad name","email":"a@b.com","password":"password123","first_name":"A","last_name":"B"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.BaseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "username must be alphanumeric", resp.Message)
}

func TestGetUser_NotFoundMapsTo404(t *testing.T) {
	users := &stubUserService{
		getFn: func(ctx context.Context, id uint) (*model.User, error) {
			return nil, service.NewNotFoundError("user", id)
		},
	}
	h := newTestHandler(users)

	rec := doRequest(h, http.MethodGet, "/api/v1/users/42", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetUser_InvalidID(t *testing.T) {
	h := newTestHandler(&stubUserService{})

	rec := doRequest(h, http.MethodGet, "/api/v1/users/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	h := newTestHandler(&stubUserService{})

	rec := doRequest(h, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
