package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pitchside/cricket-slot-booking-backend/api"
	mock_api "github.com/pitchside/cricket-slot-booking-backend/api/mocks"
	"github.com/pitchside/cricket-slot-booking-backend/auth"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *gomock.Controller, *mock_api.MockAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockAuthService(ctrl)
	handler := api.NewAuthHandler(mockService)
	handler.Register(router.Group("/api/auth"))

	return router, ctrl, mockService
}

func TestSignUp(t *testing.T) {
	body := `{"username":"alice","email":"alice@example.com","password":"hunter2hunter2"}`

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupAuthRouter(t)
		defer ctrl.Finish()

		created := auth.User{ID: 1, Username: "alice", Email: "alice@example.com"}
		createdJson, _ := json.Marshal(created)

		mockService.EXPECT().Register(gomock.Any(), "alice", "alice@example.com", "hunter2hunter2").Return(created, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/register", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)
		assert.JSONEq(t, string(createdJson), w.Body.String())
	})

	t.Run("bad json", func(t *testing.T) {
		router, ctrl, _ := setupAuthRouter(t)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/register", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse JSON body"}`, w.Body.String())
	})

	t.Run("short password rejected", func(t *testing.T) {
		router, ctrl, mockService := setupAuthRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/register", bytes.NewBufferString(`{"username":"alice","email":"alice@example.com","password":"short"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("username taken", func(t *testing.T) {
		router, ctrl, mockService := setupAuthRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Register(gomock.Any(), "alice", "alice@example.com", "hunter2hunter2").
			Return(auth.User{}, auth.ErrUsernameTaken).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/register", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
		assert.JSONEq(t, `{"error":"username already exists"}`, w.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		router, ctrl, mockService := setupAuthRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Register(gomock.Any(), "alice", "alice@example.com", "hunter2hunter2").
			Return(auth.User{}, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/register", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to create account"}`, w.Body.String())
	})
}

func TestLoginHandler(t *testing.T) {
	body := `{"username":"alice","password":"hunter2hunter2"}`

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupAuthRouter(t)
		defer ctrl.Finish()

		user := auth.User{ID: 1, Username: "alice"}
		userJson, _ := json.Marshal(user)

		mockService.EXPECT().Login(gomock.Any(), "alice", "hunter2hunter2").Return("signed-token", user, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"token":"signed-token","user":`+string(userJson)+`}`, w.Body.String())
	})

	t.Run("bad json", func(t *testing.T) {
		router, ctrl, _ := setupAuthRouter(t)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/login", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse JSON body"}`, w.Body.String())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		router, ctrl, mockService := setupAuthRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Login(gomock.Any(), "alice", "hunter2hunter2").
			Return("", auth.User{}, auth.ErrInvalidCredentials).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"invalid username or password"}`, w.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		router, ctrl, mockService := setupAuthRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Login(gomock.Any(), "alice", "hunter2hunter2").
			Return("", auth.User{}, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to log in"}`, w.Body.String())
	})
}

func TestLogoutHandler(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupAuthRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Logout(gomock.Any(), "signed-token").Return(nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer signed-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"logged out"}`, w.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		router, ctrl, mockService := setupAuthRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Logout(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/logout", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"missing authentication"}`, w.Body.String())
	})

	t.Run("invalid token", func(t *testing.T) {
		router, ctrl, mockService := setupAuthRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Logout(gomock.Any(), "bad-token").Return(auth.ErrInvalidToken).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"invalid authentication"}`, w.Body.String())
	})
}

func TestAuthRequired(t *testing.T) {

	protect := func(t *testing.T) (*gin.Engine, *gomock.Controller, *mock_api.MockAuthService) {
		t.Helper()
		ctrl := gomock.NewController(t)

		gin.SetMode(gin.TestMode)
		router := gin.Default()
		mockService := mock_api.NewMockAuthService(ctrl)
		rg := router.Group("/api/v1")
		rg.Use(api.AuthRequired(mockService))
		rg.GET("/me", func(c *gin.Context) {
			user := c.MustGet("user").(auth.User)
			c.JSON(http.StatusOK, user)
		})

		return router, ctrl, mockService
	}

	t.Run("resolves user", func(t *testing.T) {
		router, ctrl, mockService := protect(t)
		defer ctrl.Finish()

		user := auth.User{ID: 7, Username: "alice"}
		userJson, _ := json.Marshal(user)

		mockService.EXPECT().Authenticate(gomock.Any(), "signed-token").Return(user, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/me", nil)
		req.Header.Set("Authorization", "Bearer signed-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(userJson), w.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		router, ctrl, mockService := protect(t)
		defer ctrl.Finish()

		mockService.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/me", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"missing authentication"}`, w.Body.String())
	})

	t.Run("invalid token", func(t *testing.T) {
		router, ctrl, mockService := protect(t)
		defer ctrl.Finish()

		mockService.EXPECT().Authenticate(gomock.Any(), "bad-token").Return(auth.User{}, auth.ErrInvalidToken).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/me", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"invalid authentication"}`, w.Body.String())
	})
}
