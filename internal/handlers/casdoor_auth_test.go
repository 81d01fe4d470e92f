package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casdoor/casdoor-go-sdk/casdoorsdk"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/SAP-F-2025/quiz-selection-service/internal/models"
	"github.com/SAP-F-2025/quiz-selection-service/internal/repositories"
	"github.com/SAP-F-2025/quiz-selection-service/internal/repositories/mocks"
)

type fakeTokenParser map[string]*casdoorsdk.Claims

func (f fakeTokenParser) ParseJwtToken(token string) (*casdoorsdk.Claims, error) {
	claims, ok := f[token]
	if !ok {
		return nil, errors.New("token signature is invalid")
	}
	return claims, nil
}

func claimsFor(id, userType string, isAdmin bool) *casdoorsdk.Claims {
	claims := &casdoorsdk.Claims{}
	claims.User.Id = id
	claims.User.Type = userType
	claims.User.IsAdmin = isAdmin
	claims.User.DisplayName = "Display " + id
	claims.User.Email = id + "@example.com"
	return claims
}

func authRouter(cam *CasdoorAuthMiddleware, middleware gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.GET("/whoami", middleware, func(c *gin.Context) {
		user, err := GetUserFromContext(c)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": user.ID, "role": user.Role})
	})
	router.GET("/admin", cam.AuthMiddleware(), cam.RequireRoleMiddleware(models.RoleTeacher), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func getWithToken(router http.Handler, path, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCasdoorAuthMiddleware_AuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	users.EXPECT().GetByID(gomock.Any(), "known").Return(&models.User{ID: "known", Role: models.RoleTeacher}, nil).AnyTimes()
	users.EXPECT().GetByID(gomock.Any(), gomock.Not("known")).Return(nil, repositories.NotFound("user", "x")).AnyTimes()

	parser := fakeTokenParser{
		"known-token":   claimsFor("known", "normal-user", false),
		"student-token": claimsFor("s-1", "learner", false),
		"admin-token":   claimsFor("a-1", "normal-user", true),
		"anon-token":    claimsFor("", "", false),
	}
	cam := newCasdoorAuthMiddleware(parser, users)
	router := authRouter(cam, cam.AuthMiddleware())

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{name: "directory user", header: "Bearer known-token", wantCode: http.StatusOK, wantBody: `{"id":"known","role":"teacher"}`},
		{name: "claims fallback", header: "Bearer student-token", wantCode: http.StatusOK, wantBody: `{"id":"s-1","role":"student"}`},
		{name: "admin flag wins", header: "bearer admin-token", wantCode: http.StatusOK, wantBody: `{"id":"a-1","role":"admin"}`},
		{name: "missing header", wantCode: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantCode: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer forged", wantCode: http.StatusUnauthorized},
		{name: "token without subject", header: "Bearer anon-token", wantCode: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := getWithToken(router, "/whoami", tt.header)
			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestCasdoorAuthMiddleware_OptionalAuthMiddleware(t *testing.T) {
	cam := newCasdoorAuthMiddleware(fakeTokenParser{"t": claimsFor("s-1", "student", false)}, nil)
	router := authRouter(cam, cam.OptionalAuthMiddleware())

	assert.JSONEq(t, `{"id":"s-1","role":"student"}`, getWithToken(router, "/whoami", "Bearer t").Body.String())
	assert.JSONEq(t, `{"anonymous":true}`, getWithToken(router, "/whoami", "Bearer forged").Body.String())
	assert.JSONEq(t, `{"anonymous":true}`, getWithToken(router, "/whoami", "").Body.String())
}

func TestCasdoorAuthMiddleware_RequireRole(t *testing.T) {
	cam := newCasdoorAuthMiddleware(fakeTokenParser{
		"teacher": claimsFor("t-1", "instructor", false),
		"student": claimsFor("s-1", "student", false),
		"admin":   claimsFor("a-1", "administrator", false),
	}, nil)
	router := authRouter(cam, cam.AuthMiddleware())

	assert.Equal(t, http.StatusNoContent, getWithToken(router, "/admin", "Bearer teacher").Code)
	assert.Equal(t, http.StatusNoContent, getWithToken(router, "/admin", "Bearer admin").Code)
	assert.Equal(t, http.StatusForbidden, getWithToken(router, "/admin", "Bearer student").Code)
}

func TestMapCasdoorRoleToUserRole(t *testing.T) {
	tests := map[string]models.UserRole{
		"Admin":     models.RoleAdmin,
		"educator":  models.RoleTeacher,
		"TEACHER":   models.RoleTeacher,
		"learner":   models.RoleStudent,
		"":          models.RoleStudent,
		"something": models.RoleStudent,
	}
	for input, want := range tests {
		assert.Equal(t, want, mapCasdoorRoleToUserRole(input), input)
	}
}
