package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkurbatov/career-center/internal/entities"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type stubUserLookup struct {
	user *entities.User
	err  error
}

func (s *stubUserLookup) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	return s.user, s.err
}

func identityTestRouter(users userLookup) *gin.Engine {

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Identity(users))
	router.GET("/whoami", func(c *gin.Context) {
		if user := currentUser(c); user != nil {
			c.JSON(http.StatusOK, gin.H{"id": user.ID})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": nil})
	})
	return router
}

func identityRequest(router *gin.Engine, header string) *httptest.ResponseRecorder {

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set("X-User-ID", header)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func Test_Identity_WhenStoreFails_ShouldAbortWith500(t *testing.T) {

	router := identityTestRouter(&stubUserLookup{err: errors.New("store unavailable")})

	recorder := identityRequest(router, "1")

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"error": "internal server error"}`, recorder.Body.String())
}

func Test_Identity_WhenUserUnknown_ShouldProceedAnonymously(t *testing.T) {

	router := identityTestRouter(&stubUserLookup{})

	recorder := identityRequest(router, "42")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"id": null}`, recorder.Body.String())
}

func Test_Identity_WhenHeaderMalformed_ShouldProceedAnonymously(t *testing.T) {

	router := identityTestRouter(&stubUserLookup{err: errors.New("must not be called")})

	recorder := identityRequest(router, "not-a-number")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"id": null}`, recorder.Body.String())
}

func Test_Identity_WhenUserResolves_ShouldAttachIt(t *testing.T) {

	router := identityTestRouter(&stubUserLookup{user: &entities.User{ID: 7}})

	recorder := identityRequest(router, "7")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"id": 7}`, recorder.Body.String())
}
