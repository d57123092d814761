package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statsync/statsync/internal/models"
	"github.com/statsync/statsync/internal/service"
)

// stubAuthService returns canned results; handler tests only care about
// transport behavior.
type stubAuthService struct {
	loginToken string
	loginErr   error
}

func (s *stubAuthService) SignupAthlete(signup service.AthleteSignup) (*models.Athlete, error) {
	return &models.Athlete{ID: 1, Username: signup.Username}, nil
}

func (s *stubAuthService) SignupTrainer(signup service.TrainerSignup) (*models.Trainer, error) {
	return &models.Trainer{ID: 1, Username: signup.Username}, nil
}

func (s *stubAuthService) Login(role models.Role, identifier, plaintext string) (string, time.Time, error) {
	if s.loginErr != nil {
		return "", time.Time{}, s.loginErr
	}
	return s.loginToken, time.Now().Add(30 * time.Minute), nil
}

func newAuthTestRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	h := NewAuthHandler(svc, 30*time.Minute, log)

	router := gin.New()
	router.POST("/login/athlete", h.Login(models.RoleAthlete))
	router.POST("/login/trainer", h.Login(models.RoleTrainer))
	router.POST("/logout/athlete", h.Logout(models.RoleAthlete))
	return router
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func findCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestLoginSetsRoleCookieAndRedirects(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{loginToken: "signed-token"})

	w := postForm(router, "/login/athlete", url.Values{
		"username": {"marta"},
		"password": {"Sw1m#fast"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/athlete/home", w.Header().Get("Location"))

	cookie := findCookie(t, w, "athlete_access_token")
	assert.Equal(t, "signed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	// Transport expiry mirrors the signed exp claim.
	assert.Equal(t, int(30*time.Minute/time.Second), cookie.MaxAge)
}

func TestLoginTrainerUsesTrainerSlot(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{loginToken: "signed-token"})

	w := postForm(router, "/login/trainer", url.Values{
		"email":    {"jonas@example.com"},
		"password": {"Tr@in3rpw"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/trainer/dashboard", w.Header().Get("Location"))
	findCookie(t, w, "trainer_access_token")
}

func TestLoginInvalidCredentials(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{loginErr: service.ErrInvalidCredentials})

	w := postForm(router, "/login/athlete", url.Values{
		"username": {"marta"},
		"password": {"wrong"},
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestLoginRequiresIdentifier(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{loginToken: "signed-token"})

	w := postForm(router, "/login/athlete", url.Values{"password": {"Sw1m#fast"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/logout/athlete", nil)
	req.AddCookie(&http.Cookie{Name: "athlete_access_token", Value: "signed-token"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	cookie := findCookie(t, w, "athlete_access_token")
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}
