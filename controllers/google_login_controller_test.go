package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"meetingbot/models"
	"meetingbot/services"
)

type recordingStore struct {
	loads int
	saves int
}

func (r *recordingStore) Load() (*models.Credential, error) {
	r.loads++
	return nil, &services.MissingCredentialError{Source: "test"}
}

func (r *recordingStore) Save(*models.Credential) error {
	r.saves++
	return nil
}

func testOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:8080/connect/google/authorized_redirect_uri",
		Scopes:       []string{"https://www.googleapis.com/auth/calendar.events"},
		Endpoint:     google.Endpoint,
	}
}

func loginRouter(login *GoogleLoginController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/connect/google")
	g.GET("/", login.View)
	g.GET("/execute", login.Execute)
	g.GET("/authorized_redirect_uri", login.Callback)
	return r
}

func TestLoginDisabledRedirectsToChat(t *testing.T) {
	store := &recordingStore{}
	auth := services.NewGoogleAuthService(testOAuthConfig(), store)
	router := loginRouter(NewGoogleLoginController(auth, false))

	for _, path := range []string{"/connect/google/execute", "/connect/google/authorized_redirect_uri?code=abc"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusFound {
				t.Fatalf("status = %d, want 302", w.Code)
			}
			if loc := w.Header().Get("Location"); loc != "/chat" {
				t.Errorf("Location = %q, want /chat", loc)
			}
		})
	}

	if store.loads != 0 || store.saves != 0 {
		t.Errorf("credential store touched (loads=%d saves=%d) with the flag off", store.loads, store.saves)
	}
}

func TestLoginExecuteRedirectsToConsentPage(t *testing.T) {
	auth := services.NewGoogleAuthService(testOAuthConfig(), &recordingStore{})
	router := loginRouter(NewGoogleLoginController(auth, true))

	req := httptest.NewRequest(http.MethodGet, "/connect/google/execute", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	loc := w.Header().Get("Location")
	if !strings.HasPrefix(loc, google.Endpoint.AuthURL) {
		t.Errorf("Location = %q, want Google consent URL", loc)
	}
	if !strings.Contains(loc, "access_type=offline") {
		t.Errorf("Location %q does not request offline access", loc)
	}
}

func TestLoginCallbackWithoutCode(t *testing.T) {
	auth := services.NewGoogleAuthService(testOAuthConfig(), &recordingStore{})
	router := loginRouter(NewGoogleLoginController(auth, true))

	req := httptest.NewRequest(http.MethodGet, "/connect/google/authorized_redirect_uri", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 for a callback without a code", w.Code)
	}
}

func TestLoginViewShowsState(t *testing.T) {
	auth := services.NewGoogleAuthService(testOAuthConfig(), &recordingStore{})

	router := loginRouter(NewGoogleLoginController(auth, true))
	req := httptest.NewRequest(http.MethodGet, "/connect/google/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "/connect/google/execute") {
		t.Errorf("view body %q lacks the login link", w.Body.String())
	}

	router = loginRouter(NewGoogleLoginController(auth, false))
	req = httptest.NewRequest(http.MethodGet, "/connect/google/", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if !strings.Contains(w.Body.String(), "disabled") {
		t.Errorf("view body %q does not say the flow is disabled", w.Body.String())
	}
}
