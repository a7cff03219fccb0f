package controllers_test

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"meetingbot/controllers"
	"meetingbot/models"
	"meetingbot/routes"
	"meetingbot/services"
)

const meetingAnswer = "Sure!\n" +
	"Email: a@b.com\nSubject: Sync\nLocation: Office\nDate: 2024-01-05\nTime: 10:00\nDuration: 30 minutes"

type stubLLM struct {
	answer string
}

func (s *stubLLM) Complete(context.Context, []models.ConversationTurn) (string, error) {
	return s.answer, nil
}

type stubStore struct {
	cred *models.Credential
	err  error
}

func (s *stubStore) Load() (*models.Credential, error) { return s.cred, s.err }
func (s *stubStore) Save(*models.Credential) error     { return nil }

type stubCalendar struct {
	link string
}

func (s *stubCalendar) CreateEvent(context.Context, *models.EventRequest, *models.Credential) (string, error) {
	return s.link, nil
}

func newTestRouter(t *testing.T, llm services.LanguageModel, store services.CredentialStore, cal services.CalendarGateway) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	promptPath := filepath.Join(t.TempDir(), "system_message.txt")
	if err := os.WriteFile(promptPath, []byte("You are a scheduling assistant."), 0o644); err != nil {
		t.Fatal(err)
	}

	chat := services.NewChatService(
		llm,
		services.NewRegexMeetingExtractor(time.UTC),
		store,
		cal,
		services.NewPromptService(promptPath),
		log.New(io.Discard, "", 0),
	)

	login := controllers.NewGoogleLoginController(nil, false)
	return routes.SetupRouter(controllers.NewChatController(chat), login)
}

func postHistory(router *gin.Engine, history string) *httptest.ResponseRecorder {
	form := url.Values{"history": {history}}
	req := httptest.NewRequest(http.MethodPost, "/chat/message", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMessageMalformedHistory(t *testing.T) {
	router := newTestRouter(t, &stubLLM{answer: "hi"}, &stubStore{}, &stubCalendar{})

	w := postHistory(router, "{not json")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestMessageMissingHistory(t *testing.T) {
	router := newTestRouter(t, &stubLLM{answer: "hi"}, &stubStore{}, &stubCalendar{})

	req := httptest.NewRequest(http.MethodPost, "/chat/message", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestMessageReturnsAnswer(t *testing.T) {
	router := newTestRouter(t, &stubLLM{answer: "hello!"}, &stubStore{}, &stubCalendar{})

	w := postHistory(router, `[{"role":"user","content":"hi"}]`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Answer != "hello!" {
		t.Errorf("answer = %q, want %q", body.Answer, "hello!")
	}
}

func TestMessageJSONBody(t *testing.T) {
	router := newTestRouter(t, &stubLLM{answer: "hello!"}, &stubStore{}, &stubCalendar{})

	req := httptest.NewRequest(http.MethodPost, "/chat/message",
		strings.NewReader(`{"history":[{"role":"user","content":"hi"}]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestMessageMissingCredentialStillOK(t *testing.T) {
	store := &stubStore{err: &services.MissingCredentialError{Source: "credentials.json"}}
	router := newTestRouter(t, &stubLLM{answer: meetingAnswer}, store, &stubCalendar{})

	w := postHistory(router, `[{"role":"user","content":"book it"}]`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even without a credential", w.Code)
	}

	var body struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(body.Answer, "ALLOW_CALENDAR_OWNER_LOGIN") {
		t.Errorf("answer %q lacks authorization instructions", body.Answer)
	}
}

func TestMessageBookingAppendsLink(t *testing.T) {
	store := &stubStore{cred: &models.Credential{AccessToken: "tok"}}
	cal := &stubCalendar{link: "https://calendar.google.com/event?eid=abc"}
	router := newTestRouter(t, &stubLLM{answer: meetingAnswer}, store, cal)

	w := postHistory(router, `[{"role":"user","content":"book it"}]`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(body.Answer, cal.link) {
		t.Errorf("answer %q does not end with the event link", body.Answer)
	}
}
