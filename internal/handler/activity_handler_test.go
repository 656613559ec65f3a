package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mergington/activity-registry/internal/repository"
	"github.com/mergington/activity-registry/internal/service"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryActivityRepository(nil)
	svc := service.NewActivityService(repo)
	activityHandler := NewActivityHandler(svc)
	healthHandler := NewHealthHandler()

	engine := gin.New()
	engine.GET("/", activityHandler.Root)
	engine.GET("/health", healthHandler.Health)
	engine.GET("/activities", activityHandler.List)
	engine.POST("/activities/:name/signup", activityHandler.Signup)
	engine.DELETE("/activities/:name/unregister", activityHandler.Unregister)
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}
	return body
}

func signupURL(activity, email string) string {
	return fmt.Sprintf("/activities/%s/signup?email=%s",
		url.PathEscape(activity), url.QueryEscape(email))
}

func unregisterURL(activity, email string) string {
	return fmt.Sprintf("/activities/%s/unregister?email=%s",
		url.PathEscape(activity), url.QueryEscape(email))
}

func listActivities(t *testing.T, engine *gin.Engine) map[string]struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
} {
	t.Helper()
	w := doRequest(t, engine, http.MethodGet, "/activities")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /activities returned %d", w.Code)
	}
	var activities map[string]struct {
		Description     string   `json:"description"`
		Schedule        string   `json:"schedule"`
		MaxParticipants int      `json:"max_participants"`
		Participants    []string `json:"participants"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &activities); err != nil {
		t.Fatalf("failed to decode activities: %v", err)
	}
	return activities
}

func TestRoot_RedirectsToIndex(t *testing.T) {
	engine := newTestEngine()

	w := doRequest(t, engine, http.MethodGet, "/")
	if w.Code != http.StatusTemporaryRedirect {
		t.Errorf("expected status 307, got %d", w.Code)
	}
	if location := w.Header().Get("Location"); location != "/static/index.html" {
		t.Errorf("expected redirect to /static/index.html, got %q", location)
	}
}

func TestHealth(t *testing.T) {
	engine := newTestEngine()

	w := doRequest(t, engine, http.MethodGet, "/health")
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["status"] != "ok" {
		t.Errorf("expected status ok, got %v", body["status"])
	}
}

func TestListActivities(t *testing.T) {
	engine := newTestEngine()

	activities := listActivities(t, engine)
	if len(activities) != 9 {
		t.Errorf("expected 9 activities, got %d", len(activities))
	}
	for _, name := range []string{"Chess Club", "Programming Class", "Basketball Team"} {
		if _, ok := activities[name]; !ok {
			t.Errorf("expected %q in activities", name)
		}
	}

	chess := activities["Chess Club"]
	if chess.Description == "" || chess.Schedule == "" {
		t.Error("expected description and schedule to be populated")
	}
	if chess.MaxParticipants != 12 {
		t.Errorf("expected Chess Club max_participants 12, got %d", chess.MaxParticipants)
	}
	if len(chess.Participants) != 2 {
		t.Errorf("expected 2 Chess Club participants, got %d", len(chess.Participants))
	}
}

func TestListActivities_EmptyRosterIsArray(t *testing.T) {
	engine := newTestEngine()

	w := doRequest(t, engine, http.MethodGet, "/activities")
	var raw map[string]map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("failed to decode activities: %v", err)
	}
	if string(raw["Basketball Team"]["participants"]) != "[]" {
		t.Errorf("expected empty participants to marshal as [], got %s",
			raw["Basketball Team"]["participants"])
	}
}

func TestSignup_Success(t *testing.T) {
	engine := newTestEngine()

	w := doRequest(t, engine, http.MethodPost, signupURL("Basketball Team", "test@mergington.edu"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	want := "Signed up test@mergington.edu for Basketball Team"
	if body["message"] != want {
		t.Errorf("expected message %q, got %v", want, body["message"])
	}

	activities := listActivities(t, engine)
	found := false
	for _, p := range activities["Basketball Team"].Participants {
		if p == "test@mergington.edu" {
			found = true
		}
	}
	if !found {
		t.Error("expected test@mergington.edu in Basketball Team participants")
	}
}

func TestSignup_Duplicate(t *testing.T) {
	engine := newTestEngine()

	doRequest(t, engine, http.MethodPost, signupURL("Basketball Team", "test@mergington.edu"))
	w := doRequest(t, engine, http.MethodPost, signupURL("Basketball Team", "test@mergington.edu"))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["detail"] != "Student already signed up for this activity" {
		t.Errorf("unexpected detail: %v", body["detail"])
	}

	activities := listActivities(t, engine)
	if len(activities["Basketball Team"].Participants) != 1 {
		t.Errorf("expected 1 participant after duplicate signup, got %d",
			len(activities["Basketball Team"].Participants))
	}
}

func TestSignup_NonexistentActivity(t *testing.T) {
	engine := newTestEngine()

	w := doRequest(t, engine, http.MethodPost, signupURL("Nonexistent Club", "test@mergington.edu"))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["detail"] != "Activity not found" {
		t.Errorf("unexpected detail: %v", body["detail"])
	}
}

func TestSignup_MissingEmail(t *testing.T) {
	engine := newTestEngine()

	w := doRequest(t, engine, http.MethodPost, "/activities/Basketball%20Team/signup")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["detail"] != "Email is required" {
		t.Errorf("unexpected detail: %v", body["detail"])
	}
}

func TestSignup_WithExistingParticipants(t *testing.T) {
	engine := newTestEngine()

	w := doRequest(t, engine, http.MethodPost, signupURL("Chess Club", "new.student@mergington.edu"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	activities := listActivities(t, engine)
	participants := activities["Chess Club"].Participants
	if len(participants) != 3 {
		t.Errorf("expected 3 participants, got %d", len(participants))
	}
	if participants[2] != "new.student@mergington.edu" {
		t.Errorf("expected new signup appended at the end, got %v", participants)
	}
}

func TestSignup_URLEncodedActivityName(t *testing.T) {
	engine := newTestEngine()

	w := doRequest(t, engine, http.MethodPost,
		"/activities/Programming%20Class/signup?email=coder%40mergington.edu")
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUnregister_Success(t *testing.T) {
	engine := newTestEngine()

	w := doRequest(t, engine, http.MethodDelete, unregisterURL("Chess Club", "michael@mergington.edu"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	want := "Unregistered michael@mergington.edu from Chess Club"
	if body["message"] != want {
		t.Errorf("expected message %q, got %v", want, body["message"])
	}

	activities := listActivities(t, engine)
	participants := activities["Chess Club"].Participants
	if len(participants) != 1 || participants[0] != "daniel@mergington.edu" {
		t.Errorf("expected [daniel@mergington.edu], got %v", participants)
	}
}

func TestUnregister_NotRegistered(t *testing.T) {
	engine := newTestEngine()

	w := doRequest(t, engine, http.MethodDelete, unregisterURL("Basketball Team", "notregistered@mergington.edu"))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["detail"] != "Student is not registered for this activity" {
		t.Errorf("unexpected detail: %v", body["detail"])
	}
}

func TestUnregister_NonexistentActivity(t *testing.T) {
	engine := newTestEngine()

	w := doRequest(t, engine, http.MethodDelete, unregisterURL("Nonexistent Club", "test@mergington.edu"))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["detail"] != "Activity not found" {
		t.Errorf("unexpected detail: %v", body["detail"])
	}
}

func TestUnregister_AllParticipants(t *testing.T) {
	engine := newTestEngine()

	doRequest(t, engine, http.MethodDelete, unregisterURL("Chess Club", "michael@mergington.edu"))
	doRequest(t, engine, http.MethodDelete, unregisterURL("Chess Club", "daniel@mergington.edu"))

	activities := listActivities(t, engine)
	if len(activities["Chess Club"].Participants) != 0 {
		t.Errorf("expected empty roster, got %v", activities["Chess Club"].Participants)
	}
}

func TestSignupAndUnregisterWorkflow(t *testing.T) {
	engine := newTestEngine()
	email := "workflow.test@mergington.edu"

	w := doRequest(t, engine, http.MethodPost, signupURL("Swimming Club", email))
	if w.Code != http.StatusOK {
		t.Fatalf("signup failed: %d", w.Code)
	}

	activities := listActivities(t, engine)
	found := false
	for _, p := range activities["Swimming Club"].Participants {
		if p == email {
			found = true
		}
	}
	if !found {
		t.Fatal("expected email in Swimming Club after signup")
	}

	w = doRequest(t, engine, http.MethodDelete, unregisterURL("Swimming Club", email))
	if w.Code != http.StatusOK {
		t.Fatalf("unregister failed: %d", w.Code)
	}

	activities = listActivities(t, engine)
	for _, p := range activities["Swimming Club"].Participants {
		if p == email {
			t.Error("expected email removed from Swimming Club after unregister")
		}
	}
}

func TestSignup_MultipleActivities(t *testing.T) {
	engine := newTestEngine()
	email := "multisport@mergington.edu"
	joined := []string{"Basketball Team", "Swimming Club", "Drama Club"}

	for _, activity := range joined {
		w := doRequest(t, engine, http.MethodPost, signupURL(activity, email))
		if w.Code != http.StatusOK {
			t.Fatalf("signup for %q failed: %d", activity, w.Code)
		}
	}

	activities := listActivities(t, engine)
	for _, activity := range joined {
		found := false
		for _, p := range activities[activity].Participants {
			if p == email {
				found = true
			}
		}
		if !found {
			t.Errorf("expected %s in %s participants", email, activity)
		}
	}
}
