package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/fitclub/gym-registration-api/internal/config"
	"github.com/fitclub/gym-registration-api/internal/models"
	"github.com/fitclub/gym-registration-api/internal/service"
	"github.com/go-chi/chi/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Registration{}); err != nil {
		t.Fatalf("failed to auto migrate: %v", err)
	}

	cfg := &config.Config{Port: "3000", EnableCORS: true, CORSAllowedOrigins: "*"}
	handler := NewRegistrationHandler(service.NewRegistrationService(db), nil)

	r := chi.NewRouter()
	RegisterRoutes(r, cfg, handler)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

const registerBody = `{"name":"Test User","email":"testuser@example.com","phone":"1234567890","age":25,"health":"None","membership":"5000 for 6 months","trainer":"Trainer A"}`

func TestRoutesRegister(t *testing.T) {
	r := newTestRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/register", registerBody)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "Registration successful!" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestRoutesRegisterMissingFields(t *testing.T) {
	r := newTestRouter(t)

	rr := doJSON(t, r, http.MethodPost, "/register", `{"name":"Only Name"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "Please fill in all required fields." {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestRoutesRegisterDuplicate(t *testing.T) {
	r := newTestRouter(t)

	if rr := doJSON(t, r, http.MethodPost, "/register", registerBody); rr.Code != http.StatusOK {
		t.Fatalf("first register: expected 200, got %d", rr.Code)
	}
	rr := doJSON(t, r, http.MethodPost, "/register", registerBody)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestRoutesListUsers(t *testing.T) {
	r := newTestRouter(t)

	if rr := doJSON(t, r, http.MethodPost, "/register", registerBody); rr.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d", rr.Code)
	}

	rr := doJSON(t, r, http.MethodGet, "/users", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	// The body is a bare JSON array of records
	var users []models.Registration
	if err := json.Unmarshal(rr.Body.Bytes(), &users); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	if users[0].Email != "testuser@example.com" {
		t.Errorf("unexpected email: %q", users[0].Email)
	}
	if users[0].ID == 0 {
		t.Error("expected id in response")
	}
}

func TestRoutesGetUser(t *testing.T) {
	r := newTestRouter(t)

	if rr := doJSON(t, r, http.MethodPost, "/register", registerBody); rr.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d", rr.Code)
	}

	rr := doJSON(t, r, http.MethodGet, "/user/TESTUSER@example.com", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var user models.Registration
	if err := json.Unmarshal(rr.Body.Bytes(), &user); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if user.Name != "Test User" {
		t.Errorf("unexpected name: %q", user.Name)
	}

	rr = doJSON(t, r, http.MethodGet, "/user/nobody@example.com", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "User not found" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestRoutesUpdateUser(t *testing.T) {
	r := newTestRouter(t)

	if rr := doJSON(t, r, http.MethodPost, "/register", registerBody); rr.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d", rr.Code)
	}
	rr := doJSON(t, r, http.MethodGet, "/user/testuser@example.com", "")
	var user models.Registration
	if err := json.Unmarshal(rr.Body.Bytes(), &user); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	rr = doJSON(t, r, http.MethodPut, "/update/"+itoa(user.ID), `{"name":"Updated User","age":26}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Message string              `json:"message"`
		User    models.Registration `json:"user"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "User updated successfully" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	if resp.User.Name != "Updated User" || resp.User.Age != 26 {
		t.Errorf("update not reflected: %+v", resp.User)
	}
	if resp.User.Email != "testuser@example.com" {
		t.Errorf("email changed on update: %q", resp.User.Email)
	}

	// Malformed id keeps the original 500 behavior
	rr = doJSON(t, r, http.MethodPut, "/update/not-an-id", `{"name":"X"}`)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for malformed id, got %d", rr.Code)
	}
}

func TestRoutesDeleteUser(t *testing.T) {
	r := newTestRouter(t)

	if rr := doJSON(t, r, http.MethodPost, "/register", registerBody); rr.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d", rr.Code)
	}
	rr := doJSON(t, r, http.MethodGet, "/user/testuser@example.com", "")
	var user models.Registration
	if err := json.Unmarshal(rr.Body.Bytes(), &user); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	rr = doJSON(t, r, http.MethodDelete, "/delete/"+itoa(user.ID), "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "User deleted successfully" {
		t.Errorf("unexpected message: %q", resp.Message)
	}

	rr = doJSON(t, r, http.MethodDelete, "/delete/"+itoa(user.ID), "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on repeat delete, got %d", rr.Code)
	}
}

func TestRoutesHealth(t *testing.T) {
	r := newTestRouter(t)

	rr := doJSON(t, r, http.MethodGet, "/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Body.String() != "OK" {
		t.Errorf("unexpected body: %q", rr.Body.String())
	}
}

func TestRoutesServeFrontend(t *testing.T) {
	r := newTestRouter(t)

	rr := doJSON(t, r, http.MethodGet, "/index.html", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "registrationForm") {
		t.Error("expected registration page markup")
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
