package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"appointment-booking-api/internal/handler"
	"appointment-booking-api/internal/store"
)

// Validation failures never reach storage, so these run without a database.
func validationRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler.New(store.New(nil), "test-secret").RegisterRoutes(r)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validAppointmentBody() map[string]any {
	return map[string]any{
		"customer_name":    "Jane Doe",
		"customer_email":   "jane@example.com",
		"customer_phone":   "555-0101",
		"appointment_date": "2026-09-15",
		"appointment_time": "14:30",
		"service":          "Consultation",
	}
}

func TestHealth(t *testing.T) {
	w := do(t, validationRouter(t), http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "OK" || body.Timestamp == "" {
		t.Errorf("body = %+v", body)
	}
}

func TestCreateAppointmentMissingField(t *testing.T) {
	r := validationRouter(t)
	for _, field := range []string{
		"customer_name", "customer_email", "customer_phone",
		"appointment_date", "appointment_time", "service",
	} {
		t.Run(field, func(t *testing.T) {
			body := validAppointmentBody()
			delete(body, field)
			w := do(t, r, http.MethodPost, "/api/appointments", body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestUpdateAppointmentMissingField(t *testing.T) {
	body := validAppointmentBody()
	delete(body, "service")
	w := do(t, validationRouter(t), http.MethodPut, "/api/appointments/1", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestStatusPatchInvalidStatus(t *testing.T) {
	r := validationRouter(t)
	for _, status := range []string{"", "archived", "Pending", "done"} {
		w := do(t, r, http.MethodPatch, "/api/appointments/1/status", map[string]any{"status": status})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status %q: code = %d, want 400", status, w.Code)
		}
	}
}

func TestNonNumericIDNotFound(t *testing.T) {
	r := validationRouter(t)
	w := do(t, r, http.MethodDelete, "/api/appointments/abc", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestRegisterMissingField(t *testing.T) {
	r := validationRouter(t)
	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing email", map[string]any{"first_name": "A", "last_name": "B", "phone": "1", "password": "pw"}},
		{"missing password", map[string]any{"first_name": "A", "last_name": "B", "email": "a@b.com", "phone": "1"}},
		{"missing first name", map[string]any{"last_name": "B", "email": "a@b.com", "phone": "1", "password": "pw"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/api/auth/register", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestLoginMissingCredentials(t *testing.T) {
	w := do(t, validationRouter(t), http.MethodPost, "/api/auth/login", map[string]any{"email": "a@b.com"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRefreshMissingToken(t *testing.T) {
	w := do(t, validationRouter(t), http.MethodPost, "/api/auth/refresh", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
