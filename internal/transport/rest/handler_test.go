package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lexsched/config"
	"lexsched/internal/repository/inmem"
	"lexsched/internal/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	services := service.NewServices(service.Deps{
		Repos:  inmem.NewRepositories(),
		Logger: zap.NewNop(),
	})
	handler := NewHandler(services, zap.NewNop(), &config.Config{Version: "test"})

	router := gin.New()
	handler.InitRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func appointmentPayload(day, clock string) map[string]interface{} {
	return map[string]interface{}{
		"title": "Court hearing",
		"date":  day,
		"time":  clock,
	}
}

func createAppointment(t *testing.T, router *gin.Engine, day, clock string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/appointments", appointmentPayload(day, clock))
	if w.Code != http.StatusCreated {
		t.Fatalf("create appointment: status %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	decodeBody(t, w, &resp)
	if resp.Data.ID == "" {
		t.Fatalf("create appointment: no id in %s", w.Body.String())
	}
	return resp.Data.ID
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}
	decodeBody(t, w, &resp)
	if resp.Status != "ok" || resp.Version != "test" {
		t.Errorf("body = %+v", resp)
	}
}

func TestCreateAppointmentEndpoint(t *testing.T) {
	router := newTestRouter(t)

	id := createAppointment(t, router, "2024-05-01", "14:30")

	w := doJSON(t, router, http.MethodGet, "/api/v1/appointments/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: status %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data struct {
			Title    string `json:"title"`
			DateTime string `json:"dateTime"`
			FormData struct {
				Date string `json:"date"`
				Time string `json:"time"`
			} `json:"formData"`
		} `json:"data"`
	}
	decodeBody(t, w, &resp)
	if resp.Data.Title != "Court hearing" {
		t.Errorf("title = %q", resp.Data.Title)
	}
	if resp.Data.FormData.Date != "2024-05-01" || resp.Data.FormData.Time != "14:30" {
		t.Errorf("formData = %+v", resp.Data.FormData)
	}
}

func TestCreateAppointmentValidationErrors(t *testing.T) {
	router := newTestRouter(t)

	payload := appointmentPayload("2024-05-01", "25:00")
	payload["title"] = "x"

	w := doJSON(t, router, http.MethodPost, "/api/v1/appointments", payload)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, w, &resp)
	if _, ok := resp.Fields["title"]; !ok {
		t.Errorf("fields = %v, want title flagged", resp.Fields)
	}
	if _, ok := resp.Fields["time"]; !ok {
		t.Errorf("fields = %v, want time flagged", resp.Fields)
	}
}

func TestCreateAppointmentMalformedBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestGetAppointmentNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/appointments/no-such-id", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestListAppointmentsUnknownScope(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/appointments?scope=someday", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestListAppointmentsByDay(t *testing.T) {
	router := newTestRouter(t)

	createAppointment(t, router, "2024-05-01", "16:00")
	createAppointment(t, router, "2024-05-01", "09:00")
	createAppointment(t, router, "2024-05-02", "11:00")

	w := doJSON(t, router, http.MethodGet, "/api/v1/appointments?day=2024-05-01", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data []struct {
			DateTime string `json:"dateTime"`
		} `json:"data"`
	}
	decodeBody(t, w, &resp)
	if len(resp.Data) != 2 {
		t.Fatalf("got %d appointments, want 2: %s", len(resp.Data), w.Body.String())
	}
	if resp.Data[0].DateTime > resp.Data[1].DateTime {
		t.Errorf("not ascending: %+v", resp.Data)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/appointments?day=May+1st", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad day: status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestUpdateAndDeleteAppointmentEndpoint(t *testing.T) {
	router := newTestRouter(t)

	id := createAppointment(t, router, "2024-05-01", "14:30")

	w := doJSON(t, router, http.MethodPut, "/api/v1/appointments/"+id, appointmentPayload("2024-05-02", "09:00"))
	if w.Code != http.StatusOK {
		t.Fatalf("update: status %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodDelete, "/api/v1/appointments/"+id, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: status %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodDelete, "/api/v1/appointments/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete: status %d, body %s", w.Code, w.Body.String())
	}
}

func TestFirmEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/firm", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get default: status %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	decodeBody(t, w, &resp)
	if resp.Data.Name != "Your Law Firm Name" {
		t.Errorf("default name = %q", resp.Data.Name)
	}

	w = doJSON(t, router, http.MethodPut, "/api/v1/firm", map[string]string{
		"name":  "Ivanova & Partners",
		"email": "office@firm.example",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("save: status %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/firm", nil)
	decodeBody(t, w, &resp)
	if resp.Data.Name != "Ivanova & Partners" {
		t.Errorf("saved name = %q", resp.Data.Name)
	}
}

func TestLawyerEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/lawyers", map[string]string{
		"name":  "Anna Ivanova",
		"email": "anna@firm.example",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/lawyers", map[string]string{
		"name":  "A",
		"email": "bad",
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("invalid create: status %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodDelete, "/api/v1/lawyers/no-such-id", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("delete missing: status %d, body %s", w.Code, w.Body.String())
	}
}

func TestDashboardStatsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	createAppointment(t, router, "2020-01-01", "09:00")
	createAppointment(t, router, "2100-01-01", "09:00")

	w := doJSON(t, router, http.MethodGet, "/api/v1/dashboard/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data struct {
			Summary struct {
				Total     int `json:"total"`
				Upcoming  int `json:"upcoming"`
				Completed int `json:"completed"`
			} `json:"summary"`
			AppointmentsPerDay map[string]int `json:"appointmentsPerDay"`
		} `json:"data"`
	}
	decodeBody(t, w, &resp)
	if resp.Data.Summary.Total != 2 || resp.Data.Summary.Upcoming != 1 || resp.Data.Summary.Completed != 1 {
		t.Errorf("summary = %+v", resp.Data.Summary)
	}
	if resp.Data.AppointmentsPerDay["2020-01-01"] != 1 {
		t.Errorf("appointmentsPerDay = %v", resp.Data.AppointmentsPerDay)
	}
}

func TestAttachDocumentWithoutStorage(t *testing.T) {
	router := newTestRouter(t)

	id := createAppointment(t, router, "2024-05-01", "14:30")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "motion.pdf")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	fmt.Fprint(part, "%PDF-1.4 motion to dismiss")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/"+id+"/documents", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, body %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/appointments/"+id+"/documents", bytes.NewReader(nil))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing file: status = %d, body %s", w.Code, w.Body.String())
	}
}
