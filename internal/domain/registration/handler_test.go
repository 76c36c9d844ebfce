package registration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler(t *testing.T) (*Handler, *testEnv, *echo.Echo) {
	t.Helper()
	env := newTestEnv(t)
	return NewHandler(env.svc), env, echo.New()
}

func TestHandler_Register(t *testing.T) {
	h, env, e := newTestHandler(t)
	body := `{"doctor_id":"` + env.doctor.ID.String() + `","its_no":"12345678","name":"Fatema Husain","age":42,"gender":"Female","mohallah":"Saifee"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var res Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if res.Token.TokenNumber != 1 {
		t.Errorf("token number = %d, want 1", res.Token.TokenNumber)
	}
	if !strings.Contains(res.SlipHTML, "Token No") {
		t.Error("response missing slip html")
	}
}

func TestHandler_Register_ValidationErrors(t *testing.T) {
	h, env, e := newTestHandler(t)
	body := `{"doctor_id":"` + env.doctor.ID.String() + `","its_no":"1234567","name":"Fatema Husain","age":42,"gender":"Female"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if _, ok := resp.Errors["its_no"]; !ok {
		t.Errorf("expected its_no field error, got %v", resp.Errors)
	}
}

func TestHandler_Register_SequenceUnavailable(t *testing.T) {
	h, env, e := newTestHandler(t)
	env.tokens.failMax = true

	body := `{"doctor_id":"` + env.doctor.ID.String() + `","its_no":"12345678","name":"Fatema Husain","age":42,"gender":"Female"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %v", err)
	}
}

func TestHandler_ReprintSlip(t *testing.T) {
	h, env, e := newTestHandler(t)
	res, err := env.svc.Register(context.Background(), validRequest(env.doctor.ID))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(res.Patient.ID.String())

	if err := h.ReprintSlip(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.Contains(ct, "text/html") {
		t.Errorf("expected html content type, got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `<div class="token-number">1</div>`) {
		t.Error("reprinted slip missing token number")
	}
}

func TestHandler_ReprintSlip_NotFound(t *testing.T) {
	h, _, e := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := h.ReprintSlip(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}
