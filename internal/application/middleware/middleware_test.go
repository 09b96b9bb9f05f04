package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func newTestServer() *echo.Echo {
	e := echo.New()
	SetupRequestID(e)
	SetupRequestLogger(e)
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Response().Header().Get(echo.HeaderXRequestID))
	})
	e.GET("/fail", func(c echo.Context) error {
		return errors.New("boom")
	})
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return e
}

func TestRequestID(t *testing.T) {
	e := newTestServer()

	tests := []struct {
		name     string
		incoming string
		wantUUID bool
	}{
		{name: "generates a uuid", wantUUID: true},
		{name: "keeps the caller id", incoming: "caller-supplied-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ok", nil)
			if tt.incoming != "" {
				req.Header.Set(echo.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			id := rec.Header().Get(echo.HeaderXRequestID)
			if rec.Body.String() != id {
				t.Errorf("handler saw id %q, response header has %q", rec.Body.String(), id)
			}
			if tt.wantUUID {
				if _, err := uuid.Parse(id); err != nil {
					t.Errorf("request id %q is not a uuid: %v", id, err)
				}
				return
			}
			if id != tt.incoming {
				t.Errorf("request id = %q, want %q", id, tt.incoming)
			}
		})
	}
}

func TestRequestLoggerPassesThrough(t *testing.T) {
	e := newTestServer()

	tests := []struct {
		path       string
		wantStatus int
	}{
		{path: "/ok", wantStatus: http.StatusOK},
		{path: "/fail", wantStatus: http.StatusInternalServerError},
		{path: "/health", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequestFields(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name       string
		params     []string
		values     []string
		err        error
		wantFields map[string]string
		wantAbsent []string
	}{
		{
			name:       "weather page carries the location",
			params:     []string{"state", "city"},
			values:     []string{"il", "jerusalem"},
			wantFields: map[string]string{"state": "il", "city": "jerusalem", "request_id": "req-1"},
		},
		{
			name:       "state redirect carries only the state",
			params:     []string{"state"},
			values:     []string{"us"},
			wantFields: map[string]string{"state": "us"},
			wantAbsent: []string{"city"},
		},
		{
			name:       "routes without a location",
			wantAbsent: []string{"state", "city", "error"},
		},
		{
			name:       "failed request carries the error",
			err:        errors.New("boom"),
			wantFields: map[string]string{"method": http.MethodGet},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			c.SetParamNames(tt.params...)
			c.SetParamValues(tt.values...)

			fields := requestFields(c, echomw.RequestLoggerValues{Method: http.MethodGet, URI: "/", RequestID: "req-1", Error: tt.err})

			got := make(map[string]string)
			hasError := false
			for _, f := range fields {
				got[f.Key] = f.String
				if f.Key == "error" {
					hasError = true
				}
			}
			for key, want := range tt.wantFields {
				if got[key] != want {
					t.Errorf("field %q = %q, want %q", key, got[key], want)
				}
			}
			for _, key := range tt.wantAbsent {
				if _, ok := got[key]; ok {
					t.Errorf("field %q present, want absent", key)
				}
			}
			if hasError != (tt.err != nil) {
				t.Errorf("error field present = %v, want %v", hasError, tt.err != nil)
			}
		})
	}
}
