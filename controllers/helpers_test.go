package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"amerportal/config"
	"amerportal/models"
	"amerportal/routes"
)

// setupRouter points the global store at a fresh file database seeded with the
// default accounts and wires the real route table around it.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.DB = config.NewFileStore(filepath.Join(t.TempDir(), "database.json"))
	config.InitializeDatabase()

	r := gin.New()
	routes.InitializeRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decode(t *testing.T, resp *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(resp.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", resp.Body.String(), err)
	}
}

// createRequest posts a new request as the default counter account and returns
// the created record.
func createRequest(t *testing.T, r *gin.Engine, ticketNumber string) models.Request {
	t.Helper()

	resp := doJSON(t, r, "POST", "/requests", map[string]interface{}{
		"requestData": map[string]string{
			"ticketNumber":  ticketNumber,
			"counterName":   "Ahmed Al-Jaber",
			"counterNumber": "3",
			"receptionId":   "rec01",
			"status":        "Returned",
		},
		"user": map[string]string{"id": "count01", "username": "Ahmed Al-Jaber"},
	})
	if resp.Code != 201 {
		t.Fatalf("create request: expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created models.Request
	decode(t, resp, &created)
	return created
}
