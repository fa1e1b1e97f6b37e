package testutil

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewTestContext creates a test gin.Context with the given method, path and raw body.
// remoteAddr is the direct peer as seen by the server ("ip:port").
func NewTestContext(method, path string, body []byte, remoteAddr string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

// SetHeaders sets request headers on the gin context.
func SetHeaders(c *gin.Context, headers map[string]string) {
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
}

// ParseResponse parses the JSON response body into the target struct.
func ParseResponse(w *httptest.ResponseRecorder, target any) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// Response mirrors the acknowledgment and rejection bodies for test assertions.
type Response struct {
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// ParseStatus decodes the body and returns it with the status code.
func ParseStatus(w *httptest.ResponseRecorder) (int, Response, error) {
	var resp Response
	err := ParseResponse(w, &resp)
	return w.Code, resp, err
}
