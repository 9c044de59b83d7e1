package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"job-portal-service/cmd/responses"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestHandler(t *testing.T, db Database) *Handler {
	uploads, err := NewUploader(t.TempDir(), 1<<20)
	require.NoError(t, err)
	return NewHandler(db, uploads, 5*time.Second)
}

func performRequest(router *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

type formFile struct {
	field, name string
	content     []byte
}

func performMultipart(router *gin.Engine, method, url string, values map[string]string, files ...formFile) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range values {
		_ = w.WriteField(k, v)
	}
	for _, f := range files {
		part, _ := w.CreateFormFile(f.field, f.name)
		_, _ = part.Write(f.content)
	}
	_ = w.Close()

	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeResponse(t *testing.T, resp *httptest.ResponseRecorder) responses.Response {
	var response responses.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	return response
}
