package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-gin-event-portal/internal/handler"
	"go-gin-event-portal/internal/identity"
	"go-gin-event-portal/internal/listing"
	remotemocks "go-gin-event-portal/internal/remote/mocks"
	servicemocks "go-gin-event-portal/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var (
	InvalidJSON = `{"invalid": json}`
)

type testDeps struct {
	router      *gin.Engine
	sessions    *identity.Store
	remote      *remotemocks.MockEventRepository
	events      *servicemocks.MockEventService
	submissions *servicemocks.MockSubmissionService
}

func setupTestRouter(t *testing.T) testDeps {
	gin.SetMode(gin.TestMode)
	d := testDeps{
		router:      gin.New(),
		sessions:    identity.NewStore(),
		remote:      remotemocks.NewMockEventRepository(t),
		events:      servicemocks.NewMockEventService(t),
		submissions: servicemocks.NewMockSubmissionService(t),
	}
	engine := listing.NewEngine(d.remote, listing.NewMemoryStateStore(), 6)

	d.router.Use(handler.RequestID(), handler.Identity(d.sessions))
	handler.NewSessionHandler(d.sessions).RegisterRoutes(d.router)
	handler.NewListingHandler(engine).RegisterRoutes(d.router)
	handler.NewEventHandler(d.events, d.submissions).RegisterRoutes(d.router)
	handler.NewRegistrationHandler(d.events).RegisterRoutes(d.router)
	return d
}

func (d testDeps) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	d.router.ServeHTTP(w, req)
	return w
}

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	if s, ok := data.(string); ok {
		return bytes.NewBufferString(s)
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

// create multipart request with the form JSON in "event" and an optional file
func createMultipartRequest(t *testing.T, method, url string, form interface{}, fileName string, content []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if form != nil {
		raw, err := json.Marshal(form)
		require.NoError(t, err)
		require.NoError(t, mw.WriteField("event", string(raw)))
	}
	if fileName != "" {
		part, err := mw.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
