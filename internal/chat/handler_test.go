package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kisanconnect/kisanconnect/internal/lang"
)

func newTestRouter(t *testing.T) (*Manager, http.Handler) {
	t.Helper()

	m := newTestManager(t)
	h := NewHandler(m, m.ext)

	r := chi.NewRouter()
	r.Post("/api/v1/chat/message", h.Message)
	r.Post("/api/v1/chat/disease", h.Disease)
	r.Post("/api/v1/chat/disease/image", h.DiseaseImage)
	r.Route("/api/v1/chat/session/{sessionID}", func(r chi.Router) {
		r.Get("/", h.GetSession)
		r.Delete("/", h.DeleteSession)
		r.Put("/language", h.SetLanguage)
	})
	return m, r
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func TestMessageEndpoint(t *testing.T) {
	_, router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/chat/message", MessageRequest{Message: "hello"})
	require.Equal(t, http.StatusOK, rec.Code)

	var result TurnResult
	decodeData(t, rec, &result)

	assert.NotEmpty(t, result.SessionID)
	assert.NotEmpty(t, result.Response)
	assert.Equal(t, "greeting", string(result.Intent))
}

func TestMessageEndpointContinuesSession(t *testing.T) {
	m, router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/chat/message", MessageRequest{Message: "hello"})
	require.Equal(t, http.StatusOK, rec.Code)
	var first TurnResult
	decodeData(t, rec, &first)

	rec = postJSON(t, router, "/api/v1/chat/message", MessageRequest{
		Message:   "Urea dosage for cotton?",
		SessionID: first.SessionID,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var second TurnResult
	decodeData(t, rec, &second)

	assert.Equal(t, first.SessionID, second.SessionID)

	svc, ok := m.Lookup(first.SessionID)
	require.True(t, ok)
	assert.Len(t, svc.Session().Messages, 4)
}

func TestMessageEndpointValidation(t *testing.T) {
	_, router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/chat/message", MessageRequest{Message: ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, router, "/api/v1/chat/message", MessageRequest{Message: "hello", Language: "fr"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMessageEndpointBusyConflict(t *testing.T) {
	m, router := newTestRouter(t)

	svc, err := m.Resolve(context.Background(), "", lang.English, "")
	require.NoError(t, err)
	svc.busy.Store(true)
	defer svc.busy.Store(false)

	rec := postJSON(t, router, "/api/v1/chat/message", MessageRequest{
		Message:   "hello",
		SessionID: svc.Session().ID,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDiseaseImageEndpoint(t *testing.T) {
	_, router := newTestRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "leaf.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("not-really-a-jpeg"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("language", "en"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/disease/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var result DiseaseImageResponse
	decodeData(t, rec, &result)

	assert.Equal(t, "Healthy", result.Detection.Disease)
	assert.Contains(t, result.Summary, "Healthy")
	assert.Equal(t, "Healthy", string(result.Turn.Label))
	assert.NotEmpty(t, result.Turn.Response)
}

func TestDiseaseImageEndpointRequiresFile(t *testing.T) {
	_, router := newTestRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("language", "en"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/disease/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDiseaseEndpoint(t *testing.T) {
	_, router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/chat/disease", DiseaseRequest{
		Label:      "Healthy - 92% confidence",
		Confidence: 0.92,
		Language:   "hi",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result DiseaseTurnResult
	decodeData(t, rec, &result)

	assert.Equal(t, "Healthy", string(result.Label))
	assert.Contains(t, result.Response, "फसल स्वस्थ है")
}

func TestSessionEndpoints(t *testing.T) {
	_, router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/chat/message", MessageRequest{Message: "hello"})
	require.Equal(t, http.StatusOK, rec.Code)
	var turn TurnResult
	decodeData(t, rec, &turn)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/session/"+turn.SessionID, nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, req)
	require.Equal(t, http.StatusOK, getRec.Code)

	var view SessionResponse
	decodeData(t, getRec, &view)
	assert.Equal(t, turn.SessionID, view.SessionID)
	assert.Equal(t, 2, view.MessageCount)
	assert.False(t, view.Busy)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/chat/session/"+turn.SessionID, nil)
	delRec := httptest.NewRecorder()
	router.ServeHTTP(delRec, req)
	assert.Equal(t, http.StatusOK, delRec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/chat/session/"+turn.SessionID, nil)
	missRec := httptest.NewRecorder()
	router.ServeHTTP(missRec, req)
	assert.Equal(t, http.StatusNotFound, missRec.Code)
}

func TestSetLanguageEndpoint(t *testing.T) {
	m, router := newTestRouter(t)

	svc, err := m.Resolve(context.Background(), "", lang.English, "")
	require.NoError(t, err)
	_, err = svc.ProcessMessage(context.Background(), "hello")
	require.NoError(t, err)
	id := svc.Session().ID

	data, err := json.Marshal(LanguageRequest{Language: "mr"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/chat/session/"+id+"/language", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, lang.Marathi, svc.Session().Language)
}
