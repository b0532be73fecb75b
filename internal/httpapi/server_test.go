package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"ocrd/internal/catalog"
	"ocrd/internal/service"
	"ocrd/pkg/types"
)

// mockService scripts the two service methods.
type mockService struct {
	languages []types.ModelRecord
	text      string
	err       error

	gotQuery catalog.Query
}

func (m *mockService) Languages() []types.ModelRecord { return m.languages }

func (m *mockService) ExtractText(ctx context.Context, q catalog.Query, mr *multipart.Reader) (string, error) {
	m.gotQuery = q
	return m.text, m.err
}

func pngUploadRequest(t *testing.T, target string) *http.Request {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	var imgBuf bytes.Buffer
	if err := png.Encode(&imgBuf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="upload.png"`)
	h.Set("Content-Type", "image/png")
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(imgBuf.Bytes()); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestHealth(t *testing.T) {
	h := NewMux(&mockService{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/system/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := decodeBody[types.HealthResponse](t, rec); got.Status != "ok" {
		t.Fatalf("unexpected body: %+v", got)
	}
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("expected nosniff header, got %q", got)
	}
}

func TestLanguagesEmptyCatalog(t *testing.T) {
	h := NewMux(&mockService{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/languages", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() == "" || bytes.Contains(rec.Body.Bytes(), []byte("null")) {
		t.Fatalf("languages must be an empty array, got %q", rec.Body.String())
	}
}

func TestImagesSuccessAndQueryParams(t *testing.T) {
	svc := &mockService{text: "extracted"}
	h := NewMux(svc)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, pngUploadRequest(t, "/api/v1/images?language=eng&model=fast"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := decodeBody[types.ImagesResponse](t, rec); got.Text != "extracted" {
		t.Fatalf("unexpected body: %+v", got)
	}
	if svc.gotQuery.Language == nil || *svc.gotQuery.Language != "eng" {
		t.Fatalf("language param not forwarded: %+v", svc.gotQuery)
	}
	if svc.gotQuery.Model == nil || *svc.gotQuery.Model != "fast" {
		t.Fatalf("model param not forwarded: %+v", svc.gotQuery)
	}
}

func TestImagesOmittedParamsStayAbsent(t *testing.T) {
	svc := &mockService{text: "ok"}
	h := NewMux(svc)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, pngUploadRequest(t, "/api/v1/images"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotQuery.Language != nil || svc.gotQuery.Model != nil {
		t.Fatalf("absent params must stay nil: %+v", svc.gotQuery)
	}
}

func TestImagesInvalidRequestIsPreciseMessage(t *testing.T) {
	svc := &mockService{err: service.ErrInvalidRequest("Model 'unknown' not found for language 'eng'")}
	h := NewMux(svc)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, pngUploadRequest(t, "/api/v1/images?language=eng&model=unknown"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	got := decodeBody[types.ErrorResponse](t, rec)
	if got.Message != "Model 'unknown' not found for language 'eng'" {
		t.Fatalf("unexpected message: %q", got.Message)
	}
}

func TestImagesInternalErrorIsSanitized(t *testing.T) {
	svc := &mockService{err: service.ErrInternal("tesseract exploded: stack details")}
	h := NewMux(svc)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, pngUploadRequest(t, "/api/v1/images"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	got := decodeBody[types.ErrorResponse](t, rec)
	if got.Message != "An internal server error has occurred." {
		t.Fatalf("internal details leaked: %q", got.Message)
	}
}

func TestImagesNonMultipartBody(t *testing.T) {
	h := NewMux(&mockService{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/images", bytes.NewBufferString(`{"not":"multipart"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	SetRateLimit(1, 1)
	defer SetRateLimit(0, 0)

	h := NewMux(&mockService{})
	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/system/health", nil)
	req.RemoteAddr = "10.9.8.7:1234"
	h.ServeHTTP(first, req)
	if first.Code != http.StatusOK {
		t.Fatalf("first request should pass, got %d", first.Code)
	}
	second := httptest.NewRecorder()
	h.ServeHTTP(second, req)
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request should be limited, got %d", second.Code)
	}
}

func TestCORSHeadersWhenEnabled(t *testing.T) {
	SetCORSOptions(true, []string{"*"}, []string{"GET", "POST", "OPTIONS"}, []string{"Content-Type"}, 600)
	defer SetCORSOptions(false, nil, nil, nil, 0)

	h := NewMux(&mockService{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/languages", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard CORS origin, got %q", got)
	}
}
