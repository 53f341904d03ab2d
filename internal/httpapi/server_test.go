package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"genhost/internal/manager"
	"genhost/internal/service"
	"genhost/pkg/types"
)

type mockService struct {
	models  []types.Model
	status  types.StatusResponse
	sanity  manager.SanityReport
	ready   bool
	err     error
	loaded  string
	cloned  types.VoiceCloneInput
	chatReq types.ChatCompletionRequest
	image   types.ImageGenerateRequest
	edit    types.ImageEditRequest
	video   types.VideoGenerateRequest
	omni    types.OmniChatInput
}

func (m *mockService) CloneVoice(_ context.Context, in types.VoiceCloneInput) (types.Audio, error) {
	m.cloned = in
	if m.err != nil {
		return types.Audio{}, m.err
	}
	return types.Audio{Data: []byte("RIFF"), ContentType: "audio/wav"}, nil
}

func (m *mockService) CustomVoice(_ context.Context, in types.CustomVoiceInput) (types.Audio, error) {
	if m.err != nil {
		return types.Audio{}, m.err
	}
	return types.Audio{Data: []byte(in.Speaker)}, nil
}

func (m *mockService) DesignVoice(_ context.Context, in types.VoiceDesignInput) (types.Audio, error) {
	if m.err != nil {
		return types.Audio{}, m.err
	}
	return types.Audio{Data: []byte(in.Instruct), ContentType: "audio/wav"}, nil
}

func (m *mockService) ChatCompletion(_ context.Context, req types.ChatCompletionRequest) (types.ChatCompletionResponse, error) {
	m.chatReq = req
	if m.err != nil {
		return types.ChatCompletionResponse{}, m.err
	}
	return types.ChatCompletionResponse{
		ID:      "chatcmpl-1",
		Object:  "chat.completion",
		Model:   req.Model,
		Choices: []types.ChatChoice{{Message: types.AssistantTurn{Role: "assistant", Content: "hi"}, FinishReason: "stop"}},
	}, nil
}

func (m *mockService) GenerateImage(_ context.Context, req types.ImageGenerateRequest) (types.Media, error) {
	m.image = req
	if m.err != nil {
		return types.Media{}, m.err
	}
	return types.Media{Data: []byte("PNG"), ContentType: "image/png"}, nil
}

func (m *mockService) EditImage(_ context.Context, req types.ImageEditRequest) (types.Media, error) {
	m.edit = req
	if m.err != nil {
		return types.Media{}, m.err
	}
	return types.Media{Data: req.Image}, nil
}

func (m *mockService) GenerateVideo(_ context.Context, req types.VideoGenerateRequest) (types.Media, error) {
	m.video = req
	if m.err != nil {
		return types.Media{}, m.err
	}
	return types.Media{Data: []byte("MP4"), ContentType: "video/mp4"}, nil
}

func (m *mockService) OmniChat(_ context.Context, in types.OmniChatInput) (types.OmniChatResponse, error) {
	m.omni = in
	if m.err != nil {
		return types.OmniChatResponse{}, m.err
	}
	return types.OmniChatResponse{Text: "reply", Audio: []byte("RIFF"), MediaType: "audio/wav"}, nil
}

func (m *mockService) ListModels() []types.Model { return append([]types.Model(nil), m.models...) }

func (m *mockService) LoadModel(_ context.Context, id string) (types.StatusResponse, error) {
	m.loaded = id
	if m.err != nil {
		return types.StatusResponse{}, m.err
	}
	return types.StatusResponse{State: "ready", Current: &types.CurrentModel{ID: id}}, nil
}

func (m *mockService) Switch(id string) (types.SwitchResponse, error) {
	if m.err != nil {
		return types.SwitchResponse{}, m.err
	}
	return types.SwitchResponse{OpID: "op-1", Model: id}, nil
}

func (m *mockService) Release(context.Context) error { return m.err }
func (m *mockService) Status() types.StatusResponse  { return m.status }
func (m *mockService) Sanity() manager.SanityReport  { return m.sanity }
func (m *mockService) Ready() bool                   { return m.ready }

type mockHTTPError struct {
	msg  string
	code int
}

func (e mockHTTPError) Error() string   { return e.msg }
func (e mockHTTPError) StatusCode() int { return e.code }

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestModelsHandler(t *testing.T) {
	svc := &mockService{models: []types.Model{{ID: "m1"}, {ID: "m2"}}}
	w := serve(NewMux(svc), httptest.NewRequest(http.MethodGet, "/models", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Fatalf("content-type=%s", ct)
	}
	var body types.ModelsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(body.Models) != 2 {
		t.Fatalf("models len=%d", len(body.Models))
	}
}

func TestStatusHandler(t *testing.T) {
	svc := &mockService{status: types.StatusResponse{State: "ready", MaxQueueDepth: 32}}
	w := serve(NewMux(svc), httptest.NewRequest(http.MethodGet, "/status", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var body types.StatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.State != "ready" || body.MaxQueueDepth != 32 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestReadyz(t *testing.T) {
	w := serve(NewMux(&mockService{ready: true}), httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	w = serve(NewMux(&mockService{}), httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestHealthzAndNosniff(t *testing.T) {
	w := serve(NewMux(&mockService{}), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("status=%d body=%q", w.Code, w.Body.String())
	}
	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("nosniff header=%q", got)
	}
}

func TestSanity(t *testing.T) {
	svc := &mockService{sanity: manager.SanityReport{Device: "cpu", Error: "runtime missing"}}
	w := serve(NewMux(svc), httptest.NewRequest(http.MethodGet, "/sanity", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status=%d", w.Code)
	}
	svc.sanity = manager.SanityReport{LoaderAvailable: true, Device: "cpu"}
	w = serve(NewMux(svc), httptest.NewRequest(http.MethodGet, "/sanity", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestLoadModelWithSlashInID(t *testing.T) {
	svc := &mockService{}
	req := httptest.NewRequest(http.MethodPost, "/models/Qwen/Qwen3-TTS-12Hz-1.7B-Base/load", nil)
	w := serve(NewMux(svc), req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if svc.loaded != "Qwen/Qwen3-TTS-12Hz-1.7B-Base" {
		t.Fatalf("loaded=%q", svc.loaded)
	}
}

func TestLoadModelRequiresLoadSuffix(t *testing.T) {
	svc := &mockService{}
	w := serve(NewMux(svc), httptest.NewRequest(http.MethodPost, "/models/some-model", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d", w.Code)
	}
	if svc.loaded != "" {
		t.Fatalf("unexpected load of %q", svc.loaded)
	}
}

func TestSwitchAccepted(t *testing.T) {
	body := strings.NewReader(`{"model":"Qwen/Qwen3-VL-32B-Thinking"}`)
	req := httptest.NewRequest(http.MethodPost, "/switch", body)
	req.Header.Set("Content-Type", "application/json")
	w := serve(NewMux(&mockService{}), req)
	if w.Code != http.StatusAccepted {
		t.Fatalf("status=%d", w.Code)
	}
	var resp types.SwitchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.OpID == "" || resp.Model != "Qwen/Qwen3-VL-32B-Thinking" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestSwitchUnknownModel(t *testing.T) {
	svc := &mockService{err: manager.ErrModelNotFound("nope")}
	req := httptest.NewRequest(http.MethodPost, "/switch", strings.NewReader(`{"model":"nope"}`))
	w := serve(NewMux(svc), req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestReleaseReturnsStatus(t *testing.T) {
	svc := &mockService{status: types.StatusResponse{State: "empty"}}
	w := serve(NewMux(svc), httptest.NewRequest(http.MethodDelete, "/models/current", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"state":"empty"`) {
		t.Fatalf("body=%s", w.Body.String())
	}
}

func TestCloneVoiceMultipart(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("text", "hello")
	_ = mw.WriteField("ref_text", "reference")
	fw, err := mw.CreateFormFile("ref_audio", "ref.wav")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	_, _ = fw.Write([]byte("WAVDATA"))
	_ = mw.Close()

	svc := &mockService{}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tts/clone", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := serve(NewMux(svc), req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "audio/wav" {
		t.Fatalf("content-type=%s", ct)
	}
	if w.Body.String() != "RIFF" {
		t.Fatalf("body=%q", w.Body.String())
	}
	if svc.cloned.Text != "hello" || svc.cloned.RefText != "reference" {
		t.Fatalf("unexpected input: %+v", svc.cloned)
	}
	if string(svc.cloned.RefAudio) != "WAVDATA" || svc.cloned.RefAudioName != "ref.wav" {
		t.Fatalf("ref audio not forwarded: %q %q", svc.cloned.RefAudio, svc.cloned.RefAudioName)
	}
}

func TestCustomVoiceURLEncoded(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tts/custom", strings.NewReader("text=hi&speaker=Vivian"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := serve(NewMux(&mockService{}), req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "audio/wav" {
		t.Fatalf("default content-type not applied: %s", ct)
	}
	if w.Body.String() != "Vivian" {
		t.Fatalf("body=%q", w.Body.String())
	}
}

func TestChatCompletions(t *testing.T) {
	svc := &mockService{}
	body := `{"model":"m","messages":[{"role":"user","content":[{"type":"text","text":"hi"}]}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/chat/completions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	w := serve(NewMux(svc), req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var resp types.ChatCompletionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(resp.Choices) != 1 || resp.Choices[0].Message.Content != "hi" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(svc.chatReq.Messages) != 1 || !svc.chatReq.Messages[0].Content.IsParts {
		t.Fatalf("request not decoded: %+v", svc.chatReq)
	}
}

func TestChatCompletionsContentType(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/chat/completions", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	w := serve(NewMux(&mockService{}), req)
	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestChatCompletionsInvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/chat/completions", strings.NewReader(`{"model":`))
	req.Header.Set("Content-Type", "application/json")
	w := serve(NewMux(&mockService{}), req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
	var er types.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("json: %v", err)
	}
	if er.Code != http.StatusBadRequest || er.Error == "" {
		t.Fatalf("unexpected error body: %+v", er)
	}
}

func TestChatCompletionsBodyLimit(t *testing.T) {
	SetMaxBodyBytes(16)
	t.Cleanup(func() { SetMaxBodyBytes(0) })
	body := `{"model":"m","messages":[{"role":"user","content":"a long message"}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/chat/completions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := serve(NewMux(&mockService{}), req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"http error", mockHTTPError{msg: "teapot", code: http.StatusTeapot}, http.StatusTeapot},
		{"not found", manager.ErrModelNotFound("x"), http.StatusNotFound},
		{"too busy", manager.ErrTooBusy("x"), http.StatusTooManyRequests},
		{"unsupported", manager.ErrUnsupportedOperation("x", manager.CapChat), http.StatusUnprocessableEntity},
		{"loader", manager.ErrLoaderUnavailable("no worker"), http.StatusServiceUnavailable},
		{"streaming", service.ErrStreamingUnsupported, http.StatusNotImplemented},
		{"deadline", fmt.Errorf("wait: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockService{err: tc.err}
			req := httptest.NewRequest(http.MethodPost, "/api/v1/tts/design", strings.NewReader("text=a&instruct=b"))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := serve(NewMux(svc), req)
			if w.Code != tc.want {
				t.Fatalf("status=%d want %d", w.Code, tc.want)
			}
			var er types.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
				t.Fatalf("json: %v", err)
			}
			if er.Code != tc.want || er.Error != tc.err.Error() {
				t.Fatalf("unexpected error body: %+v", er)
			}
		})
	}
}

func TestGenerationTimeoutApplied(t *testing.T) {
	SetGenerationTimeout(0)
	ctx, cancel := generationContext(context.Background())
	if _, ok := ctx.Deadline(); ok {
		t.Fatal("unexpected deadline with timeout disabled")
	}
	cancel()

	SetGenerationTimeout(time.Minute)
	t.Cleanup(func() { SetGenerationTimeout(0) })
	ctx, cancel = generationContext(context.Background())
	defer cancel()
	if _, ok := ctx.Deadline(); !ok {
		t.Fatal("expected deadline")
	}
}
