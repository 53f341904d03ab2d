package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"genhost/internal/device"
	"genhost/internal/httpapi"
	"genhost/internal/loader"
	"genhost/internal/manager"
	"genhost/internal/service"
	"genhost/pkg/types"
)

const (
	baseModel   = "Qwen/Qwen3-TTS-12Hz-1.7B-Base"
	customModel = "Qwen/Qwen3-TTS-12Hz-1.7B-CustomVoice"
	designModel = "Qwen/Qwen3-TTS-12Hz-1.7B-VoiceDesign"
	chatModel   = "Qwen/Qwen3-VL-32B-Thinking"
	imageModel  = "Qwen/Qwen-Image-2512"
	editModel   = "Qwen/Qwen-Image-Edit-2511"
	videoModel  = "Lightricks/LTX-2"
	sttModel    = "Systran/faster-whisper-base"
)

// worker is an in-memory inference worker speaking the loader protocol.
type worker struct {
	mu       sync.Mutex
	resident map[string]string // handle -> model
	maxLive  int
	loads    []map[string]any
	unloads  []string
	empties  int
	// rejectFlash makes loads with flash attention fail as unsupported.
	rejectFlash bool
	down        bool
}

func newWorker() *worker { return &worker{resident: map[string]string{}} }

func (f *worker) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		down := f.down
		f.mu.Unlock()
		if down {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/v1/models/load", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		defer f.mu.Unlock()
		f.loads = append(f.loads, req)
		if f.rejectFlash && req["attn_implementation"] == "flash_attention_2" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error":   "FlashAttention2 is not installed",
				"code":    "unsupported_feature",
				"feature": "flash_attention_2",
			})
			return
		}
		model, _ := req["model"].(string)
		handle := "h-" + model
		f.resident[handle] = model
		if len(f.resident) > f.maxLive {
			f.maxLive = len(f.resident)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"handle": handle})
	})
	mux.HandleFunc("/v1/models/unload", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		delete(f.resident, req["handle"])
		f.unloads = append(f.unloads, req["handle"])
		f.mu.Unlock()
	})
	mux.HandleFunc("/v1/runtime/empty_cache", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.empties++
		f.mu.Unlock()
	})
	media := func(contentType, magic string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			var req map[string]any
			_ = json.NewDecoder(r.Body).Decode(&req)
			f.mu.Lock()
			handle, _ := req["handle"].(string)
			_, ok := f.resident[handle]
			f.mu.Unlock()
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unknown handle"})
				return
			}
			w.Header().Set("Content-Type", contentType)
			_, _ = w.Write([]byte(magic + r.URL.Path))
		}
	}
	mux.HandleFunc("/v1/tts/clone", media("audio/wav", "RIFF"))
	mux.HandleFunc("/v1/tts/custom", media("audio/wav", "RIFF"))
	mux.HandleFunc("/v1/tts/design", media("audio/wav", "RIFF"))
	mux.HandleFunc("/v1/image/generate", media("image/png", "PNG"))
	mux.HandleFunc("/v1/image/edit", media("image/png", "PNG"))
	mux.HandleFunc("/v1/video/generate", media("video/mp4", "MP4"))
	mux.HandleFunc("/v1/audio/transcribe", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"text": "what is the weather", "language": "en"})
	})
	mux.HandleFunc("/v1/chat/generate", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"text": "hello there", "prompt_tokens": 4, "completion_tokens": 2})
	})
	return mux
}

func (f *worker) loadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.loads)
}

type stack struct {
	api    *httptest.Server
	worker *worker
	mgr    *manager.Manager
}

// newStack wires the real loader, manager, service and router against an
// in-memory worker.
func newStack(t *testing.T, accelerator bool) *stack {
	t.Helper()
	fw := newWorker()
	ws := httptest.NewServer(fw.handler())
	t.Cleanup(ws.Close)

	wl := loader.NewWorker(loader.WorkerConfig{BaseURL: ws.URL})
	mgr := manager.NewWithConfig(manager.ManagerConfig{
		Loader:    wl,
		Allocator: device.NewAllocator(wl, nil),
		Registry: []types.Model{
			{ID: baseModel, Kind: types.KindTTSBase},
			{ID: customModel, Kind: types.KindTTSCustom},
			{ID: designModel, Kind: types.KindTTSDesign},
			{ID: chatModel, Kind: types.KindChat},
			{ID: imageModel, Kind: types.KindImage},
			{ID: editModel, Kind: types.KindImageEdit},
			{ID: videoModel, Kind: types.KindVideo},
			{ID: sttModel, Kind: types.KindSTT},
		},
		Settings: manager.DeviceSettings{Accelerator: accelerator, Quantization: manager.Quant4Bit},
	})
	svc := service.New(service.Config{
		Manager: mgr,
		Models: service.Models{
			Base:      baseModel,
			Custom:    customModel,
			Design:    designModel,
			Chat:      chatModel,
			Image:     imageModel,
			ImageEdit: editModel,
			Video:     videoModel,
			STT:       sttModel,
		},
	})
	api := httptest.NewServer(httpapi.NewMux(svc))
	t.Cleanup(api.Close)
	t.Cleanup(func() { _ = mgr.Close() })
	return &stack{api: api, worker: fw, mgr: mgr}
}

func (s *stack) postForm(t *testing.T, path string, fields map[string]string, file []byte) *http.Response {
	t.Helper()
	return s.postUpload(t, path, fields, "ref_audio", file)
}

// postUpload posts a multipart form, attaching file under field when non-nil.
func (s *stack) postUpload(t *testing.T, path string, fields map[string]string, field string, file []byte) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	if file != nil {
		fw, err := mw.CreateFormFile(field, "upload.bin")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		_, _ = fw.Write(file)
	}
	_ = mw.Close()
	resp, err := http.Post(s.api.URL+path, mw.FormDataContentType(), &buf)
	if err != nil {
		t.Fatalf("post %s: %v", path, err)
	}
	return resp
}

func (s *stack) postJSON(t *testing.T, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(s.api.URL+path, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post %s: %v", path, err)
	}
	return resp
}

func (s *stack) status(t *testing.T) types.StatusResponse {
	t.Helper()
	resp, err := http.Get(s.api.URL + "/status")
	if err != nil {
		t.Fatalf("get status: %v", err)
	}
	defer resp.Body.Close()
	var st types.StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	return st
}

func drain(resp *http.Response) string {
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return string(b)
}
