package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"genhost/internal/manager"
	"genhost/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	CloneVoice(ctx context.Context, in types.VoiceCloneInput) (types.Audio, error)
	CustomVoice(ctx context.Context, in types.CustomVoiceInput) (types.Audio, error)
	DesignVoice(ctx context.Context, in types.VoiceDesignInput) (types.Audio, error)
	ChatCompletion(ctx context.Context, req types.ChatCompletionRequest) (types.ChatCompletionResponse, error)
	GenerateImage(ctx context.Context, req types.ImageGenerateRequest) (types.Media, error)
	EditImage(ctx context.Context, req types.ImageEditRequest) (types.Media, error)
	GenerateVideo(ctx context.Context, req types.VideoGenerateRequest) (types.Media, error)
	OmniChat(ctx context.Context, in types.OmniChatInput) (types.OmniChatResponse, error)

	ListModels() []types.Model
	LoadModel(ctx context.Context, id string) (types.StatusResponse, error)
	Switch(id string) (types.SwitchResponse, error)
	Release(ctx context.Context) error
	Status() types.StatusResponse
	Sanity() manager.SanityReport
	Ready() bool
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	// Compression for JSON endpoints; audio/wav is not in the default list.
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
			MaxAge:         300,
		}))
	}

	h := &handlers{svc: svc}

	r.Route("/api/v1/tts", func(r chi.Router) {
		r.Post("/clone", h.ttsClone)
		r.Post("/design", h.ttsDesign)
		r.Post("/custom", h.ttsCustom)
	})
	r.Route("/api/v1/image", func(r chi.Router) {
		r.Post("/generate", h.imageGenerate)
		r.Post("/edit", h.imageEdit)
	})
	r.Route("/api/v1/video", func(r chi.Router) {
		r.Post("/generate", h.videoGenerate)
		r.Post("/image-to-video", h.imageToVideo)
	})
	r.Post("/api/v1/omni/chat", h.omniChat)
	r.Post("/v1/chat/completions", h.chatCompletions)

	r.Get("/models", h.listModels)
	r.Delete("/models/current", h.releaseModel)
	// Hub identifiers contain slashes, so the id is the wildcard minus "/load".
	r.Post("/models/*", h.loadModel)
	r.Post("/switch", h.switchModel)

	r.Get("/status", h.status)
	r.Get("/sanity", h.sanity)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("no model resident"))
	})
	r.Get("/", h.index)

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}
