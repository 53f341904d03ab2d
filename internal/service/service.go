// Package service exposes the generation capabilities on top of the model
// manager: each request names a capability, the service picks the
// configured checkpoint for it and runs the work while that checkpoint is
// resident.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"genhost/internal/manager"
	"genhost/pkg/types"
)

const defaultLanguage = "English"

// Chat sampling defaults applied when the request leaves them unset.
const (
	defaultMaxTokens   = 1024
	defaultTemperature = 0.7
	defaultTopP        = 0.9
)

// Models maps each capability to the checkpoint serving it.
type Models struct {
	Base      string
	Custom    string
	Design    string
	Chat      string
	Image     string
	ImageEdit string
	Video     string
	STT       string
}

// Config wires a Service.
type Config struct {
	Manager *manager.Manager
	Models  Models
	// HostMemory is optional; when set its result is added to Status.
	HostMemory func() (types.HostMemory, error)
	Logger     *zerolog.Logger
}

type Service struct {
	mgr        *manager.Manager
	models     Models
	hostMemory func() (types.HostMemory, error)
	log        zerolog.Logger
}

func New(cfg Config) *Service {
	s := &Service{
		mgr:        cfg.Manager,
		models:     cfg.Models,
		hostMemory: cfg.HostMemory,
		log:        zerolog.Nop(),
	}
	if cfg.Logger != nil {
		s.log = cfg.Logger.With().Str("component", "service").Logger()
	}
	return s
}

func language(l string) string {
	if strings.TrimSpace(l) == "" {
		return defaultLanguage
	}
	return l
}

// CloneVoice renders text in the voice of the reference clip.
func (s *Service) CloneVoice(ctx context.Context, in types.VoiceCloneInput) (types.Audio, error) {
	switch {
	case strings.TrimSpace(in.Text) == "":
		return types.Audio{}, errInvalid("text is required")
	case strings.TrimSpace(in.RefText) == "":
		return types.Audio{}, errInvalid("ref_text is required")
	case len(in.RefAudio) == 0:
		return types.Audio{}, errInvalid("ref_audio is required")
	}
	in.Language = language(in.Language)
	var out types.Audio
	err := s.mgr.Do(ctx, s.models.Base, s.mgr.Settings(), func(h manager.Handle) error {
		vc, err := manager.AsVoiceCloner(h)
		if err != nil {
			return err
		}
		out, err = vc.CloneVoice(ctx, in)
		return err
	})
	return out, err
}

// CustomVoice renders text with one of the built-in speakers.
func (s *Service) CustomVoice(ctx context.Context, in types.CustomVoiceInput) (types.Audio, error) {
	switch {
	case strings.TrimSpace(in.Text) == "":
		return types.Audio{}, errInvalid("text is required")
	case strings.TrimSpace(in.Speaker) == "":
		return types.Audio{}, errInvalid("speaker is required")
	}
	in.Language = language(in.Language)
	var out types.Audio
	err := s.mgr.Do(ctx, s.models.Custom, s.mgr.Settings(), func(h manager.Handle) error {
		cv, err := manager.AsCustomVoicer(h)
		if err != nil {
			return err
		}
		out, err = cv.CustomVoice(ctx, in)
		return err
	})
	return out, err
}

// DesignVoice renders text with a voice described in natural language.
func (s *Service) DesignVoice(ctx context.Context, in types.VoiceDesignInput) (types.Audio, error) {
	switch {
	case strings.TrimSpace(in.Text) == "":
		return types.Audio{}, errInvalid("text is required")
	case strings.TrimSpace(in.Instruct) == "":
		return types.Audio{}, errInvalid("instruct is required")
	}
	in.Language = language(in.Language)
	var out types.Audio
	err := s.mgr.Do(ctx, s.models.Design, s.mgr.Settings(), func(h manager.Handle) error {
		vd, err := manager.AsVoiceDesigner(h)
		if err != nil {
			return err
		}
		out, err = vd.DesignVoice(ctx, in)
		return err
	})
	return out, err
}

// chatModelFor serves req.Model when it is a catalogued chat model and the
// configured chat model otherwise.
func (s *Service) chatModelFor(requested string) string {
	if requested != "" {
		if m, ok := s.mgr.Lookup(requested); ok && m.Kind == types.KindChat {
			return requested
		}
	}
	return s.models.Chat
}

// ChatCompletion answers an OpenAI-style chat completion request.
func (s *Service) ChatCompletion(ctx context.Context, req types.ChatCompletionRequest) (types.ChatCompletionResponse, error) {
	if req.Stream {
		return types.ChatCompletionResponse{}, ErrStreamingUnsupported
	}
	if len(req.Messages) == 0 {
		return types.ChatCompletionResponse{}, errInvalid("messages must not be empty")
	}
	in := types.ChatInput{
		Messages:    normalizeMessages(req.Messages),
		MaxTokens:   defaultMaxTokens,
		Temperature: defaultTemperature,
		TopP:        defaultTopP,
	}
	if req.MaxTokens != nil {
		in.MaxTokens = *req.MaxTokens
	}
	if req.Temperature != nil {
		in.Temperature = *req.Temperature
	}
	if req.TopP != nil {
		in.TopP = *req.TopP
	}

	id := s.chatModelFor(req.Model)
	out, err := s.chat(ctx, id, in)
	if err != nil {
		return types.ChatCompletionResponse{}, err
	}

	model := req.Model
	if model == "" {
		model = id
	}
	return types.ChatCompletionResponse{
		ID:      "chatcmpl-" + uuid.NewString(),
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   model,
		Choices: []types.ChatChoice{{
			Index:        0,
			Message:      types.AssistantTurn{Role: "assistant", Content: out.Text},
			FinishReason: "stop",
		}},
		Usage: usage(out),
	}, nil
}

func (s *Service) chat(ctx context.Context, id string, in types.ChatInput) (types.ChatOutput, error) {
	var out types.ChatOutput
	err := s.mgr.Do(ctx, id, s.mgr.Settings(), func(h manager.Handle) error {
		cc, err := manager.AsChatCompleter(h)
		if err != nil {
			return err
		}
		out, err = cc.Chat(ctx, in)
		return err
	})
	return out, err
}

// usage reports -1 for all counts when the runtime did not report them.
func usage(out types.ChatOutput) types.ChatUsage {
	if out.PromptTokens < 0 || out.CompletionTokens <= 0 {
		return types.ChatUsage{PromptTokens: -1, CompletionTokens: -1, TotalTokens: -1}
	}
	return types.ChatUsage{
		PromptTokens:     out.PromptTokens,
		CompletionTokens: out.CompletionTokens,
		TotalTokens:      out.PromptTokens + out.CompletionTokens,
	}
}
