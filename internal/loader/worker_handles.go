package loader

import (
	"context"
	"sync"

	"genhost/internal/manager"
	"genhost/pkg/types"
)

// workerHandle references a model resident in the worker.
type workerHandle struct {
	w   *Worker
	id  string
	ref string

	once     sync.Once
	closeErr error
}

func (h *workerHandle) ID() string { return h.id }

// Close unloads the model from the worker. Repeated calls are no-ops.
func (h *workerHandle) Close() error {
	h.once.Do(func() { h.closeErr = h.w.unload(h.ref) })
	return h.closeErr
}

type cloneHandle struct{ *workerHandle }

func (h cloneHandle) CloneVoice(ctx context.Context, in types.VoiceCloneInput) (types.Audio, error) {
	return h.w.postAudio(ctx, "/v1/tts/clone", cloneRequest{
		Handle:       h.ref,
		Text:         in.Text,
		Language:     in.Language,
		RefText:      in.RefText,
		RefAudio:     in.RefAudio,
		RefAudioName: in.RefAudioName,
	})
}

type customHandle struct{ *workerHandle }

func (h customHandle) CustomVoice(ctx context.Context, in types.CustomVoiceInput) (types.Audio, error) {
	return h.w.postAudio(ctx, "/v1/tts/custom", customRequest{
		Handle:   h.ref,
		Text:     in.Text,
		Language: in.Language,
		Speaker:  in.Speaker,
		Instruct: in.Instruct,
	})
}

type designHandle struct{ *workerHandle }

func (h designHandle) DesignVoice(ctx context.Context, in types.VoiceDesignInput) (types.Audio, error) {
	return h.w.postAudio(ctx, "/v1/tts/design", designRequest{
		Handle:   h.ref,
		Text:     in.Text,
		Language: in.Language,
		Instruct: in.Instruct,
	})
}

type chatHandle struct{ *workerHandle }

func (h chatHandle) Chat(ctx context.Context, in types.ChatInput) (types.ChatOutput, error) {
	var out chatResponse
	err := h.w.postJSON(ctx, "/v1/chat/generate", chatRequest{
		Handle:      h.ref,
		Messages:    in.Messages,
		MaxTokens:   in.MaxTokens,
		Temperature: in.Temperature,
		TopP:        in.TopP,
	}, &out)
	if err != nil {
		return types.ChatOutput{}, err
	}
	return types.ChatOutput{
		Text:             out.Text,
		PromptTokens:     out.PromptTokens,
		CompletionTokens: out.CompletionTokens,
	}, nil
}

type imageHandle struct{ *workerHandle }

func (h imageHandle) GenerateImage(ctx context.Context, in types.ImageGenerateInput) (types.Media, error) {
	return h.w.postMedia(ctx, "/v1/image/generate", imageRequest{
		Handle:         h.ref,
		Prompt:         in.Prompt,
		NegativePrompt: in.NegativePrompt,
		Width:          in.Width,
		Height:         in.Height,
		Steps:          in.Steps,
		GuidanceScale:  in.GuidanceScale,
		Seed:           in.Seed,
	}, "image/png")
}

type imageEditHandle struct{ *workerHandle }

func (h imageEditHandle) EditImage(ctx context.Context, in types.ImageEditInput) (types.Media, error) {
	return h.w.postMedia(ctx, "/v1/image/edit", imageEditRequest{
		Handle:         h.ref,
		Image:          in.Image,
		ImageName:      in.ImageName,
		Prompt:         in.Prompt,
		NegativePrompt: in.NegativePrompt,
		Steps:          in.Steps,
		GuidanceScale:  in.GuidanceScale,
		Seed:           in.Seed,
	}, "image/png")
}

type videoHandle struct{ *workerHandle }

func (h videoHandle) GenerateVideo(ctx context.Context, in types.VideoGenerateInput) (types.Media, error) {
	return h.w.postMedia(ctx, "/v1/video/generate", videoRequest{
		Handle:         h.ref,
		Prompt:         in.Prompt,
		NegativePrompt: in.NegativePrompt,
		Width:          in.Width,
		Height:         in.Height,
		NumFrames:      in.NumFrames,
		Steps:          in.Steps,
		GuidanceScale:  in.GuidanceScale,
		Seed:           in.Seed,
		Image:          in.Image,
		ImageName:      in.ImageName,
	}, "video/mp4")
}

type transcribeHandle struct{ *workerHandle }

func (h transcribeHandle) Transcribe(ctx context.Context, in types.TranscribeInput) (types.Transcript, error) {
	var out transcribeResponse
	err := h.w.postJSON(ctx, "/v1/audio/transcribe", transcribeRequest{
		Handle:    h.ref,
		Audio:     in.Audio,
		AudioName: in.AudioName,
		Language:  in.Language,
	}, &out)
	if err != nil {
		return types.Transcript{}, err
	}
	return types.Transcript{Text: out.Text, Language: out.Language}, nil
}

// newWorkerHandle picks the handle variant from what the worker reports,
// falling back to the capability implied by kind.
func newWorkerHandle(w *Worker, id, ref string, kind types.ModelKind, caps []string) manager.Handle {
	base := &workerHandle{w: w, id: id, ref: ref}
	switch pickCapability(kind, caps) {
	case manager.CapVoiceClone:
		return cloneHandle{base}
	case manager.CapCustomVoice:
		return customHandle{base}
	case manager.CapVoiceDesign:
		return designHandle{base}
	case manager.CapImage:
		return imageHandle{base}
	case manager.CapImageEdit:
		return imageEditHandle{base}
	case manager.CapVideo:
		return videoHandle{base}
	case manager.CapTranscribe:
		return transcribeHandle{base}
	default:
		return chatHandle{base}
	}
}

func pickCapability(kind types.ModelKind, caps []string) manager.Capability {
	for _, c := range caps {
		switch capability := manager.Capability(c); capability {
		case manager.CapVoiceClone, manager.CapCustomVoice, manager.CapVoiceDesign, manager.CapChat,
			manager.CapImage, manager.CapImageEdit, manager.CapVideo, manager.CapTranscribe:
			return capability
		}
	}
	return manager.CapabilityForKind(kind)
}
