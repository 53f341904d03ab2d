package manager

import (
	"context"

	"genhost/pkg/types"
)

// Handle is an opaque reference to a resident model. The Manager owns it; a
// caller must not use a handle after the next swap.
type Handle interface {
	// ID returns the identifier the handle was loaded for.
	ID() string
	// Close drops the runtime's reference to the model.
	Close() error
}

// Capability names a generation operation a handle may offer.
type Capability string

const (
	CapVoiceClone  Capability = "voice_clone"
	CapCustomVoice Capability = "custom_voice"
	CapVoiceDesign Capability = "voice_design"
	CapChat        Capability = "chat"
	CapImage       Capability = "image_generate"
	CapImageEdit   Capability = "image_edit"
	CapVideo       Capability = "video_generate"
	CapTranscribe  Capability = "transcribe"
)

// VoiceCloner is offered by base TTS checkpoints.
type VoiceCloner interface {
	Handle
	CloneVoice(ctx context.Context, in types.VoiceCloneInput) (types.Audio, error)
}

// CustomVoicer is offered by custom-voice TTS checkpoints.
type CustomVoicer interface {
	Handle
	CustomVoice(ctx context.Context, in types.CustomVoiceInput) (types.Audio, error)
}

// VoiceDesigner is offered by voice-design TTS checkpoints.
type VoiceDesigner interface {
	Handle
	DesignVoice(ctx context.Context, in types.VoiceDesignInput) (types.Audio, error)
}

// ChatCompleter is offered by chat and vision-language checkpoints.
type ChatCompleter interface {
	Handle
	Chat(ctx context.Context, in types.ChatInput) (types.ChatOutput, error)
}

// ImageGenerator is offered by text-to-image checkpoints.
type ImageGenerator interface {
	Handle
	GenerateImage(ctx context.Context, in types.ImageGenerateInput) (types.Media, error)
}

// ImageEditor is offered by instruction-driven image editing checkpoints.
type ImageEditor interface {
	Handle
	EditImage(ctx context.Context, in types.ImageEditInput) (types.Media, error)
}

// VideoGenerator is offered by video checkpoints. The same handle serves
// text-to-video and image-to-video.
type VideoGenerator interface {
	Handle
	GenerateVideo(ctx context.Context, in types.VideoGenerateInput) (types.Media, error)
}

// Transcriber is offered by speech recognition checkpoints.
type Transcriber interface {
	Handle
	Transcribe(ctx context.Context, in types.TranscribeInput) (types.Transcript, error)
}

// CapabilityForKind returns the capability a model of kind k is loaded for.
func CapabilityForKind(k types.ModelKind) Capability {
	switch k {
	case types.KindTTSBase:
		return CapVoiceClone
	case types.KindTTSCustom:
		return CapCustomVoice
	case types.KindTTSDesign:
		return CapVoiceDesign
	case types.KindImage:
		return CapImage
	case types.KindImageEdit:
		return CapImageEdit
	case types.KindVideo:
		return CapVideo
	case types.KindSTT:
		return CapTranscribe
	default:
		return CapChat
	}
}

// Capabilities lists what h implements.
func Capabilities(h Handle) []Capability {
	var out []Capability
	if _, ok := h.(VoiceCloner); ok {
		out = append(out, CapVoiceClone)
	}
	if _, ok := h.(CustomVoicer); ok {
		out = append(out, CapCustomVoice)
	}
	if _, ok := h.(VoiceDesigner); ok {
		out = append(out, CapVoiceDesign)
	}
	if _, ok := h.(ChatCompleter); ok {
		out = append(out, CapChat)
	}
	if _, ok := h.(ImageGenerator); ok {
		out = append(out, CapImage)
	}
	if _, ok := h.(ImageEditor); ok {
		out = append(out, CapImageEdit)
	}
	if _, ok := h.(VideoGenerator); ok {
		out = append(out, CapVideo)
	}
	if _, ok := h.(Transcriber); ok {
		out = append(out, CapTranscribe)
	}
	return out
}

func AsVoiceCloner(h Handle) (VoiceCloner, error) {
	if v, ok := h.(VoiceCloner); ok {
		return v, nil
	}
	return nil, ErrUnsupportedOperation(h.ID(), CapVoiceClone)
}

func AsCustomVoicer(h Handle) (CustomVoicer, error) {
	if v, ok := h.(CustomVoicer); ok {
		return v, nil
	}
	return nil, ErrUnsupportedOperation(h.ID(), CapCustomVoice)
}

func AsVoiceDesigner(h Handle) (VoiceDesigner, error) {
	if v, ok := h.(VoiceDesigner); ok {
		return v, nil
	}
	return nil, ErrUnsupportedOperation(h.ID(), CapVoiceDesign)
}

func AsChatCompleter(h Handle) (ChatCompleter, error) {
	if v, ok := h.(ChatCompleter); ok {
		return v, nil
	}
	return nil, ErrUnsupportedOperation(h.ID(), CapChat)
}

func AsImageGenerator(h Handle) (ImageGenerator, error) {
	if v, ok := h.(ImageGenerator); ok {
		return v, nil
	}
	return nil, ErrUnsupportedOperation(h.ID(), CapImage)
}

func AsImageEditor(h Handle) (ImageEditor, error) {
	if v, ok := h.(ImageEditor); ok {
		return v, nil
	}
	return nil, ErrUnsupportedOperation(h.ID(), CapImageEdit)
}

func AsVideoGenerator(h Handle) (VideoGenerator, error) {
	if v, ok := h.(VideoGenerator); ok {
		return v, nil
	}
	return nil, ErrUnsupportedOperation(h.ID(), CapVideo)
}

func AsTranscriber(h Handle) (Transcriber, error) {
	if v, ok := h.(Transcriber); ok {
		return v, nil
	}
	return nil, ErrUnsupportedOperation(h.ID(), CapTranscribe)
}
