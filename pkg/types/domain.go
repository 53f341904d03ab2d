package types

import "strings"

// ModelKind names the variant of a checkpoint and, through it, the
// generation capability the loaded model is expected to offer.
type ModelKind string

const (
	KindTTSBase   ModelKind = "tts_base"
	KindTTSCustom ModelKind = "tts_custom"
	KindTTSDesign ModelKind = "tts_design"
	KindChat      ModelKind = "chat"
	KindImage     ModelKind = "image"
	KindImageEdit ModelKind = "image_edit"
	KindVideo     ModelKind = "video"
	KindSTT       ModelKind = "stt"
)

// Valid reports whether k is one of the known kinds.
func (k ModelKind) Valid() bool {
	switch k {
	case KindTTSBase, KindTTSCustom, KindTTSDesign, KindChat,
		KindImage, KindImageEdit, KindVideo, KindSTT:
		return true
	}
	return false
}

// InferKind guesses the kind of a checkpoint from its identifier. Used when a
// model is requested that is not listed in the catalog.
func InferKind(id string) ModelKind {
	l := strings.ToLower(id)
	switch {
	case strings.Contains(l, "customvoice"):
		return KindTTSCustom
	case strings.Contains(l, "voicedesign"):
		return KindTTSDesign
	case strings.Contains(l, "tts"):
		return KindTTSBase
	case strings.Contains(l, "whisper"):
		return KindSTT
	case strings.Contains(l, "image-edit"), strings.Contains(l, "image_edit"):
		return KindImageEdit
	case strings.Contains(l, "image"), strings.Contains(l, "diffusion"):
		return KindImage
	case strings.Contains(l, "ltx"), strings.Contains(l, "video"):
		return KindVideo
	default:
		return KindChat
	}
}

// Model represents a loadable checkpoint known to the service.
type Model struct {
	// Stable identifier for the model (hub id or local file name).
	// example: Qwen/Qwen3-TTS-12Hz-1.7B-Base
	ID string `json:"id" example:"Qwen/Qwen3-TTS-12Hz-1.7B-Base"`
	// Human-friendly name.
	// example: Qwen3 TTS (base)
	Name string `json:"name" example:"Qwen3 TTS (base)"`
	// Variant of the checkpoint.
	// example: tts_base
	Kind ModelKind `json:"kind" example:"tts_base"`
	// Absolute path for models resolved from a local directory.
	// example: /home/user/models/qwen2.5-7b-instruct-q4_k_m.gguf
	Path string `json:"path,omitempty" example:"/home/user/models/qwen2.5-7b-instruct-q4_k_m.gguf"`
	// Quantization mode requested for this model, if any.
	// example: 4bit
	Quant string `json:"quant,omitempty" example:"4bit"`
}

// Audio is a rendered clip as returned by a speech model.
type Audio struct {
	Data        []byte
	ContentType string
}

// Media is a rendered image or video.
type Media struct {
	Data        []byte
	ContentType string
}

// ImageGenerateInput is a text-to-image request with its sampling knobs
// already defaulted.
type ImageGenerateInput struct {
	Prompt         string
	NegativePrompt string
	Width          int
	Height         int
	Steps          int
	GuidanceScale  float64
	Seed           int64
}

// ImageEditInput edits Image following Prompt.
type ImageEditInput struct {
	Image          []byte
	ImageName      string
	Prompt         string
	NegativePrompt string
	Steps          int
	GuidanceScale  float64
	Seed           int64
}

// VideoGenerateInput renders a clip from a prompt. A non-empty Image turns
// the request into image-to-video conditioned on that frame.
type VideoGenerateInput struct {
	Prompt         string
	NegativePrompt string
	Width          int
	Height         int
	NumFrames      int
	Steps          int
	GuidanceScale  float64
	Seed           int64
	Image          []byte
	ImageName      string
}

// TranscribeInput is a speech clip to turn into text.
type TranscribeInput struct {
	Audio     []byte
	AudioName string
	Language  string
}

// Transcript is the text recognized in a speech clip.
type Transcript struct {
	Text     string
	Language string
}

// OmniChatInput is a spoken or typed turn for the voice assistant. At least
// one of Text and Audio is set.
type OmniChatInput struct {
	Text      string
	Audio     []byte
	AudioName string
	Language  string
}

// VoiceCloneInput carries the parameters for cloning a reference voice.
type VoiceCloneInput struct {
	Text     string
	Language string
	RefText  string
	RefAudio []byte
	// RefAudioName is the uploaded file name, forwarded for format sniffing.
	RefAudioName string
}

// CustomVoiceInput selects one of the built-in speakers.
type CustomVoiceInput struct {
	Text     string
	Language string
	Speaker  string
	Instruct string
}

// VoiceDesignInput describes a new voice in natural language.
type VoiceDesignInput struct {
	Text     string
	Language string
	Instruct string
}

// ChatInput is a normalized conversation ready for a chat-capable model.
type ChatInput struct {
	Messages    []ChatTurn
	MaxTokens   int
	Temperature float64
	TopP        float64
}

// ChatTurn is one normalized message: text parts plus image URLs.
type ChatTurn struct {
	Role   string   `json:"role"`
	Text   []string `json:"text,omitempty"`
	Images []string `json:"images,omitempty"`
}

// ChatOutput is the assistant reply produced by a chat-capable model.
type ChatOutput struct {
	Text             string
	PromptTokens     int
	CompletionTokens int
}
