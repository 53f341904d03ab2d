package types

// ModelsResponse wraps the list of models returned by GET /models.
type ModelsResponse struct {
	// List of known models.
	Models []Model `json:"models"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// SwitchRequest asks the server to make a model resident in the background.
type SwitchRequest struct {
	// Identifier of the model to load.
	// example: Qwen/Qwen3-TTS-12Hz-1.7B-CustomVoice
	Model string `json:"model" example:"Qwen/Qwen3-TTS-12Hz-1.7B-CustomVoice"`
}

// SwitchResponse is returned by POST /switch.
type SwitchResponse struct {
	// Operation id; poll /status to observe the transition.
	// example: 5f0c6a4e-0d43-4a4e-9a53-1c0f3f2b7b8e
	OpID string `json:"op_id" example:"5f0c6a4e-0d43-4a4e-9a53-1c0f3f2b7b8e"`
	// Requested model.
	Model string `json:"model"`
}

// CurrentModel describes the resident model in /status.
type CurrentModel struct {
	// example: Qwen/Qwen3-TTS-12Hz-1.7B-Base
	ID string `json:"id" example:"Qwen/Qwen3-TTS-12Hz-1.7B-Base"`
	// example: tts_base
	Kind ModelKind `json:"kind" example:"tts_base"`
	// example: accelerator
	Device string `json:"device" example:"accelerator"`
	// example: float16
	Precision string `json:"precision" example:"float16"`
	// example: optimized
	Attention string `json:"attention" example:"optimized"`
	// example: 4bit
	Quantization string `json:"quantization,omitempty" example:"4bit"`
	// Unix seconds when the model became resident.
	// example: 1700000000
	LoadedAt int64 `json:"loaded_at_unix" example:"1700000000"`
}

// HostMemory reports host RAM as seen after the last reclamation pass.
type HostMemory struct {
	TotalBytes     uint64  `json:"total_bytes"`
	AvailableBytes uint64  `json:"available_bytes"`
	UsedPercent    float64 `json:"used_percent"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Lifecycle state of the manager (empty, loading, ready, error).
	// example: ready
	State string `json:"state" example:"ready"`
	// Resident model, absent when nothing is loaded.
	Current *CurrentModel `json:"current,omitempty"`
	// Device the manager loads onto.
	// example: accelerator
	Device string `json:"device" example:"accelerator"`
	// Last load error observed by the manager (if any).
	LastError string `json:"last_error,omitempty"`
	// Requests waiting for the device. The generation currently running is
	// not counted.
	// example: 0
	QueueLen int `json:"queue_len" example:"0"`
	// Maximum admitted requests, the running one included, before
	// backpressure triggers.
	// example: 32
	MaxQueueDepth int `json:"max_queue_depth" example:"32"`
	// Total number of successful model loads.
	// example: 12
	LoadsTotal uint64 `json:"loads_total" example:"12"`
	// Total number of releases performed on swap or unload.
	// example: 11
	ReleasesTotal uint64 `json:"releases_total" example:"11"`
	// Loads that needed the default attention fallback.
	// example: 1
	FallbacksTotal uint64 `json:"fallbacks_total" example:"1"`
	// Host memory snapshot; omitted if it could not be read.
	HostMemory *HostMemory `json:"host_memory,omitempty"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}

// ChatCompletionRequest is the OpenAI-style payload for POST /v1/chat/completions.
type ChatCompletionRequest struct {
	// example: Qwen/Qwen3-VL-32B-Thinking
	Model    string        `json:"model" example:"Qwen/Qwen3-VL-32B-Thinking"`
	Messages []ChatMessage `json:"messages"`
	// example: 1024
	MaxTokens *int `json:"max_tokens,omitempty" example:"1024"`
	// example: 0.7
	Temperature *float64 `json:"temperature,omitempty" example:"0.7"`
	// example: 0.9
	TopP *float64 `json:"top_p,omitempty" example:"0.9"`
	// Streaming is not implemented; true yields 501.
	Stream bool `json:"stream,omitempty"`
}

// ChatCompletionResponse mirrors the OpenAI chat.completion object.
type ChatCompletionResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
	Usage   ChatUsage    `json:"usage"`
}

// ChatChoice is a single completion choice.
type ChatChoice struct {
	Index        int           `json:"index"`
	Message      AssistantTurn `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

// AssistantTurn is the generated reply.
type AssistantTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatUsage contains token accounting; -1 means the runtime did not report it.
type ChatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ImageGenerateRequest is the body of POST /api/v1/image/generate. Unset
// fields take the service defaults.
type ImageGenerateRequest struct {
	// example: A red fox in fresh snow, golden hour
	Prompt string `json:"prompt" example:"A red fox in fresh snow, golden hour"`
	// example: blurry
	NegativePrompt string `json:"negative_prompt,omitempty" example:"blurry"`
	// example: 1024
	Width int `json:"width,omitempty" example:"1024"`
	// example: 1024
	Height int `json:"height,omitempty" example:"1024"`
	// example: 50
	Steps int `json:"steps,omitempty" example:"50"`
	// example: 4
	GuidanceScale *float64 `json:"guidance_scale,omitempty" example:"4"`
	// example: 42
	Seed *int64 `json:"seed,omitempty" example:"42"`
}

// ImageEditRequest is the multipart form of POST /api/v1/image/edit.
type ImageEditRequest struct {
	Prompt         string
	NegativePrompt string
	Steps          int
	GuidanceScale  *float64
	Seed           *int64
	// Image is the uploaded source image.
	Image     []byte
	ImageName string
}

// VideoGenerateRequest is the body of POST /api/v1/video/generate. The
// image-to-video form carries the conditioning frame in Image.
type VideoGenerateRequest struct {
	// example: A paper boat drifting down a rainy street
	Prompt string `json:"prompt" example:"A paper boat drifting down a rainy street"`
	// example: blurry, jittery
	NegativePrompt string `json:"negative_prompt,omitempty" example:"blurry, jittery"`
	// example: 768
	Width int `json:"width,omitempty" example:"768"`
	// example: 512
	Height int `json:"height,omitempty" example:"512"`
	// example: 121
	NumFrames int `json:"num_frames,omitempty" example:"121"`
	// example: 50
	NumInferenceSteps int `json:"num_inference_steps,omitempty" example:"50"`
	// example: 3
	GuidanceScale *float64 `json:"guidance_scale,omitempty" example:"3"`
	// example: 42
	Seed *int64 `json:"seed,omitempty" example:"42"`

	Image     []byte `json:"-"`
	ImageName string `json:"-"`
}

// ImageResponse carries a generated image. Image is base64 encoded on the
// wire.
type ImageResponse struct {
	Image []byte `json:"image" swaggertype:"string" format:"base64"`
	// example: base64
	Format string `json:"format" example:"base64"`
	// example: image/png
	MediaType string `json:"media_type" example:"image/png"`
}

// VideoResponse carries a generated clip. Video is base64 encoded on the
// wire.
type VideoResponse struct {
	Video []byte `json:"video" swaggertype:"string" format:"base64"`
	// example: base64
	Format string `json:"format" example:"base64"`
	// example: video/mp4
	MediaType string `json:"media_type" example:"video/mp4"`
}

// OmniChatResponse is the spoken reply of POST /api/v1/omni/chat.
type OmniChatResponse struct {
	// Reply text.
	Text string `json:"text"`
	// Text recognized in the uploaded audio, if any.
	Transcript string `json:"transcript,omitempty"`
	// Reply audio, base64 encoded on the wire.
	Audio []byte `json:"audio" swaggertype:"string" format:"base64"`
	// example: audio/wav
	MediaType string `json:"media_type" example:"audio/wav"`
}
