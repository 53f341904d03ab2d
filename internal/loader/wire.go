package loader

import "genhost/pkg/types"

// codeUnsupportedFeature is the worker's error code for a rejected
// acceleration feature.
const codeUnsupportedFeature = "unsupported_feature"

type loadRequest struct {
	Model              string `json:"model"`
	Kind               string `json:"kind"`
	Device             string `json:"device"`
	DType              string `json:"dtype"`
	AttnImplementation string `json:"attn_implementation"`
	Quantization       string `json:"quantization"`
}

type loadResponse struct {
	Handle       string   `json:"handle"`
	Capabilities []string `json:"capabilities"`
}

type unloadRequest struct {
	Handle string `json:"handle"`
}

type errorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Feature string `json:"feature,omitempty"`
}

type cloneRequest struct {
	Handle       string `json:"handle"`
	Text         string `json:"text"`
	Language     string `json:"language"`
	RefText      string `json:"ref_text"`
	RefAudio     []byte `json:"ref_audio"`
	RefAudioName string `json:"ref_audio_name,omitempty"`
}

type customRequest struct {
	Handle   string `json:"handle"`
	Text     string `json:"text"`
	Language string `json:"language"`
	Speaker  string `json:"speaker"`
	Instruct string `json:"instruct,omitempty"`
}

type designRequest struct {
	Handle   string `json:"handle"`
	Text     string `json:"text"`
	Language string `json:"language"`
	Instruct string `json:"instruct"`
}

type chatRequest struct {
	Handle      string           `json:"handle"`
	Messages    []types.ChatTurn `json:"messages"`
	MaxTokens   int              `json:"max_tokens"`
	Temperature float64          `json:"temperature"`
	TopP        float64          `json:"top_p"`
}

type chatResponse struct {
	Text             string `json:"text"`
	PromptTokens     int    `json:"prompt_tokens"`
	CompletionTokens int    `json:"completion_tokens"`
}

type imageRequest struct {
	Handle         string  `json:"handle"`
	Prompt         string  `json:"prompt"`
	NegativePrompt string  `json:"negative_prompt"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Steps          int     `json:"num_inference_steps"`
	GuidanceScale  float64 `json:"guidance_scale"`
	Seed           int64   `json:"seed"`
}

type imageEditRequest struct {
	Handle         string  `json:"handle"`
	Image          []byte  `json:"image"`
	ImageName      string  `json:"image_name,omitempty"`
	Prompt         string  `json:"prompt"`
	NegativePrompt string  `json:"negative_prompt"`
	Steps          int     `json:"num_inference_steps"`
	GuidanceScale  float64 `json:"guidance_scale"`
	Seed           int64   `json:"seed"`
}

type videoRequest struct {
	Handle         string  `json:"handle"`
	Prompt         string  `json:"prompt"`
	NegativePrompt string  `json:"negative_prompt"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	NumFrames      int     `json:"num_frames"`
	Steps          int     `json:"num_inference_steps"`
	GuidanceScale  float64 `json:"guidance_scale"`
	Seed           int64   `json:"seed"`
	// Image conditions the first frame; empty means text-to-video.
	Image     []byte `json:"image,omitempty"`
	ImageName string `json:"image_name,omitempty"`
}

type transcribeRequest struct {
	Handle    string `json:"handle"`
	Audio     []byte `json:"audio"`
	AudioName string `json:"audio_name,omitempty"`
	Language  string `json:"language,omitempty"`
}

type transcribeResponse struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}
