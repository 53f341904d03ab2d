package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"genhost/pkg/types"
)

// Config holds runtime parameters for the service.
type Config struct {
	Addr      string `json:"addr" yaml:"addr" toml:"addr" mapstructure:"addr"`
	LogLevel  string `json:"log_level" yaml:"log_level" toml:"log_level" mapstructure:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format" toml:"log_format" mapstructure:"log_format"`

	// Loader selects the backend: "worker" (HTTP inference worker) or "llama"
	// (in-process llama.cpp, GGUF chat models only).
	Loader    string `json:"loader" yaml:"loader" toml:"loader" mapstructure:"loader"`
	WorkerURL string `json:"worker_url" yaml:"worker_url" toml:"worker_url" mapstructure:"worker_url"`

	// Accelerator is "auto", "true" or "false".
	Accelerator  string `json:"accelerator" yaml:"accelerator" toml:"accelerator" mapstructure:"accelerator"`
	Quantization string `json:"quantization" yaml:"quantization" toml:"quantization" mapstructure:"quantization"`
	Attention    string `json:"attention" yaml:"attention" toml:"attention" mapstructure:"attention"`

	TTSBaseModel   string `json:"tts_base_model" yaml:"tts_base_model" toml:"tts_base_model" mapstructure:"tts_base_model"`
	TTSCustomModel string `json:"tts_custom_model" yaml:"tts_custom_model" toml:"tts_custom_model" mapstructure:"tts_custom_model"`
	TTSDesignModel string `json:"tts_design_model" yaml:"tts_design_model" toml:"tts_design_model" mapstructure:"tts_design_model"`
	ChatModel      string `json:"chat_model" yaml:"chat_model" toml:"chat_model" mapstructure:"chat_model"`
	ImageModel     string `json:"image_model" yaml:"image_model" toml:"image_model" mapstructure:"image_model"`
	ImageEditModel string `json:"image_edit_model" yaml:"image_edit_model" toml:"image_edit_model" mapstructure:"image_edit_model"`
	VideoModel     string `json:"video_model" yaml:"video_model" toml:"video_model" mapstructure:"video_model"`
	// STTModel transcribes speech for the voice chat endpoint.
	STTModel string `json:"stt_model" yaml:"stt_model" toml:"stt_model" mapstructure:"stt_model"`
	// DefaultModel is loaded at startup when set.
	DefaultModel string        `json:"default_model" yaml:"default_model" toml:"default_model" mapstructure:"default_model"`
	ModelsDir    string        `json:"models_dir" yaml:"models_dir" toml:"models_dir" mapstructure:"models_dir"`
	Models       []types.Model `json:"models" yaml:"models" toml:"models" mapstructure:"models"`

	MaxQueueDepth  int      `json:"max_queue_depth" yaml:"max_queue_depth" toml:"max_queue_depth" mapstructure:"max_queue_depth"`
	MaxWaitSeconds int      `json:"max_wait_seconds" yaml:"max_wait_seconds" toml:"max_wait_seconds" mapstructure:"max_wait_seconds"`
	MaxBodyBytes   int64    `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes" mapstructure:"max_body_bytes"`
	CORSOrigins    []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins" mapstructure:"cors_origins"`
	LockFile       string   `json:"lock_file" yaml:"lock_file" toml:"lock_file" mapstructure:"lock_file"`

	// GenerationTimeoutSeconds bounds a generation request end to end,
	// including time queued. 0 disables.
	GenerationTimeoutSeconds int `json:"generation_timeout_seconds" yaml:"generation_timeout_seconds" toml:"generation_timeout_seconds" mapstructure:"generation_timeout_seconds"`

	LlamaCtx       int `json:"llama_ctx" yaml:"llama_ctx" toml:"llama_ctx" mapstructure:"llama_ctx"`
	LlamaThreads   int `json:"llama_threads" yaml:"llama_threads" toml:"llama_threads" mapstructure:"llama_threads"`
	LlamaGPULayers int `json:"llama_gpu_layers" yaml:"llama_gpu_layers" toml:"llama_gpu_layers" mapstructure:"llama_gpu_layers"`
}

// Load reads a configuration file based on its extension on top of Default().
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".json":
		err = json.Unmarshal(b, &cfg)
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
