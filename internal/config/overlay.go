package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. GENHOST_ADDR.
const EnvPrefix = "GENHOST"

// Overlay applies environment variables and any flags bound to v on top of
// cfg. Precedence is flag > env > cfg.
func Overlay(cfg Config, v *viper.Viper) (Config, error) {
	for k, val := range settings(cfg) {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// Names used by earlier chat deployments.
	_ = v.BindEnv("chat_model", EnvPrefix+"_CHAT_MODEL", "LLM_MODEL_ID")
	_ = v.BindEnv("quantization", EnvPrefix+"_QUANTIZATION", "LLM_QUANTIZATION")
	_ = v.BindEnv("video_model", EnvPrefix+"_VIDEO_MODEL", "LTX_MODEL_PATH")

	var out Config
	if err := v.Unmarshal(&out); err != nil {
		return cfg, err
	}
	return out, nil
}

// settings flattens cfg into viper keys.
func settings(c Config) map[string]any {
	return map[string]any{
		"addr":                       c.Addr,
		"log_level":                  c.LogLevel,
		"log_format":                 c.LogFormat,
		"loader":                     c.Loader,
		"worker_url":                 c.WorkerURL,
		"accelerator":                c.Accelerator,
		"quantization":               c.Quantization,
		"attention":                  c.Attention,
		"tts_base_model":             c.TTSBaseModel,
		"tts_custom_model":           c.TTSCustomModel,
		"tts_design_model":           c.TTSDesignModel,
		"chat_model":                 c.ChatModel,
		"image_model":                c.ImageModel,
		"image_edit_model":           c.ImageEditModel,
		"video_model":                c.VideoModel,
		"stt_model":                  c.STTModel,
		"default_model":              c.DefaultModel,
		"models_dir":                 c.ModelsDir,
		"models":                     c.Models,
		"max_queue_depth":            c.MaxQueueDepth,
		"max_wait_seconds":           c.MaxWaitSeconds,
		"max_body_bytes":             c.MaxBodyBytes,
		"generation_timeout_seconds": c.GenerationTimeoutSeconds,
		"cors_origins":               c.CORSOrigins,
		"lock_file":                  c.LockFile,
		"llama_ctx":                  c.LlamaCtx,
		"llama_threads":              c.LlamaThreads,
		"llama_gpu_layers":           c.LlamaGPULayers,
	}
}
