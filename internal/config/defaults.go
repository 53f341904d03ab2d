package config

// Default returns the configuration used when nothing else is specified.
func Default() Config {
	return Config{
		Addr:           ":8080",
		LogLevel:       "info",
		LogFormat:      "json",
		Loader:         "worker",
		WorkerURL:      "http://127.0.0.1:9000",
		Accelerator:    "auto",
		Quantization:   "4bit",
		TTSBaseModel:   "Qwen/Qwen3-TTS-12Hz-1.7B-Base",
		TTSCustomModel: "Qwen/Qwen3-TTS-12Hz-1.7B-CustomVoice",
		TTSDesignModel: "Qwen/Qwen3-TTS-12Hz-1.7B-VoiceDesign",
		ChatModel:      "Qwen/Qwen3-VL-32B-Thinking",
		ImageModel:     "Qwen/Qwen-Image-2512",
		ImageEditModel: "Qwen/Qwen-Image-Edit-2511",
		VideoModel:     "Lightricks/LTX-2",
		STTModel:       "Systran/faster-whisper-base",
		MaxQueueDepth:  32,
		MaxWaitSeconds: 30,
		MaxBodyBytes:   64 << 20,
		LlamaCtx:       4096,
		LlamaThreads:   4,
	}
}
