package httpapi

import "time"

// maxBodyBytes caps request bodies, including multipart uploads.
var maxBodyBytes int64 = 64 << 20

// SetMaxBodyBytes allows configuring the maximum request body size.
func SetMaxBodyBytes(n int64) {
	if n <= 0 {
		maxBodyBytes = 64 << 20
		return
	}
	maxBodyBytes = n
}

// generationTimeout bounds generation requests (TTS and chat), including the
// time spent queued. Zero means no additional timeout.
var generationTimeout time.Duration

// SetGenerationTimeout sets the generation timeout (0 disables).
func SetGenerationTimeout(d time.Duration) {
	if d < 0 {
		d = 0
	}
	generationTimeout = d
}

// CORS configuration (opt-in). If disabled, no CORS middleware is added.
var (
	corsEnabled        bool
	corsAllowedOrigins []string
	corsAllowedMethods []string
	corsAllowedHeaders []string
)

// SetCORSOptions configures CORS behavior for the HTTP server.
func SetCORSOptions(enabled bool, origins, methods, headers []string) {
	corsEnabled = enabled
	corsAllowedOrigins = append([]string(nil), origins...)
	corsAllowedMethods = append([]string(nil), methods...)
	corsAllowedHeaders = append([]string(nil), headers...)
}
