package manager

import (
	"fmt"
	"strings"

	"genhost/pkg/types"
)

// Device selects model placement.
type Device string

const (
	DeviceAccelerator Device = "accelerator"
	DeviceCPU         Device = "cpu"
)

// Precision is the numeric precision weights are loaded with.
type Precision string

const (
	PrecisionHalf Precision = "float16"
	PrecisionBF16 Precision = "bfloat16"
	PrecisionFull Precision = "float32"
)

// AttentionStrategy selects the attention implementation.
type AttentionStrategy string

const (
	AttentionOptimized AttentionStrategy = "optimized"
	AttentionDefault   AttentionStrategy = "default"
)

// ParseAttention accepts "", "optimized" and "default". The empty string
// means "let the device decide".
func ParseAttention(s string) (AttentionStrategy, error) {
	switch a := AttentionStrategy(strings.ToLower(strings.TrimSpace(s))); a {
	case "", AttentionOptimized, AttentionDefault:
		return a, nil
	default:
		return "", fmt.Errorf("unknown attention strategy %q (want optimized|default)", s)
	}
}

// Quantization is the weight quantization mode for chat models.
type Quantization string

const (
	QuantNone Quantization = "none"
	Quant4Bit Quantization = "4bit"
	Quant8Bit Quantization = "8bit"
)

// ParseQuantization accepts "", "none", "4bit" and "8bit".
func ParseQuantization(s string) (Quantization, error) {
	switch q := Quantization(strings.ToLower(strings.TrimSpace(s))); q {
	case "":
		return QuantNone, nil
	case QuantNone, Quant4Bit, Quant8Bit:
		return q, nil
	default:
		return "", fmt.Errorf("unknown quantization %q (want none|4bit|8bit)", s)
	}
}

// DeviceSettings are the process-wide inputs to every load. They are resolved
// once at startup and treated as read-only.
type DeviceSettings struct {
	Accelerator  bool
	Quantization Quantization
	// Attention is the preferred strategy; empty selects optimized on the
	// accelerator.
	Attention AttentionStrategy
}

// Device returns the placement implied by the settings.
func (s DeviceSettings) Device() Device {
	if s.Accelerator {
		return DeviceAccelerator
	}
	return DeviceCPU
}

// LoadConfig is what a Loader receives for one load attempt.
type LoadConfig struct {
	ModelID      string
	Kind         types.ModelKind
	Device       Device
	Precision    Precision
	Attention    AttentionStrategy
	Quantization Quantization
}

// ResolveLoadConfig derives the configuration for loading id. Half precision
// and optimized attention are only used on the accelerator; quantization only
// applies to chat models on the accelerator. Diffusion image pipelines load in
// bfloat16 and, like speech recognition, keep their own attention.
func ResolveLoadConfig(id string, kind types.ModelKind, s DeviceSettings) LoadConfig {
	cfg := LoadConfig{
		ModelID:      id,
		Kind:         kind,
		Device:       DeviceCPU,
		Precision:    PrecisionFull,
		Attention:    AttentionDefault,
		Quantization: QuantNone,
	}
	if !s.Accelerator {
		return cfg
	}
	cfg.Device = DeviceAccelerator
	cfg.Precision = PrecisionHalf
	cfg.Attention = AttentionOptimized
	if s.Attention == AttentionDefault {
		cfg.Attention = AttentionDefault
	}
	switch kind {
	case types.KindChat:
		if s.Quantization != "" {
			cfg.Quantization = s.Quantization
		}
	case types.KindImage, types.KindImageEdit:
		cfg.Precision = PrecisionBF16
		cfg.Attention = AttentionDefault
	case types.KindSTT:
		cfg.Attention = AttentionDefault
	}
	return cfg
}

// WithoutOptimizedAttention returns a copy of c that uses the default
// attention implementation.
func (c LoadConfig) WithoutOptimizedAttention() LoadConfig {
	c.Attention = AttentionDefault
	return c
}
