package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"genhost/internal/manager"
	"genhost/pkg/types"
)

// Validate rejects unknown enum values and impossible limits.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("addr must not be empty"))
	}
	switch c.Loader {
	case "worker":
		if c.WorkerURL == "" {
			errs = append(errs, errors.New("worker_url is required for the worker loader"))
		}
	case "llama":
	default:
		errs = append(errs, fmt.Errorf("unknown loader %q (want worker|llama)", c.Loader))
	}
	if _, _, err := c.AcceleratorMode(); err != nil {
		errs = append(errs, err)
	}
	if _, err := manager.ParseQuantization(c.Quantization); err != nil {
		errs = append(errs, err)
	}
	if _, err := manager.ParseAttention(c.Attention); err != nil {
		errs = append(errs, err)
	}
	if c.MaxQueueDepth < 0 || c.MaxWaitSeconds < 0 || c.MaxBodyBytes < 0 || c.GenerationTimeoutSeconds < 0 {
		errs = append(errs, errors.New("queue and body limits must not be negative"))
	}
	return errors.Join(errs...)
}

// AcceleratorMode parses Accelerator. auto is true when detection should
// decide; otherwise on carries the forced value.
func (c Config) AcceleratorMode() (auto, on bool, err error) {
	v := strings.ToLower(strings.TrimSpace(c.Accelerator))
	if v == "" || v == "auto" {
		return true, false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false, fmt.Errorf("accelerator must be auto, true or false, got %q", c.Accelerator)
	}
	return false, b, nil
}

// DeviceSettings resolves the manager's device inputs once the accelerator
// question has been answered.
func (c Config) DeviceSettings(accelerator bool) (manager.DeviceSettings, error) {
	q, err := manager.ParseQuantization(c.Quantization)
	if err != nil {
		return manager.DeviceSettings{}, err
	}
	a, err := manager.ParseAttention(c.Attention)
	if err != nil {
		return manager.DeviceSettings{}, err
	}
	return manager.DeviceSettings{Accelerator: accelerator, Quantization: q, Attention: a}, nil
}

// MaxWait returns MaxWaitSeconds as a duration.
func (c Config) MaxWait() time.Duration { return time.Duration(c.MaxWaitSeconds) * time.Second }

// GenerationTimeout returns GenerationTimeoutSeconds as a duration.
func (c Config) GenerationTimeout() time.Duration {
	return time.Duration(c.GenerationTimeoutSeconds) * time.Second
}

// ModelEntries returns the configured catalog entries followed by the
// capability models that are not listed explicitly. Quantization is only
// recorded on the chat entry when loading onto the accelerator.
func (c Config) ModelEntries(accelerator bool) []types.Model {
	out := append([]types.Model(nil), c.Models...)
	listed := make(map[string]bool, len(out))
	for _, m := range out {
		listed[m.ID] = true
	}
	add := func(id string, kind types.ModelKind, quant string) {
		if id == "" || listed[id] {
			return
		}
		listed[id] = true
		out = append(out, types.Model{ID: id, Name: id, Kind: kind, Quant: quant})
	}
	add(c.TTSBaseModel, types.KindTTSBase, "")
	add(c.TTSCustomModel, types.KindTTSCustom, "")
	add(c.TTSDesignModel, types.KindTTSDesign, "")
	chatQuant := ""
	if q, err := manager.ParseQuantization(c.Quantization); err == nil && accelerator && q != manager.QuantNone {
		chatQuant = string(q)
	}
	add(c.ChatModel, types.KindChat, chatQuant)
	add(c.ImageModel, types.KindImage, "")
	add(c.ImageEditModel, types.KindImageEdit, "")
	add(c.VideoModel, types.KindVideo, "")
	add(c.STTModel, types.KindSTT, "")
	return out
}
