package service

import (
	"context"
	"strings"

	"genhost/internal/manager"
	"genhost/pkg/types"
)

// Image sampling defaults.
const (
	defaultImageNegative  = " "
	defaultImageSize      = 1024
	defaultImageSteps     = 50
	defaultImageEditSteps = 40
	defaultImageGuidance  = 4.0
	defaultSeed           = 42
)

// Video sampling defaults.
const (
	defaultVideoNegative  = "worst quality, inconsistent motion, blurry, jittery, distorted"
	defaultVideoWidth     = 768
	defaultVideoHeight    = 512
	defaultVideoFrames    = 121
	defaultVideoSteps     = 50
	defaultVideoGuidance  = 3.0
	maxVideoFrames        = 257
	maxGenerationPixelDim = 4096
)

func orInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func orString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orFloat(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func orSeed(v *int64) int64 {
	if v == nil {
		return defaultSeed
	}
	return *v
}

func checkDims(w, h int) error {
	if w < 0 || h < 0 || w > maxGenerationPixelDim || h > maxGenerationPixelDim {
		return errInvalid("width and height must be between 1 and 4096")
	}
	return nil
}

// GenerateImage renders a prompt with the text-to-image model.
func (s *Service) GenerateImage(ctx context.Context, req types.ImageGenerateRequest) (types.Media, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return types.Media{}, errInvalid("prompt is required")
	}
	if err := checkDims(req.Width, req.Height); err != nil {
		return types.Media{}, err
	}
	in := types.ImageGenerateInput{
		Prompt:         req.Prompt,
		NegativePrompt: orString(req.NegativePrompt, defaultImageNegative),
		Width:          orInt(req.Width, defaultImageSize),
		Height:         orInt(req.Height, defaultImageSize),
		Steps:          orInt(req.Steps, defaultImageSteps),
		GuidanceScale:  orFloat(req.GuidanceScale, defaultImageGuidance),
		Seed:           orSeed(req.Seed),
	}
	var out types.Media
	err := s.mgr.Do(ctx, s.models.Image, s.mgr.Settings(), func(h manager.Handle) error {
		g, err := manager.AsImageGenerator(h)
		if err != nil {
			return err
		}
		out, err = g.GenerateImage(ctx, in)
		return err
	})
	return out, err
}

// EditImage applies a natural-language edit to the uploaded image.
func (s *Service) EditImage(ctx context.Context, req types.ImageEditRequest) (types.Media, error) {
	switch {
	case strings.TrimSpace(req.Prompt) == "":
		return types.Media{}, errInvalid("prompt is required")
	case len(req.Image) == 0:
		return types.Media{}, errInvalid("file is required")
	}
	in := types.ImageEditInput{
		Image:          req.Image,
		ImageName:      req.ImageName,
		Prompt:         req.Prompt,
		NegativePrompt: orString(req.NegativePrompt, defaultImageNegative),
		Steps:          orInt(req.Steps, defaultImageEditSteps),
		GuidanceScale:  orFloat(req.GuidanceScale, defaultImageGuidance),
		Seed:           orSeed(req.Seed),
	}
	var out types.Media
	err := s.mgr.Do(ctx, s.models.ImageEdit, s.mgr.Settings(), func(h manager.Handle) error {
		e, err := manager.AsImageEditor(h)
		if err != nil {
			return err
		}
		out, err = e.EditImage(ctx, in)
		return err
	})
	return out, err
}

// GenerateVideo renders a clip from a prompt, conditioned on req.Image when
// one is attached.
func (s *Service) GenerateVideo(ctx context.Context, req types.VideoGenerateRequest) (types.Media, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return types.Media{}, errInvalid("prompt is required")
	}
	if err := checkDims(req.Width, req.Height); err != nil {
		return types.Media{}, err
	}
	if req.NumFrames < 0 || req.NumFrames > maxVideoFrames {
		return types.Media{}, errInvalid("num_frames must be between 1 and 257")
	}
	in := types.VideoGenerateInput{
		Prompt:         req.Prompt,
		NegativePrompt: orString(req.NegativePrompt, defaultVideoNegative),
		Width:          orInt(req.Width, defaultVideoWidth),
		Height:         orInt(req.Height, defaultVideoHeight),
		NumFrames:      orInt(req.NumFrames, defaultVideoFrames),
		Steps:          orInt(req.NumInferenceSteps, defaultVideoSteps),
		GuidanceScale:  orFloat(req.GuidanceScale, defaultVideoGuidance),
		Seed:           orSeed(req.Seed),
		Image:          req.Image,
		ImageName:      req.ImageName,
	}
	var out types.Media
	err := s.mgr.Do(ctx, s.models.Video, s.mgr.Settings(), func(h manager.Handle) error {
		v, err := manager.AsVideoGenerator(h)
		if err != nil {
			return err
		}
		out, err = v.GenerateVideo(ctx, in)
		return err
	})
	return out, err
}
