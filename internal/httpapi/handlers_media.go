package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"genhost/pkg/types"
)

// decodeJSON enforces the JSON content type and body limit. It writes the
// error response itself and reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// formFile reads an optional upload. A missing field or a urlencoded body
// yields nil data.
func formFile(r *http.Request, field string) ([]byte, string, error) {
	f, hdr, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, "", nil
		}
		return nil, "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", field, err)
	}
	return data, hdr.Filename, nil
}

// formNumbers parses the optional numeric sampling fields shared by the
// multipart media endpoints.
type formNumbers struct {
	r   *http.Request
	err error
}

func (f *formNumbers) int(key string) int {
	v := f.r.FormValue(key)
	if v == "" || f.err != nil {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		f.err = fmt.Errorf("%s must be an integer", key)
	}
	return n
}

func (f *formNumbers) float(key string) *float64 {
	v := f.r.FormValue(key)
	if v == "" || f.err != nil {
		return nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		f.err = fmt.Errorf("%s must be a number", key)
		return nil
	}
	return &n
}

func (f *formNumbers) int64(key string) *int64 {
	v := f.r.FormValue(key)
	if v == "" || f.err != nil {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		f.err = fmt.Errorf("%s must be an integer", key)
		return nil
	}
	return &n
}

func imageResponse(m types.Media) types.ImageResponse {
	mt := m.ContentType
	if mt == "" {
		mt = "image/png"
	}
	return types.ImageResponse{Image: m.Data, Format: "base64", MediaType: mt}
}

func videoResponse(m types.Media) types.VideoResponse {
	mt := m.ContentType
	if mt == "" {
		mt = "video/mp4"
	}
	return types.VideoResponse{Video: m.Data, Format: "base64", MediaType: mt}
}

// imageGenerate godoc
// @Summary      Generate an image
// @Description  Text-to-image. The image is returned base64 encoded.
// @Tags         image
// @Accept       json
// @Produce      json
// @Param        request  body      types.ImageGenerateRequest  true  "Prompt and sampling settings"
// @Success      200      {object}  types.ImageResponse
// @Failure      400      {object}  types.ErrorResponse
// @Failure      415      {object}  types.ErrorResponse
// @Failure      429      {object}  types.ErrorResponse
// @Failure      503      {object}  types.ErrorResponse
// @Router       /api/v1/image/generate [post]
func (h *handlers) imageGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.ImageGenerateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	ctx, cancel := generationContext(r.Context())
	defer cancel()
	img, err := h.svc.GenerateImage(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, imageResponse(img))
}

// imageEdit godoc
// @Summary      Edit an image
// @Description  Apply a natural-language edit to the uploaded image.
// @Tags         image
// @Accept       multipart/form-data
// @Produce      json
// @Param        file             formData  file    true   "Source image"
// @Param        prompt           formData  string  true   "Edit instruction"
// @Param        negative_prompt  formData  string  false  "Negative prompt"
// @Param        steps            formData  int     false  "Inference steps"  default(40)
// @Param        guidance_scale   formData  number  false  "Guidance scale"   default(4)
// @Param        seed             formData  int     false  "Seed"             default(42)
// @Success      200  {object}  types.ImageResponse
// @Failure      400  {object}  types.ErrorResponse
// @Failure      429  {object}  types.ErrorResponse
// @Router       /api/v1/image/edit [post]
func (h *handlers) imageEdit(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid form body")
		return
	}
	nums := &formNumbers{r: r}
	req := types.ImageEditRequest{
		Prompt:         r.FormValue("prompt"),
		NegativePrompt: r.FormValue("negative_prompt"),
		Steps:          nums.int("steps"),
		GuidanceScale:  nums.float("guidance_scale"),
		Seed:           nums.int64("seed"),
	}
	if nums.err != nil {
		writeJSONError(w, http.StatusBadRequest, nums.err.Error())
		return
	}
	data, name, err := formFile(r, "file")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.Image, req.ImageName = data, name
	ctx, cancel := generationContext(r.Context())
	defer cancel()
	img, err := h.svc.EditImage(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, imageResponse(img))
}

// videoGenerate godoc
// @Summary      Generate a video
// @Description  Text-to-video. The clip is returned base64 encoded.
// @Tags         video
// @Accept       json
// @Produce      json
// @Param        request  body      types.VideoGenerateRequest  true  "Prompt and sampling settings"
// @Success      200      {object}  types.VideoResponse
// @Failure      400      {object}  types.ErrorResponse
// @Failure      415      {object}  types.ErrorResponse
// @Failure      429      {object}  types.ErrorResponse
// @Router       /api/v1/video/generate [post]
func (h *handlers) videoGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.VideoGenerateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	ctx, cancel := generationContext(r.Context())
	defer cancel()
	clip, err := h.svc.GenerateVideo(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, videoResponse(clip))
}

// imageToVideo godoc
// @Summary      Animate an image
// @Description  Image-to-video conditioned on the uploaded frame.
// @Tags         video
// @Accept       multipart/form-data
// @Produce      json
// @Param        file                 formData  file    true   "Conditioning image"
// @Param        prompt               formData  string  true   "Prompt"
// @Param        negative_prompt      formData  string  false  "Negative prompt"
// @Param        width                formData  int     false  "Width"   default(768)
// @Param        height               formData  int     false  "Height"  default(512)
// @Param        num_frames           formData  int     false  "Frames"  default(121)
// @Param        num_inference_steps  formData  int     false  "Steps"   default(50)
// @Param        guidance_scale       formData  number  false  "Guidance scale"  default(3)
// @Param        seed                 formData  int     false  "Seed"    default(42)
// @Success      200  {object}  types.VideoResponse
// @Failure      400  {object}  types.ErrorResponse
// @Failure      429  {object}  types.ErrorResponse
// @Router       /api/v1/video/image-to-video [post]
func (h *handlers) imageToVideo(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid form body")
		return
	}
	nums := &formNumbers{r: r}
	req := types.VideoGenerateRequest{
		Prompt:            r.FormValue("prompt"),
		NegativePrompt:    r.FormValue("negative_prompt"),
		Width:             nums.int("width"),
		Height:            nums.int("height"),
		NumFrames:         nums.int("num_frames"),
		NumInferenceSteps: nums.int("num_inference_steps"),
		GuidanceScale:     nums.float("guidance_scale"),
		Seed:              nums.int64("seed"),
	}
	if nums.err != nil {
		writeJSONError(w, http.StatusBadRequest, nums.err.Error())
		return
	}
	data, name, err := formFile(r, "file")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(data) == 0 {
		writeJSONError(w, http.StatusBadRequest, "file is required")
		return
	}
	req.Image, req.ImageName = data, name
	ctx, cancel := generationContext(r.Context())
	defer cancel()
	clip, err := h.svc.GenerateVideo(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, videoResponse(clip))
}

// omniChat godoc
// @Summary      Voice chat
// @Description  Answer a typed or spoken turn with text and synthesized speech.
// @Tags         omni
// @Accept       multipart/form-data
// @Produce      json
// @Param        text      formData  string  false  "Typed message"
// @Param        audio     formData  file    false  "Spoken message"
// @Param        language  formData  string  false  "Reply language"  default(English)
// @Success      200  {object}  types.OmniChatResponse
// @Failure      400  {object}  types.ErrorResponse
// @Failure      429  {object}  types.ErrorResponse
// @Router       /api/v1/omni/chat [post]
func (h *handlers) omniChat(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid form body")
		return
	}
	data, name, err := formFile(r, "audio")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := generationContext(r.Context())
	defer cancel()
	resp, err := h.svc.OmniChat(ctx, types.OmniChatInput{
		Text:      r.FormValue("text"),
		Audio:     data,
		AudioName: name,
		Language:  r.FormValue("language"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
