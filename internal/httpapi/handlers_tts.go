package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"genhost/pkg/types"
)

// maxMemoryMultipart is kept in memory; larger uploads spill to temp files.
const maxMemoryMultipart = 32 << 20

type handlers struct {
	svc Service
}

// parseForm accepts multipart and urlencoded bodies.
func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := r.ParseMultipartForm(maxMemoryMultipart)
	if errors.Is(err, http.ErrNotMultipart) {
		err = r.ParseForm()
	}
	return err
}

func writeAudio(w http.ResponseWriter, a types.Audio) {
	ct := a.ContentType
	if ct == "" {
		ct = "audio/wav"
	}
	w.Header().Set("Content-Type", ct)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(a.Data)
}

// ttsClone godoc
// @Summary      Clone a voice
// @Description  Speak text in the voice of a reference recording.
// @Tags         tts
// @Accept       multipart/form-data
// @Produce      audio/wav
// @Param        text      formData  string  true   "Text to speak"
// @Param        ref_text  formData  string  true   "Transcript of the reference audio"
// @Param        language  formData  string  false  "Language"  default(English)
// @Param        ref_audio formData  file    true   "Reference audio"
// @Success      200  {file}    binary
// @Failure      400  {object}  types.ErrorResponse
// @Failure      429  {object}  types.ErrorResponse
// @Failure      503  {object}  types.ErrorResponse
// @Router       /api/v1/tts/clone [post]
func (h *handlers) ttsClone(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid form body")
		return
	}
	in := types.VoiceCloneInput{
		Text:     r.FormValue("text"),
		RefText:  r.FormValue("ref_text"),
		Language: r.FormValue("language"),
	}
	if f, hdr, err := r.FormFile("ref_audio"); err == nil {
		data, rerr := io.ReadAll(f)
		_ = f.Close()
		if rerr != nil {
			writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("read ref_audio: %v", rerr))
			return
		}
		in.RefAudio = data
		in.RefAudioName = hdr.Filename
	}
	ctx, cancel := generationContext(r.Context())
	defer cancel()
	a, err := h.svc.CloneVoice(ctx, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeAudio(w, a)
}

// ttsDesign godoc
// @Summary      Design a voice
// @Description  Speak text with a voice described in natural language.
// @Tags         tts
// @Accept       multipart/form-data
// @Produce      audio/wav
// @Param        text      formData  string  true   "Text to speak"
// @Param        instruct  formData  string  true   "Voice description"
// @Param        language  formData  string  false  "Language"  default(English)
// @Success      200  {file}    binary
// @Failure      400  {object}  types.ErrorResponse
// @Router       /api/v1/tts/design [post]
func (h *handlers) ttsDesign(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid form body")
		return
	}
	ctx, cancel := generationContext(r.Context())
	defer cancel()
	a, err := h.svc.DesignVoice(ctx, types.VoiceDesignInput{
		Text:     r.FormValue("text"),
		Instruct: r.FormValue("instruct"),
		Language: r.FormValue("language"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeAudio(w, a)
}

// ttsCustom godoc
// @Summary      Speak with a built-in voice
// @Tags         tts
// @Accept       multipart/form-data
// @Produce      audio/wav
// @Param        text      formData  string  true   "Text to speak"
// @Param        speaker   formData  string  true   "Speaker name"
// @Param        language  formData  string  false  "Language"  default(English)
// @Param        instruct  formData  string  false  "Style instruction"
// @Success      200  {file}    binary
// @Failure      400  {object}  types.ErrorResponse
// @Router       /api/v1/tts/custom [post]
func (h *handlers) ttsCustom(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid form body")
		return
	}
	ctx, cancel := generationContext(r.Context())
	defer cancel()
	a, err := h.svc.CustomVoice(ctx, types.CustomVoiceInput{
		Text:     r.FormValue("text"),
		Speaker:  r.FormValue("speaker"),
		Language: r.FormValue("language"),
		Instruct: r.FormValue("instruct"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeAudio(w, a)
}
