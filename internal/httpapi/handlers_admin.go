package httpapi

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"genhost/pkg/types"
)

// listModels godoc
// @Summary  List catalogued models
// @Tags     models
// @Produce  json
// @Success  200  {object}  types.ModelsResponse
// @Router   /models [get]
func (h *handlers) listModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.ModelsResponse{Models: h.svc.ListModels()})
}

// loadModel godoc
// @Summary  Load a model synchronously
// @Tags     models
// @Produce  json
// @Param    id   path      string  true  "Model id"
// @Success  200  {object}  types.StatusResponse
// @Failure  404  {object}  types.ErrorResponse
// @Failure  500  {object}  types.ErrorResponse
// @Failure  503  {object}  types.ErrorResponse
// @Router   /models/{id}/load [post]
func (h *handlers) loadModel(w http.ResponseWriter, r *http.Request) {
	rest := chi.URLParam(r, "*")
	if !strings.HasSuffix(rest, "/load") {
		writeJSONError(w, http.StatusNotFound, "not found")
		return
	}
	id, err := url.PathUnescape(strings.TrimSuffix(rest, "/load"))
	if err != nil || id == "" {
		writeJSONError(w, http.StatusBadRequest, "invalid model id")
		return
	}
	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()
	st, err := h.svc.LoadModel(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// switchModel godoc
// @Summary  Switch models in the background
// @Tags     models
// @Accept   json
// @Produce  json
// @Param    request  body      types.SwitchRequest  true  "Target model"
// @Success  202      {object}  types.SwitchResponse
// @Failure  400      {object}  types.ErrorResponse
// @Failure  404      {object}  types.ErrorResponse
// @Router   /switch [post]
func (h *handlers) switchModel(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req types.SwitchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	resp, err := h.svc.Switch(strings.TrimSpace(req.Model))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, resp)
}

// releaseModel godoc
// @Summary  Unload the resident model
// @Tags     models
// @Produce  json
// @Success  200  {object}  types.StatusResponse
// @Router   /models/current [delete]
func (h *handlers) releaseModel(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Release(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Status())
}

// status godoc
// @Summary  Manager status
// @Tags     ops
// @Produce  json
// @Success  200  {object}  types.StatusResponse
// @Router   /status [get]
func (h *handlers) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Status())
}

// sanity godoc
// @Summary  Loader availability
// @Tags     ops
// @Produce  json
// @Success  200  {object}  manager.SanityReport
// @Failure  503  {object}  manager.SanityReport
// @Router   /sanity [get]
func (h *handlers) sanity(w http.ResponseWriter, r *http.Request) {
	rep := h.svc.Sanity()
	code := http.StatusOK
	if !rep.LoaderAvailable {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, rep)
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "genhost",
		"endpoints": []string{
			"POST /api/v1/tts/clone",
			"POST /api/v1/tts/design",
			"POST /api/v1/tts/custom",
			"POST /api/v1/image/generate",
			"POST /api/v1/image/edit",
			"POST /api/v1/video/generate",
			"POST /api/v1/video/image-to-video",
			"POST /api/v1/omni/chat",
			"POST /v1/chat/completions",
			"GET /models",
			"POST /models/{id}/load",
			"POST /switch",
			"DELETE /models/current",
			"GET /status",
		},
	})
}
