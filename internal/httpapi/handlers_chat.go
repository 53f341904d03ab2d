package httpapi

import (
	"net/http"

	"genhost/pkg/types"
)

// chatCompletions godoc
// @Summary      Chat completion
// @Description  OpenAI-compatible chat completion. Streaming is not supported.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request  body      types.ChatCompletionRequest  true  "Chat request"
// @Success      200      {object}  types.ChatCompletionResponse
// @Failure      400      {object}  types.ErrorResponse
// @Failure      415      {object}  types.ErrorResponse
// @Failure      429      {object}  types.ErrorResponse
// @Failure      501      {object}  types.ErrorResponse
// @Router       /v1/chat/completions [post]
func (h *handlers) chatCompletions(w http.ResponseWriter, r *http.Request) {
	var req types.ChatCompletionRequest
	// An oversized body also reports "invalid JSON body", without size details.
	if !decodeJSON(w, r, &req) {
		return
	}
	ctx, cancel := generationContext(r.Context())
	defer cancel()
	resp, err := h.svc.ChatCompletion(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
