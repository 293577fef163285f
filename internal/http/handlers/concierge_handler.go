// README: AI dining concierge endpoint (optional, needs a Gemini key).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"platefinder/internal/ai"
	"platefinder/internal/modules/search"
)

const conciergeCandidates = 5

type ConciergeHandler struct {
	search   Searcher
	provider ai.Provider
}

func NewConciergeHandler(searcher Searcher, provider ai.Provider) *ConciergeHandler {
	return &ConciergeHandler{search: searcher, provider: provider}
}

type conciergeReq struct {
	Message string `json:"message"`
}

// Recommend handles POST /api/concierge. It runs the normal search pipeline
// for the message and lets the model phrase a recommendation over the top
// results.
func (h *ConciergeHandler) Recommend(c *gin.Context) {
	if h.provider == nil {
		writeError(c, http.StatusServiceUnavailable, "concierge is not configured")
		return
	}

	var req conciergeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	result, err := h.search.Search(ctx, req.Message, search.FilterState{})
	if err != nil {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}

	top := result.Restaurants
	if len(top) > conciergeCandidates {
		top = top[:conciergeCandidates]
	}
	candidates := make([]ai.Candidate, 0, len(top))
	for i := range top {
		candidates = append(candidates, ai.Candidate{
			Name:    top[i].Name,
			Cuisine: top[i].Cuisine,
			City:    top[i].City,
			Rating:  top[i].RatingOrZero(),
		})
	}

	reply, err := h.provider.Recommend(ctx, req.Message, candidates)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "concierge unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply, "data": top})
}
