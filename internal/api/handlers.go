// Package api exposes the crossword solver over HTTP, grounded on the
// teacher's gin-based internal/api/handlers.go.
package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/crossplay/xwordsat/internal/backend"
	"github.com/crossplay/xwordsat/internal/cache"
	"github.com/crossplay/xwordsat/internal/store"
	"github.com/crossplay/xwordsat/pkg/crossword"
	"github.com/crossplay/xwordsat/pkg/output"
	"github.com/crossplay/xwordsat/pkg/wordlist"
)

// Handlers holds the dependencies the solve endpoint needs. Cache and
// Store are both optional: a nil Cache skips memoization, a nil Store
// skips audit logging.
type Handlers struct {
	Cache   *cache.Redis
	Store   *store.Store
	Backend string
}

// solveRequest is the JSON body POST /api/solve accepts.
type solveRequest struct {
	Grid  string   `json:"grid" binding:"required"`
	Words []string `json:"words"`
	Count int      `json:"count"`
}

// HandleSolve runs the crossword SAT encoder against the request's grid
// and word list, and returns up to Count decoded solutions as JSON.
func (h *Handlers) HandleSolve(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Count <= 0 {
		req.Count = 1
	}

	sanitized := make([]string, len(req.Words))
	for i, word := range req.Words {
		clean, ok := wordlist.Sanitize(word)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid word %q: must be letters only", word)})
			return
		}
		sanitized[i] = clean
	}
	req.Words = sanitized

	if h.Cache != nil {
		key := cache.Key(req.Grid, req.Words, req.Count)
		if cached, ok := h.Cache.Get(c.Request.Context(), key); ok {
			data, err := output.ToJSON(req.Grid, cached)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.Data(http.StatusOK, "application/json", data)
			return
		}
	}

	builder, err := backend.New(h.Backend)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cw, err := crossword.New(req.Grid, req.Words)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	solutions, err := cw.SolveWith(builder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	decoded := make([]string, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		solution, ok := solutions.Next()
		if !ok {
			break
		}
		decoded = append(decoded, solution)
	}

	if h.Cache != nil {
		key := cache.Key(req.Grid, req.Words, req.Count)
		_ = h.Cache.Set(c.Request.Context(), key, decoded)
	}
	if h.Store != nil {
		_ = h.Store.RecordSolve(uuid.New().String(), req.Grid, len(req.Words), len(decoded))
	}

	data, err := output.ToJSON(req.Grid, decoded)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// HandleHealth reports liveness, grounded on the teacher's /health route.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
