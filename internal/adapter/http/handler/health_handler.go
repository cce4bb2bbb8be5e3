package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// readinessTimeout bounds dependency pings so a wedged store cannot hang
// the probe.
const readinessTimeout = 5 * time.Second

// HealthHandler reports liveness and whether the ledger's backing
// dependencies are reachable.
type HealthHandler struct {
	ledgerDB *pgxpool.Pool
	cache    *redis.Client
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(ledgerDB *pgxpool.Pool, cache *redis.Client) *HealthHandler {
	return &HealthHandler{
		ledgerDB: ledgerDB,
		cache:    cache,
	}
}

// Liveness returns 200 if the process is up.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 only when both the ledger database and the cache
// answer a ping. Postings cannot proceed without the database; the cache
// additionally backs idempotency keys.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	if err := h.ledgerDB.Ping(ctx); err != nil {
		writeError(w, http.StatusServiceUnavailable, "ledger database unreachable", err.Error())
		return
	}

	if err := h.cache.Ping(ctx).Err(); err != nil {
		writeError(w, http.StatusServiceUnavailable, "cache unreachable", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ready",
		"ledger_db": "ok",
		"cache":     "ok",
	})
}
