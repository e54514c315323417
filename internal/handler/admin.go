package handler

import (
	"net/http"
	"runtime"
	"time"

	"wandshop-api/internal/service"
	"wandshop-api/pkg/response"
)

// AdminHandler handles maintenance HTTP requests.
type AdminHandler struct {
	admin     *service.AdminService
	cacheType string // memory, redis or none
	startTime time.Time
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(admin *service.AdminService, cacheType string) *AdminHandler {
	return &AdminHandler{
		admin:     admin,
		cacheType: cacheType,
		startTime: time.Now(),
	}
}

// GetStats handles GET /api/v1/admin/stats
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := make(map[string]interface{})

	// System info
	stats["uptime_seconds"] = int64(time.Since(h.startTime).Seconds())
	stats["uptime_human"] = time.Since(h.startTime).Round(time.Second).String()
	stats["server_time"] = time.Now().Format(time.RFC3339)
	stats["cache"] = h.cacheType

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	stats["memory"] = map[string]interface{}{
		"alloc_mb":      float64(memStats.Alloc) / 1024 / 1024,
		"sys_mb":        float64(memStats.Sys) / 1024 / 1024,
		"heap_inuse_mb": float64(memStats.HeapInuse) / 1024 / 1024,
		"num_gc":        memStats.NumGC,
		"goroutines":    runtime.NumGoroutine(),
	}

	dbStats, err := h.admin.Stats(r.Context())
	switch {
	case err != nil:
		stats["database"] = map[string]interface{}{
			"status": "error",
			"error":  err.Error(),
		}
	case dbStats == nil:
		stats["database"] = map[string]interface{}{"status": "not_configured"}
	default:
		dbStats["status"] = "connected"
		stats["database"] = dbStats
	}

	stats["runtime"] = map[string]interface{}{
		"go_version": runtime.Version(),
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
		"cpus":       runtime.NumCPU(),
	}

	response.OK(w, stats)
}

// Reset handles POST /api/v1/admin/reset. The body must be {"confirm": true}.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		fail(w, r, err)
		return
	}

	if err := h.admin.ResetDatabase(r.Context(), req.Confirm); err != nil {
		fail(w, r, err)
		return
	}

	response.OK(w, map[string]string{"status": "reset"})
}

// Seed handles POST /api/v1/admin/seed
func (h *AdminHandler) Seed(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.SeedSampleData(r.Context()); err != nil {
		fail(w, r, err)
		return
	}

	response.OK(w, map[string]string{"status": "seeded"})
}
