package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

// HealthCtrl pings the sqlite backend when one is configured; in memory mode
// db is nil and the store is always reachable.
type HealthCtrl struct {
	db *gorm.DB
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	storeOK := true
	storeErr := ""
	backend := "memory"
	if h.db != nil {
		backend = "sqlite"
		sqlDB, err := h.db.DB()
		if err != nil {
			storeOK = false
			storeErr = "db.DB(): " + err.Error()
		} else if err := sqlDB.PingContext(ctx); err != nil {
			storeOK = false
			storeErr = "ping: " + err.Error()
		}
	}

	status := http.StatusOK
	if !storeOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}
	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": storeOK},
		"backend":    backend,
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"store": sub{OK: storeOK, Err: storeErr},
		},
		"time": time.Now().Format(time.RFC3339),
	})
}
