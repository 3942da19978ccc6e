package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Bhavya-Chawat/AI-Interview-Assistant/internal/infrastructure/storage"
	"github.com/Bhavya-Chawat/AI-Interview-Assistant/pkg/keypool"
)

// System exposes monitoring endpoints for storage and API key health.
type System struct {
	storage *storage.MinIOClient
	pool    *keypool.Pool
	logger  *zap.Logger
}

// NewSystemHandler creates a new system handler. Both dependencies are
// optional and report "not configured" when absent.
func NewSystemHandler(storageClient *storage.MinIOClient, pool *keypool.Pool, logger *zap.Logger) *System {
	return &System{
		storage: storageClient,
		pool:    pool,
		logger:  logger,
	}
}

// KeyHealth handles GET /system/keys
// @Summary      Gemini API key pool health
// @Tags         System
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  keypool.Health
// @Router       /system/keys [get]
func (h *System) KeyHealth(c echo.Context) error {
	if h.pool == nil {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"configured": false,
			"message":    "no Gemini API keys configured",
		})
	}
	return HandleSuccess(h.logger, c, h.pool.Snapshot())
}

// StorageInfo handles GET /system/storage
// @Summary      Object storage health
// @Tags         System
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /system/storage [get]
func (h *System) StorageInfo(c echo.Context) error {
	if h.storage == nil {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"configured": false,
			"message":    "object storage not configured",
		})
	}

	info, err := h.storage.GetBucketInfo(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, info)
}
