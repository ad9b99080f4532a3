package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"SportSync/internal/interfaces"
	"SportSync/internal/model"
	"SportSync/internal/scheduler"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StatusProvider 定时调度状态
type StatusProvider interface {
	Status() scheduler.Status
}

type SyncHandler struct {
	syncer interfaces.ScheduleSyncer
	status StatusProvider
	logger *logrus.Logger
}

func NewSyncHandler(syncer interfaces.ScheduleSyncer, status StatusProvider, logger *logrus.Logger) *SyncHandler {
	return &SyncHandler{
		syncer: syncer,
		status: status,
		logger: logger,
	}
}

// SyncSportHandler 手动触发同步
// @Summary 同步指定运动赛程入库
// @Param sport path string true "运动（f1/nascar/rally/cricket/football/all）"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /sync/{sport} [post]
func (h *SyncHandler) SyncSportHandler(c *gin.Context) {
	param := c.Param("sport")
	if strings.EqualFold(param, "all") {
		h.syncAll(c)
		return
	}

	sport, err := model.ParseSport(param)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Unsupported sport: %s. Supported sports: %s", param, strings.Join(model.SportSlugs(), ", ")),
		})
		return
	}

	result, err := h.syncer.SyncSport(c.Request.Context(), sport)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, model.ErrUnsupportedSport) {
			status = http.StatusBadRequest
		}
		h.logger.WithError(err).WithField("sport", sport).Error("同步失败")
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}

	// 抓取整体失败仍返回200，由 success 标识
	if result.Failed() {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Failed to sync %s schedule", sport),
			"data": gin.H{
				"total":   result.Total,
				"added":   result.Added,
				"skipped": result.Skipped,
				"errors":  len(result.Errors),
			},
			"message": result.FetchError,
		})
		return
	}

	noun := unitNoun(sport)
	message := fmt.Sprintf("%s schedule sync completed. Added %d new %s, skipped %d existing %s.",
		sport, result.Added, noun, result.Skipped, noun)
	if n := len(result.Errors); n > 0 {
		message += fmt.Sprintf(" %d errors occurred.", n)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"total":   result.Total,
			"added":   result.Added,
			"skipped": result.Skipped,
			"errors":  len(result.Errors),
		},
		"message": message,
	})
}

func (h *SyncHandler) syncAll(c *gin.Context) {
	all := h.syncer.SyncAll(c.Request.Context())

	message := fmt.Sprintf("All sports sync completed. Added %d new events, skipped %d existing events.",
		all.Summary.TotalAdded, all.Summary.TotalSkipped)
	if all.Summary.TotalErrors > 0 {
		message += fmt.Sprintf(" %d errors occurred.", all.Summary.TotalErrors)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"total":      all.Summary.TotalEvents,
			"added":      all.Summary.TotalAdded,
			"skipped":    all.Summary.TotalSkipped,
			"errors":     all.Summary.TotalErrors,
			"summary":    all.Summary,
			"details":    all.Details,
			"error_list": all.Errors,
		},
		"message": message,
	})
}

// SyncStatusHandler 定时同步状态
// GET /sync/status
func (h *SyncHandler) SyncStatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.status.Status(),
	})
}

// 赛车类按 race 计，球类按 match 计
func unitNoun(sport model.Sport) string {
	switch sport {
	case model.SportCricket, model.SportFootball:
		return "matches"
	default:
		return "races"
	}
}
