package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"SportSync/internal/model"
	"SportSync/internal/repository"
	"SportSync/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ScheduleHandler 提供给看板的赛程查询接口
type ScheduleHandler struct {
	scheduleService *service.ScheduleService
	logger          *logrus.Logger
}

func NewScheduleHandler(svc *service.ScheduleService, logger *logrus.Logger) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: svc, logger: logger}
}

// GetSchedule 实时抓取某个运动的赛程（展示时区）
// GET /api/schedule/:sport
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	param := c.Param("sport")
	sport, err := model.ParseSport(param)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Unsupported sport: %s. Supported sports: %s", param, strings.Join(model.SportSlugs(), ", ")),
		})
		return
	}

	events, err := h.scheduleService.LiveSchedule(c.Request.Context(), sport)
	if err != nil {
		h.logger.WithError(err).WithField("sport", sport).Error("GetSchedule failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error while fetching schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    events,
		"sport":   sport.Slug(),
		"message": fmt.Sprintf("Successfully fetched %d upcoming %s events", len(events), strings.ToUpper(sport.Slug())),
	})
}

// ListRaces 已落库的全部赛事
// GET /api/races
func (h *ScheduleHandler) ListRaces(c *gin.Context) {
	races, err := h.scheduleService.ListRaces(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("ListRaces failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch races"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    races,
		"message": fmt.Sprintf("Successfully fetched %d races from database", len(races)),
	})
}

// ListUpcoming GET /api/races/upcoming?limit=10
func (h *ScheduleHandler) ListUpcoming(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	races, err := h.scheduleService.ListUpcoming(c.Request.Context(), limit)
	if err != nil {
		h.logger.WithError(err).Error("ListUpcoming failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch upcoming races"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    races,
		"message": fmt.Sprintf("Successfully fetched %d upcoming races from database", len(races)),
	})
}

// GetRace GET /api/races/:id
func (h *ScheduleHandler) GetRace(c *gin.Context) {
	race, err := h.scheduleService.GetRace(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrRaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Race not found"})
			return
		}
		h.logger.WithError(err).Error("GetRace failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": race})
}
