package api

import "github.com/gin-gonic/gin"

// RegisterRoutes 注册同步与看板查询路由
func RegisterRoutes(r *gin.Engine, syncHandler *SyncHandler, scheduleHandler *ScheduleHandler) {
	r.GET("/sync/status", syncHandler.SyncStatusHandler)
	r.POST("/sync/:sport", syncHandler.SyncSportHandler)

	api := r.Group("/api")
	api.GET("/schedule/:sport", scheduleHandler.GetSchedule)
	api.GET("/races", scheduleHandler.ListRaces)
	api.GET("/races/upcoming", scheduleHandler.ListUpcoming)
	api.GET("/races/:id", scheduleHandler.GetRace)
}
