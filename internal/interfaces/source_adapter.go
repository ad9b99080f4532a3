package interfaces

import (
	"context"

	"SportSync/internal/config"
	"SportSync/internal/model"

	"github.com/sirupsen/logrus"
)

// SourceAdapter 每个运动必须实现的抓取接口
type SourceAdapter interface {
	Sport() model.Sport // 所属运动
	// Fetch 拉取未开赛赛事；失败时返回兜底数据，不返回错误
	Fetch(ctx context.Context) []*model.RawEvent
}

// Factory 抓取适配器工厂函数签名
// 入参：抓取源配置、日志实例
type Factory func(cfg config.SourceConfig, logger *logrus.Logger) SourceAdapter
