package adapter

import (
	"fmt"

	"SportSync/internal/config"
	"SportSync/internal/interfaces"
	"SportSync/internal/model"

	"github.com/sirupsen/logrus"
)

// SourceRegistry 运动 → 适配器实例
type SourceRegistry struct {
	adapters map[model.Sport]interfaces.SourceAdapter
	logger   *logrus.Logger
}

// NewSourceRegistry 用工厂函数和各运动的抓取源配置创建全部适配器实例
func NewSourceRegistry(cfg *config.Config, logger *logrus.Logger) *SourceRegistry {
	r := &SourceRegistry{
		adapters: make(map[model.Sport]interfaces.SourceAdapter),
		logger:   logger,
	}

	for _, sport := range ListFactories() {
		factory, _ := GetFactory(sport)
		srcCfg := cfg.Source(sport.Slug())
		if srcCfg.URL == "" {
			logger.WithField("sport", sport).Warn("未配置抓取地址，将只返回兜底数据")
		}

		ins := factory(srcCfg, logger)
		if ins == nil {
			logger.WithField("sport", sport).Error("工厂函数返回nil适配器实例")
			continue
		}
		if ins.Sport() != sport {
			logger.WithFields(logrus.Fields{
				"config_sport":  sport,
				"adapter_sport": ins.Sport(),
			}).Error("适配器运动类型与注册不匹配")
			continue
		}
		r.adapters[sport] = ins
	}

	logger.WithField("count", len(r.adapters)).Info("抓取适配器初始化完成")
	return r
}

// NewStaticRegistry 直接使用给定的适配器实例
func NewStaticRegistry(logger *logrus.Logger, adapters ...interfaces.SourceAdapter) *SourceRegistry {
	r := &SourceRegistry{
		adapters: make(map[model.Sport]interfaces.SourceAdapter, len(adapters)),
		logger:   logger,
	}
	for _, a := range adapters {
		r.adapters[a.Sport()] = a
	}
	return r
}

// GetAdapter 获取适配器实例
func (r *SourceRegistry) GetAdapter(sport model.Sport) (interfaces.SourceAdapter, error) {
	ins, ok := r.adapters[sport]
	if !ok {
		return nil, fmt.Errorf("运动%s未初始化适配器: %w", sport, model.ErrUnsupportedSport)
	}
	return ins, nil
}

// ListSports 已初始化的运动（固定顺序）
func (r *SourceRegistry) ListSports() []model.Sport {
	var sports []model.Sport
	for _, s := range model.AllSports {
		if _, ok := r.adapters[s]; ok {
			sports = append(sports, s)
		}
	}
	return sports
}
