package adapter

import (
	"fmt"

	"SportSync/internal/adapter/cricket"
	"SportSync/internal/adapter/f1"
	"SportSync/internal/adapter/football"
	"SportSync/internal/adapter/nascar"
	"SportSync/internal/adapter/rally"
	"SportSync/internal/interfaces"
	"SportSync/internal/model"

	"github.com/sirupsen/logrus"
)

// ========== 全局工厂函数注册表 ==========
var factoryRegistry = map[model.Sport]interfaces.Factory{
	model.SportF1:       f1.NewF1Adapter,
	model.SportNASCAR:   nascar.NewNASCARAdapter,
	model.SportRally:    rally.NewRallyAdapter,
	model.SportCricket:  cricket.NewCricketAdapter,
	model.SportFootball: football.NewFootballAdapter,
}

// register 注册（或覆盖）某个运动的工厂函数
func register(sport model.Sport, factory interfaces.Factory) {
	if factory == nil {
		panic(fmt.Sprintf("运动%s的工厂函数不能为nil", sport))
	}
	if _, exists := factoryRegistry[sport]; exists {
		logrus.Warnf("运动%s的适配器已注册，将覆盖原有实现", sport)
	}
	factoryRegistry[sport] = factory
}

// GetFactory 获取指定运动的工厂函数
func GetFactory(sport model.Sport) (interfaces.Factory, bool) {
	factory, ok := factoryRegistry[sport]
	return factory, ok
}

// ListFactories 按固定同步顺序列出已注册工厂的运动
func ListFactories() []model.Sport {
	var sports []model.Sport
	for _, s := range model.AllSports {
		if _, ok := factoryRegistry[s]; ok {
			sports = append(sports, s)
		}
	}
	return sports
}
