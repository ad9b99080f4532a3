package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedSport 未支持的运动类型
var ErrUnsupportedSport = errors.New("unsupported sport")

// Sport 运动类型枚举（值与原始赛程数据中的 sport 字段一致）
type Sport string

const (
	SportF1       Sport = "F1"
	SportNASCAR   Sport = "NASCAR"
	SportRally    Sport = "Rally"
	SportCricket  Sport = "Cricket"
	SportFootball Sport = "Football"
)

// AllSports 全量同步时的固定顺序
var AllSports = []Sport{SportF1, SportNASCAR, SportRally, SportCricket, SportFootball}

// Slug 小写标识，用于路由与配置键
func (s Sport) Slug() string {
	return strings.ToLower(string(s))
}

func (s Sport) Valid() bool {
	for _, sp := range AllSports {
		if sp == s {
			return true
		}
	}
	return false
}

// ParseSport 大小写不敏感地解析 slug 或展示值
func ParseSport(v string) (Sport, error) {
	v = strings.TrimSpace(v)
	for _, sp := range AllSports {
		if strings.EqualFold(v, string(sp)) {
			return sp, nil
		}
	}
	return "", fmt.Errorf("%w: %s（支持：%s）", ErrUnsupportedSport, v, strings.Join(SportSlugs(), ", "))
}

// SportSlugs 返回所有运动的 slug
func SportSlugs() []string {
	slugs := make([]string, 0, len(AllSports))
	for _, sp := range AllSports {
		slugs = append(slugs, sp.Slug())
	}
	return slugs
}
