package scrape

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // 容器内可能没有系统时区库

	"SportSync/internal/model"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	// FallbackZone 兜底数据的日期时间按该时区给出
	FallbackZone = "Asia/Kolkata"
)

// 带具体时刻的格式；无时区的按源时区解析
var clockLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// 仅日期的格式，按UTC零点解析
var dateLayouts = []string{
	DateLayout,
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"January 2 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Mon, Jan 2 2006",
	"Mon, 2 Jan 2006",
	"Monday, January 2, 2006",
}

// Defaults 页面不含开赛时刻时使用的默认时刻及源时区
type Defaults struct {
	Clock string
	Zone  *time.Location
}

// NewDefaults 时区名无法解析时退回UTC
func NewDefaults(clock, zone string) Defaults {
	return Defaults{Clock: clock, Zone: LoadZone(zone)}
}

// ZoneName 源时区名称
func (d Defaults) ZoneName() string {
	if d.Zone == nil {
		return "UTC"
	}
	return d.Zone.String()
}

// Stamp 生成源时区下的日期与时刻；无具体时刻时取UTC日期 + 默认时刻
func (d Defaults) Stamp(at time.Time, hasClock bool) (date, clock string) {
	if hasClock {
		local := at.In(d.Zone)
		return local.Format(DateLayout), local.Format(ClockLayout)
	}
	return at.UTC().Format(DateLayout), d.Clock
}

// ParseEventTime 解析页面上的日期文本，hasClock 表示文本中是否带具体时刻
func ParseEventTime(text string, loc *time.Location) (at time.Time, hasClock bool, err error) {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return time.Time{}, false, fmt.Errorf("日期为空")
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range clockLayouts {
		if t, err := time.ParseInLocation(layout, text, loc); err == nil {
			return t, true, nil
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			return t, false, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("无法解析日期: %q", text)
}

// IsUpcoming 严格晚于 now 才算未开赛
func IsUpcoming(at, now time.Time) bool {
	return at.After(now)
}

// LoadZone 加载时区，失败退回UTC
func LoadZone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// FallbackEvent 以 now 为基准偏移 days 天生成一条兜底赛事
func FallbackEvent(now time.Time, days int, clock string, ev model.RawEvent) *model.RawEvent {
	base := now.In(LoadZone(FallbackZone)).AddDate(0, 0, days)
	ev.Date = base.Format(DateLayout)
	ev.Time = clock
	ev.SourceZone = FallbackZone
	ev.Status = model.StatusUpcoming
	return &ev
}
