// Package normalizer 把各源时区的赛事时间统一换算到展示时区
package normalizer

import (
	"fmt"
	"time"

	"SportSync/internal/adapter/scrape"
	"SportSync/internal/model"

	"github.com/sirupsen/logrus"
)

const localLayout = scrape.DateLayout + " " + scrape.ClockLayout

type Normalizer struct {
	display *time.Location
	logger  *logrus.Logger
}

// New 展示时区无法加载时退回 Asia/Kolkata
func New(displayZone string, logger *logrus.Logger) *Normalizer {
	loc, err := time.LoadLocation(displayZone)
	if err != nil {
		logger.WithError(err).WithField("zone", displayZone).Warn("展示时区无效，使用默认时区")
		loc = scrape.LoadZone(scrape.FallbackZone)
	}
	return &Normalizer{display: loc, logger: logger}
}

// DisplayZone 展示时区
func (n *Normalizer) DisplayZone() *time.Location {
	return n.display
}

// Normalize 换算失败时原样透传日期时间
func (n *Normalizer) Normalize(ev *model.RawEvent) *model.NormalizedEvent {
	out := &model.NormalizedEvent{
		Sport:    ev.Sport,
		Name:     ev.Name,
		Date:     ev.Date,
		Time:     ev.Time,
		Location: ev.Location,
		Circuit:  ev.Circuit,
		Venue:    ev.Venue,
		Country:  ev.Country,
		Teams:    ev.Teams,
		Status:   ev.Status,
	}

	at, err := Instant(ev.Date, ev.Time, ev.SourceZone)
	if err != nil {
		n.logger.WithError(err).WithField("event", ev.Name).Debug("赛事时间换算失败，保留原始值")
		return out
	}
	local := at.In(n.display)
	out.Date = local.Format(scrape.DateLayout)
	out.Time = local.Format(scrape.ClockLayout)
	return out
}

// NormalizeAll 批量换算
func (n *Normalizer) NormalizeAll(events []*model.RawEvent) []*model.NormalizedEvent {
	out := make([]*model.NormalizedEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, n.Normalize(ev))
	}
	return out
}

// Instant 把某时区下的日期+时刻解析成绝对时间；时区为空按UTC
func Instant(date, clock, zone string) (time.Time, error) {
	loc := time.UTC
	if zone != "" {
		l, err := time.LoadLocation(zone)
		if err != nil {
			return time.Time{}, fmt.Errorf("未知时区%q: %w", zone, err)
		}
		loc = l
	}
	at, err := time.ParseInLocation(localLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("日期时间格式错误%q: %w", date+" "+clock, err)
	}
	return at, nil
}
