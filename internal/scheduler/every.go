package scheduler

import "time"

const day = 24 * time.Hour

// Every UTC每天从零点偏移 Offset 开始、每隔 Interval 触发一次（等价于 "M H/N * * *"）
type Every struct {
	Interval time.Duration
	Offset   time.Duration
}

// Valid Interval 须为正且整除一天，否则每天UTC零点会重置节奏
func (e Every) Valid() bool {
	return e.Interval > 0 && e.Interval <= day && day%e.Interval == 0
}

// Next 实现 cron.Schedule；Interval 非正时返回零值（永不触发）
func (e Every) Next(t time.Time) time.Time {
	if e.Interval <= 0 {
		return time.Time{}
	}
	offset := e.Offset % day
	if offset < 0 {
		offset += day
	}

	u := t.UTC()
	start := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(day)
	for at := start.Add(offset); at.Before(end); at = at.Add(e.Interval) {
		if at.After(u) {
			return at
		}
	}
	return end.Add(offset)
}
