package model

import "strings"

// EventStatus 赛事状态
type EventStatus string

const (
	StatusUpcoming  EventStatus = "upcoming"
	StatusLive      EventStatus = "live"
	StatusCompleted EventStatus = "completed"
)

// RawEvent 适配器输出的原始赛事（不落库）
type RawEvent struct {
	Sport      Sport       `json:"sport"`
	Name       string      `json:"event"`
	Date       string      `json:"date"` // YYYY-MM-DD
	Time       string      `json:"time"` // HH:MM
	SourceZone string      `json:"-"`    // date/time 所在时区（IANA 名称）
	Location   string      `json:"location"`
	Circuit    string      `json:"circuit,omitempty"`
	Venue      string      `json:"venue,omitempty"`
	Country    string      `json:"country,omitempty"`
	Teams      []string    `json:"teams,omitempty"`
	Status     EventStatus `json:"status"`
}

// NormalizedEvent 已换算到展示时区的赛事
type NormalizedEvent struct {
	Sport    Sport       `json:"sport"`
	Name     string      `json:"event"`
	Date     string      `json:"date"`
	Time     string      `json:"time"`
	Location string      `json:"location"`
	Circuit  string      `json:"circuit,omitempty"`
	Venue    string      `json:"venue,omitempty"`
	Country  string      `json:"country,omitempty"`
	Teams    []string    `json:"teams,omitempty"`
	Status   EventStatus `json:"status"`
}

// CountryFromLocation 取地点最后一个逗号后的部分作为国家
func CountryFromLocation(location string) string {
	parts := strings.Split(location, ",")
	return strings.TrimSpace(parts[len(parts)-1])
}
