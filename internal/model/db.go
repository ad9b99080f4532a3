package model

import (
	"time"

	"gorm.io/datatypes"
)

// Series 赛事系列（每个运动一条）
type Series struct {
	ID        string    `gorm:"column:id;primaryKey;type:varchar(64);comment:系列ID（同步创建时为slug）" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(64);not null;comment:展示名称" json:"name"`
	Color     string    `gorm:"column:color;type:varchar(16);comment:主题色" json:"color"`
	Icon      string    `gorm:"column:icon;type:varchar(16);comment:图标" json:"icon"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;autoCreateTime;comment:创建时间" json:"created_at"`
}

// Race 已落库的赛事
// (name_key, race_day) 为去重自然键，由唯一索引 uk_races_name_day 保证
type Race struct {
	ID         string         `gorm:"column:id;primaryKey;type:varchar(64);comment:全局唯一ID" json:"id"`
	Name       string         `gorm:"column:name;type:varchar(256);not null;comment:赛事名称" json:"name"`
	NameKey    string         `gorm:"column:name_key;type:varchar(256);not null;uniqueIndex:uk_races_name_day,priority:1;comment:小写名称" json:"-"`
	RaceDay    string         `gorm:"column:race_day;type:varchar(10);not null;uniqueIndex:uk_races_name_day,priority:2;comment:展示时区日历日" json:"-"`
	Date       time.Time      `gorm:"column:date;not null;index;comment:开赛时间（UTC）" json:"date"`
	Circuit    string         `gorm:"column:circuit;type:varchar(256);comment:赛道/场馆" json:"circuit"`
	Country    string         `gorm:"column:country;type:varchar(128);comment:国家" json:"country"`
	SeriesID   string         `gorm:"column:series_id;type:varchar(64);not null;index;comment:关联系列ID" json:"series_id"`
	Series     *Series        `gorm:"foreignKey:SeriesID;references:ID" json:"series,omitempty"`
	Schedule   datatypes.JSON `gorm:"column:schedule;not null;comment:分节赛程" json:"schedule"`
	WatchLinks datatypes.JSON `gorm:"column:watch_links;not null;comment:观看渠道" json:"watch_links"`
	TrackMap   *string        `gorm:"column:track_map;type:varchar(256);comment:赛道图" json:"track_map,omitempty"`
	CreatedAt  time.Time      `gorm:"column:created_at;type:timestamp;autoCreateTime;comment:创建时间" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;type:timestamp;autoUpdateTime;comment:更新时间" json:"updated_at"`
}

// ScheduleEntry 单个分节（练习/排位/正赛）
type ScheduleEntry struct {
	Session string `json:"session"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

// WatchLink 观看渠道
type WatchLink struct {
	Country      string `json:"country"`
	Broadcaster  string `json:"broadcaster"`
	URL          string `json:"url,omitempty"`
	Subscription bool   `json:"subscription"`
}

func (Series) TableName() string { return "series" }
func (Race) TableName() string   { return "races" }
