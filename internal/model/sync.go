package model

import "time"

// SyncResult 单个运动一次同步的统计
type SyncResult struct {
	Sport      Sport     `json:"sport"`
	Total      int       `json:"total"`
	Added      int       `json:"added"`
	Skipped    int       `json:"skipped"`
	Errors     []string  `json:"errors"`
	FetchError string    `json:"fetch_error,omitempty"` // 整个运动失败（适配器异常）时填写
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// NewSyncResult 构造空统计
func NewSyncResult(sport Sport) *SyncResult {
	return &SyncResult{Sport: sport, Errors: []string{}, StartedAt: time.Now()}
}

// Failed 是否整体失败
func (r *SyncResult) Failed() bool {
	return r.FetchError != ""
}

// ErrorCount 逐条错误数，整体失败计为1
func (r *SyncResult) ErrorCount() int {
	if r.Failed() && len(r.Errors) == 0 {
		return 1
	}
	return len(r.Errors)
}

// SyncSummary 全量同步汇总
type SyncSummary struct {
	TotalEvents  int `json:"total_events"`
	TotalAdded   int `json:"total_added"`
	TotalSkipped int `json:"total_skipped"`
	TotalErrors  int `json:"total_errors"`
}

// AllSyncResult 全量同步结果
type AllSyncResult struct {
	Summary SyncSummary           `json:"summary"`
	Details map[Sport]*SyncResult `json:"details"`
	Errors  []string              `json:"errors"`
}

// Add 累加单个运动的结果
func (a *AllSyncResult) Add(r *SyncResult) {
	if a.Details == nil {
		a.Details = make(map[Sport]*SyncResult)
	}
	a.Details[r.Sport] = r
	a.Summary.TotalEvents += r.Total
	a.Summary.TotalAdded += r.Added
	a.Summary.TotalSkipped += r.Skipped
	a.Summary.TotalErrors += r.ErrorCount()
	if r.Failed() {
		a.Errors = append(a.Errors, r.FetchError)
	}
	a.Errors = append(a.Errors, r.Errors...)
}
