package interfaces

import (
	"context"

	"SportSync/internal/model"
)

// ScheduleSyncer 同步编排（HTTP触发与定时任务共用）
type ScheduleSyncer interface {
	SyncSport(ctx context.Context, sport model.Sport) (*model.SyncResult, error)
	SyncAll(ctx context.Context) *model.AllSyncResult
}

// SyncPublisher 同步结果推送（可选）
type SyncPublisher interface {
	PublishSyncResult(ctx context.Context, result *model.SyncResult) error
}
