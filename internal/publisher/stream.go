package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"SportSync/internal/model"

	"github.com/redis/go-redis/v9"
)

// 每个 stream 保留的大致条数
const streamMaxLen = 1000

// StreamPublisher 把每次同步的统计写入 Redis stream（<prefix>.<sport slug>）
type StreamPublisher struct {
	client *redis.Client
	prefix string
}

func NewStreamPublisher(client *redis.Client, prefix string) *StreamPublisher {
	return &StreamPublisher{client: client, prefix: prefix}
}

// Connect 解析 redis:// URL 并确认可连通
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("解析Redis地址失败: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("连接Redis失败: %w", err)
	}
	return client, nil
}

// StreamKey 某个运动的 stream 名
func (p *StreamPublisher) StreamKey(sport model.Sport) string {
	return fmt.Sprintf("%s.%s", p.prefix, sport.Slug())
}

func (p *StreamPublisher) PublishSyncResult(ctx context.Context, result *model.SyncResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("序列化同步结果失败: %w", err)
	}

	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.StreamKey(result.Sport),
		MaxLen: streamMaxLen,
		Approx: true,
		Values: map[string]interface{}{
			"data":    string(data),
			"sport":   string(result.Sport),
			"added":   result.Added,
			"skipped": result.Skipped,
			"errors":  result.ErrorCount(),
		},
	}).Err()
}
