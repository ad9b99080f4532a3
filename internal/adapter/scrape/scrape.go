// Package scrape 各运动适配器共用的页面抓取与解析工具
package scrape

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"SportSync/internal/config"
	"SportSync/internal/model"
	"SportSync/internal/utils/httpclient"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
)

// ErrNoEvents 页面中没有符合条件的赛事
var ErrNoEvents = errors.New("未解析到符合条件的赛事")

// BlockParser 从单个候选块解析赛事，不满足条件返回nil
type BlockParser func(block *goquery.Selection, now time.Time) *model.RawEvent

// Source 单个抓取源：页面地址、HTTP客户端、时区默认值与时钟
type Source struct {
	URL      string
	Client   *http.Client
	Defaults Defaults
	Now      func() time.Time
	logger   *logrus.Logger
}

// NewSource 按抓取源配置构建
func NewSource(cfg config.SourceConfig, defaults Defaults, logger *logrus.Logger) *Source {
	return &Source{
		URL:      cfg.URL,
		Client:   httpclient.NewHTTPClient(cfg, logger),
		Defaults: defaults,
		Now:      time.Now,
		logger:   logger,
	}
}

// Document 拉取并解析HTML页面
func (s *Source) Document(ctx context.Context) (*goquery.Document, error) {
	if s.URL == "" {
		return nil, errors.New("抓取地址为空")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("构建请求失败: %w", err)
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求%s失败: %w", s.URL, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.logger.Errorf("关闭响应体失败: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("请求%s返回状态码%d", s.URL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("解析HTML失败: %w", err)
	}
	return doc, nil
}

// Collect 拉取页面，对每个匹配 blockSelector 的块调用 parse；一条都没有时返回 ErrNoEvents
func (s *Source) Collect(ctx context.Context, blockSelector string, parse BlockParser) ([]*model.RawEvent, error) {
	doc, err := s.Document(ctx)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	var events []*model.RawEvent
	doc.Find(blockSelector).Each(func(_ int, block *goquery.Selection) {
		if ev := parse(block, now); ev != nil {
			events = append(events, ev)
		}
	})

	if len(events) == 0 {
		return nil, ErrNoEvents
	}
	return events, nil
}

// FirstText 依次尝试备选选择器（兼容页面改版的两套 class 命名），返回第一个非空文本
func FirstText(block *goquery.Selection, selectors ...string) string {
	for _, sel := range selectors {
		if text := strings.TrimSpace(block.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// AllTexts 返回所有匹配元素的非空文本（如对阵双方）
func AllTexts(block *goquery.Selection, selector string) []string {
	var texts []string
	block.Find(selector).Each(func(_ int, el *goquery.Selection) {
		if text := strings.TrimSpace(el.Text()); text != "" {
			texts = append(texts, text)
		}
	})
	return texts
}
