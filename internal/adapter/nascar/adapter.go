package nascar

import (
	"context"
	"time"

	"SportSync/internal/adapter/scrape"
	"SportSync/internal/config"
	"SportSync/internal/interfaces"
	"SportSync/internal/model"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
)

const (
	blockSelector = ".schedule-item, .race-item"
	defaultClock  = "19:00"
	sourceZone    = "America/New_York"
)

type Adapter struct {
	src    *scrape.Source
	logger *logrus.Logger
}

func NewNASCARAdapter(cfg config.SourceConfig, logger *logrus.Logger) interfaces.SourceAdapter {
	return &Adapter{
		src:    scrape.NewSource(cfg, scrape.NewDefaults(defaultClock, sourceZone), logger),
		logger: logger,
	}
}

func (a *Adapter) Sport() model.Sport {
	return model.SportNASCAR
}

func (a *Adapter) Fetch(ctx context.Context) []*model.RawEvent {
	events, err := a.scrape(ctx)
	if err != nil {
		a.logger.WithError(err).WithField("sport", a.Sport()).Warn("抓取NASCAR赛程失败，使用兜底数据")
		return Fallback(a.src.Now())
	}
	a.logger.Infof("成功抓取NASCAR赛程共%d条", len(events))
	return events
}

func (a *Adapter) scrape(ctx context.Context) ([]*model.RawEvent, error) {
	return a.src.Collect(ctx, blockSelector, a.parseBlock)
}

// parseBlock 赛道名必填，城市/州作为场馆补充
func (a *Adapter) parseBlock(block *goquery.Selection, now time.Time) *model.RawEvent {
	name := scrape.FirstText(block, ".race-name", ".event-name")
	dateText := scrape.FirstText(block, ".race-date", ".event-date")
	track := scrape.FirstText(block, ".track-name", ".venue")
	cityState := scrape.FirstText(block, ".location", ".city-state")
	if name == "" || dateText == "" || track == "" {
		return nil
	}

	at, hasClock, err := scrape.ParseEventTime(dateText, a.src.Defaults.Zone)
	if err != nil {
		a.logger.WithError(err).WithField("event", name).Debug("NASCAR赛事日期解析失败，跳过")
		return nil
	}
	if !scrape.IsUpcoming(at, now) {
		return nil
	}

	if cityState == "" {
		cityState = track
	}
	date, clock := a.src.Defaults.Stamp(at, hasClock)
	return &model.RawEvent{
		Sport:      model.SportNASCAR,
		Name:       name,
		Date:       date,
		Time:       clock,
		SourceZone: a.src.Defaults.ZoneName(),
		Location:   track,
		Venue:      cityState,
		Country:    "United States",
		Status:     model.StatusUpcoming,
	}
}

func Fallback(now time.Time) []*model.RawEvent {
	return []*model.RawEvent{
		scrape.FallbackEvent(now, 3, "02:30", model.RawEvent{
			Sport:    model.SportNASCAR,
			Name:     "Daytona 500",
			Location: "Daytona International Speedway",
			Venue:    "Daytona Beach, FL",
			Country:  "United States",
		}),
	}
}
