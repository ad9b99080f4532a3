package f1

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
	blockSelector = ".event-item, .race-item"
	defaultClock  = "15:00"
	sourceZone    = "UTC"
)

type Adapter struct {
	src    *scrape.Source
	logger *logrus.Logger
}

func NewF1Adapter(cfg config.SourceConfig, logger *logrus.Logger) interfaces.SourceAdapter {
	return &Adapter{
		src:    scrape.NewSource(cfg, scrape.NewDefaults(defaultClock, sourceZone), logger),
		logger: logger,
	}
}

// Sport ========== 实现SourceAdapter接口 ==========
func (a *Adapter) Sport() model.Sport {
	return model.SportF1
}

func (a *Adapter) Fetch(ctx context.Context) []*model.RawEvent {
	events, err := a.scrape(ctx)
	if err != nil {
		a.logger.WithError(err).WithField("sport", a.Sport()).Warn("抓取F1赛程失败，使用兜底数据")
		return Fallback(a.src.Now())
	}
	a.logger.Infof("成功抓取F1赛程共%d条", len(events))
	return events
}

func (a *Adapter) scrape(ctx context.Context) ([]*model.RawEvent, error) {
	return a.src.Collect(ctx, blockSelector, a.parseBlock)
}

func (a *Adapter) parseBlock(block *goquery.Selection, now time.Time) *model.RawEvent {
	name := scrape.FirstText(block, ".event-title", ".race-title")
	dateText := scrape.FirstText(block, ".event-date", ".race-date")
	location := scrape.FirstText(block, ".event-location", ".race-location")
	circuit := scrape.FirstText(block, ".event-circuit", ".race-circuit")
	if name == "" || dateText == "" || location == "" {
		return nil
	}

	at, hasClock, err := scrape.ParseEventTime(dateText, a.src.Defaults.Zone)
	if err != nil {
		a.logger.WithError(err).WithField("event", name).Debug("F1赛事日期解析失败，跳过")
		return nil
	}
	if !scrape.IsUpcoming(at, now) {
		return nil
	}

	if circuit == "" {
		circuit = location
	}
	date, clock := a.src.Defaults.Stamp(at, hasClock)
	return &model.RawEvent{
		Sport:      model.SportF1,
		Name:       name,
		Date:       date,
		Time:       clock,
		SourceZone: a.src.Defaults.ZoneName(),
		Location:   location,
		Circuit:    circuit,
		Country:    model.CountryFromLocation(location),
		Status:     model.StatusUpcoming,
	}
}

// Fallback 抓取失败时的兜底赛程（以 now 为基准）
func Fallback(now time.Time) []*model.RawEvent {
	return []*model.RawEvent{
		scrape.FallbackEvent(now, 7, "15:30", model.RawEvent{
			Sport:    model.SportF1,
			Name:     "Australian Grand Prix",
			Location: "Melbourne",
			Circuit:  "Albert Park Circuit",
			Country:  "Australia",
		}),
		scrape.FallbackEvent(now, 21, "18:00", model.RawEvent{
			Sport:    model.SportF1,
			Name:     "Bahrain Grand Prix",
			Location: "Sakhir",
			Circuit:  "Bahrain International Circuit",
			Country:  "Bahrain",
		}),
	}
}
