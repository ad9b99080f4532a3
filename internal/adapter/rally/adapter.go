package rally

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
	blockSelector = ".calendar-item, .rally-item"
	defaultClock  = "10:00"
	sourceZone    = "Europe/London"
)

// Adapter WRC 日历
type Adapter struct {
	src    *scrape.Source
	logger *logrus.Logger
}

func NewRallyAdapter(cfg config.SourceConfig, logger *logrus.Logger) interfaces.SourceAdapter {
	return &Adapter{
		src:    scrape.NewSource(cfg, scrape.NewDefaults(defaultClock, sourceZone), logger),
		logger: logger,
	}
}

func (a *Adapter) Sport() model.Sport {
	return model.SportRally
}

func (a *Adapter) Fetch(ctx context.Context) []*model.RawEvent {
	events, err := a.scrape(ctx)
	if err != nil {
		a.logger.WithError(err).WithField("sport", a.Sport()).Warn("抓取WRC赛程失败，使用兜底数据")
		return Fallback(a.src.Now())
	}
	a.logger.Infof("成功抓取WRC赛程共%d条", len(events))
	return events
}

func (a *Adapter) scrape(ctx context.Context) ([]*model.RawEvent, error) {
	return a.src.Collect(ctx, blockSelector, a.parseBlock)
}

func (a *Adapter) parseBlock(block *goquery.Selection, now time.Time) *model.RawEvent {
	name := scrape.FirstText(block, ".rally-name", ".event-name")
	dateText := scrape.FirstText(block, ".rally-date", ".event-date")
	country := scrape.FirstText(block, ".rally-country", ".country")
	if name == "" || dateText == "" || country == "" {
		return nil
	}

	at, hasClock, err := scrape.ParseEventTime(dateText, a.src.Defaults.Zone)
	if err != nil {
		a.logger.WithError(err).WithField("event", name).Debug("WRC赛事日期解析失败，跳过")
		return nil
	}
	if !scrape.IsUpcoming(at, now) {
		return nil
	}

	date, clock := a.src.Defaults.Stamp(at, hasClock)
	return &model.RawEvent{
		Sport:      model.SportRally,
		Name:       name,
		Date:       date,
		Time:       clock,
		SourceZone: a.src.Defaults.ZoneName(),
		Location:   country,
		Country:    country,
		Status:     model.StatusUpcoming,
	}
}

func Fallback(now time.Time) []*model.RawEvent {
	return []*model.RawEvent{
		scrape.FallbackEvent(now, 10, "15:30", model.RawEvent{
			Sport:    model.SportRally,
			Name:     "Rally Sweden",
			Location: "Sweden",
			Country:  "Sweden",
		}),
	}
}
