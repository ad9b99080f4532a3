package football

import (
	"context"
	"strings"
	"time"

	"SportSync/internal/adapter/scrape"
	"SportSync/internal/config"
	"SportSync/internal/interfaces"
	"SportSync/internal/model"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
)

const (
	blockSelector = ".fixture-item, .match-item"
	defaultClock  = "20:00"
	sourceZone    = "Europe/London"
	unknownVenue  = "TBD"
)

type Adapter struct {
	src    *scrape.Source
	logger *logrus.Logger
}

func NewFootballAdapter(cfg config.SourceConfig, logger *logrus.Logger) interfaces.SourceAdapter {
	return &Adapter{
		src:    scrape.NewSource(cfg, scrape.NewDefaults(defaultClock, sourceZone), logger),
		logger: logger,
	}
}

func (a *Adapter) Sport() model.Sport {
	return model.SportFootball
}

func (a *Adapter) Fetch(ctx context.Context) []*model.RawEvent {
	events, err := a.scrape(ctx)
	if err != nil {
		a.logger.WithError(err).WithField("sport", a.Sport()).Warn("抓取足球赛程失败，使用兜底数据")
		return Fallback(a.src.Now())
	}
	a.logger.Infof("成功抓取足球赛程共%d条", len(events))
	return events
}

func (a *Adapter) scrape(ctx context.Context) ([]*model.RawEvent, error) {
	return a.src.Collect(ctx, blockSelector, a.parseBlock)
}

func (a *Adapter) parseBlock(block *goquery.Selection, now time.Time) *model.RawEvent {
	teams := scrape.AllTexts(block, ".team-name")
	dateText := scrape.FirstText(block, ".match-date", ".fixture-date")
	if len(teams) < 2 || dateText == "" {
		return nil
	}
	teams = teams[:2]

	at, hasClock, err := scrape.ParseEventTime(dateText, a.src.Defaults.Zone)
	if err != nil {
		a.logger.WithError(err).WithField("teams", teams).Debug("足球比赛日期解析失败，跳过")
		return nil
	}
	if !scrape.IsUpcoming(at, now) {
		return nil
	}

	venue := scrape.FirstText(block, ".venue", ".stadium")
	if venue == "" {
		venue = unknownVenue
	}
	date, clock := a.src.Defaults.Stamp(at, hasClock)
	return &model.RawEvent{
		Sport:      model.SportFootball,
		Name:       strings.Join(teams, " vs "),
		Date:       date,
		Time:       clock,
		SourceZone: a.src.Defaults.ZoneName(),
		Location:   venue,
		Venue:      venue,
		Country:    "England",
		Teams:      teams,
		Status:     model.StatusUpcoming,
	}
}

func Fallback(now time.Time) []*model.RawEvent {
	return []*model.RawEvent{
		scrape.FallbackEvent(now, 1, "01:30", model.RawEvent{
			Sport:    model.SportFootball,
			Name:     "Manchester United vs Liverpool",
			Location: "Old Trafford",
			Venue:    "Old Trafford",
			Country:  "England",
			Teams:    []string{"Manchester United", "Liverpool"},
		}),
	}
}
