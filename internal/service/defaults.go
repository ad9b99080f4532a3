package service

import "SportSync/internal/model"

// seriesDefaults 同步时自动创建系列用的默认值（ID为系列slug）
func seriesDefaults(sport model.Sport) *model.Series {
	switch sport {
	case model.SportF1:
		return &model.Series{ID: "f1", Name: "Formula 1", Color: "#e10600", Icon: "🏎️"}
	case model.SportNASCAR:
		return &model.Series{ID: "nascar", Name: "NASCAR", Color: "#ffed00", Icon: "🏁"}
	case model.SportRally:
		return &model.Series{ID: "wrc", Name: "WRC", Color: "#0066cc", Icon: "🚗"}
	case model.SportCricket:
		return &model.Series{ID: "cricket", Name: "Cricket", Color: "#00a651", Icon: "🏏"}
	case model.SportFootball:
		return &model.Series{ID: "football", Name: "Football", Color: "#00471b", Icon: "⚽"}
	default:
		return &model.Series{ID: sport.Slug(), Name: string(sport), Color: "#6b7280", Icon: "🏆"}
	}
}

// defaultWatchLinks 各运动默认观看渠道
func defaultWatchLinks(sport model.Sport) []model.WatchLink {
	switch sport {
	case model.SportF1:
		return []model.WatchLink{
			{Country: "Global", Broadcaster: "F1 TV Pro", Subscription: true},
			{Country: "US", Broadcaster: "ESPN", Subscription: false},
			{Country: "UK", Broadcaster: "Sky Sports F1", Subscription: true},
		}
	case model.SportNASCAR:
		return []model.WatchLink{
			{Country: "US", Broadcaster: "FOX/NBC", Subscription: false},
			{Country: "US", Broadcaster: "NASCAR.com", Subscription: true},
		}
	case model.SportRally:
		return []model.WatchLink{
			{Country: "Global", Broadcaster: "WRC+", Subscription: true},
		}
	case model.SportCricket:
		return []model.WatchLink{
			{Country: "India", Broadcaster: "Star Sports", Subscription: true},
			{Country: "Global", Broadcaster: "ESPN+", Subscription: true},
		}
	case model.SportFootball:
		return []model.WatchLink{
			{Country: "Global", Broadcaster: "ESPN+", Subscription: true},
			{Country: "UK", Broadcaster: "BBC/ITV", Subscription: false},
		}
	default:
		return []model.WatchLink{{Country: "Global", Broadcaster: "TBD", Subscription: false}}
	}
}
