package alerts

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pricepulse/comparator-service/internal/engine"
)

// TriggeredAlert is an alert that fired on a date, with the offer that
// satisfied it.
type TriggeredAlert struct {
	Alert
	Store        string  `json:"store"`
	CurrentPrice float64 `json:"currentPrice"`
}

// Service evaluates stored alerts against a catalog snapshot.
type Service struct {
	store  *Store
	engine *engine.Engine
	logger zerolog.Logger
}

// NewService creates an alert service over a store and pricing engine.
func NewService(store *Store, eng *engine.Engine) *Service {
	return &Service{
		store:  store,
		engine: eng,
		logger: log.With().Str("component", "alerts").Logger(),
	}
}

// Store exposes the underlying alert store.
func (s *Service) Store() *Store { return s.store }

// Triggered returns every alert whose product can be bought on the date at
// an effective price at or below its target. The reported store and price
// are the cheapest offer's.
func (s *Service) Triggered(src engine.Source, date time.Time) []TriggeredAlert {
	var out []TriggeredAlert
	for _, a := range s.store.All() {
		best, ok := s.engine.CheapestOffer(src, a.ProductName, date)
		if !ok || best.FinalPrice > a.TargetPrice {
			continue
		}
		out = append(out, TriggeredAlert{
			Alert:        a,
			Store:        best.Offer.Store,
			CurrentPrice: best.FinalPrice,
		})
	}
	s.logger.Debug().Int("checked", s.store.Len()).Int("triggered", len(out)).Msg("alert sweep")
	return out
}
