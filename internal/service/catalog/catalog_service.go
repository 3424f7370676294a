package catalog

import (
	"context"
	"time"

	"github.com/Domenick1991/airticket/internal/domain"
	"github.com/Domenick1991/airticket/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	MsgSeedFailed    = "Error inserting cities"
	MsgCitiesFailed  = "Error fetching cities"
	MsgAddFailed     = "Error adding flight"
	MsgFlightsFailed = "Error fetching available flights"
)

type CatalogUseCase interface {
	SeedCities(ctx context.Context) (int, error)
	SeedCitiesNamed(ctx context.Context, names []string) (int, error)
	ListCities(ctx context.Context) ([]domain.City, error)
	AddFlight(ctx context.Context, input AddFlightInput) (*domain.Flight, error)
	FindFlights(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
}

// CityCache is optional. GetCities returns nil, nil on a miss.
type CityCache interface {
	GetCities(ctx context.Context) ([]domain.City, error)
	SetCities(ctx context.Context, cities []domain.City) error
	InvalidateCities(ctx context.Context) error
}

type AddFlightInput struct {
	UserID        string
	Name          string
	From          string
	Destination   string
	PriceEconomy  float64
	PriceBusiness float64
	Date          time.Time
}

type CatalogService struct {
	cities     repository.CityRepository
	flights    repository.FlightRepository
	cache      CityCache
	seedCities []string
}

type CatalogServiceOption func(*CatalogService)

func WithCityCache(cache CityCache) CatalogServiceOption {
	return func(s *CatalogService) {
		s.cache = cache
	}
}

func WithSeedCities(names []string) CatalogServiceOption {
	return func(s *CatalogService) {
		s.seedCities = names
	}
}

func NewCatalogService(cities repository.CityRepository, flights repository.FlightRepository, opts ...CatalogServiceOption) *CatalogService {
	s := &CatalogService{cities: cities, flights: flights}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SeedCities inserts the configured list. Every call inserts a full copy.
func (s *CatalogService) SeedCities(ctx context.Context) (int, error) {
	return s.SeedCitiesNamed(ctx, s.seedCities)
}

func (s *CatalogService) SeedCitiesNamed(ctx context.Context, names []string) (int, error) {
	n, err := s.cities.InsertMany(ctx, names)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("insert cities")
		return 0, domain.Errorf(domain.KindInternal, MsgSeedFailed, err)
	}
	if s.cache != nil {
		if err := s.cache.InvalidateCities(ctx); err != nil {
			log.Ctx(ctx).Warn().Err(err).Msg("invalidate city cache")
		}
	}
	return n, nil
}

func (s *CatalogService) ListCities(ctx context.Context) ([]domain.City, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetCities(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	cities, err := s.cities.List(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("list cities")
		return nil, domain.Errorf(domain.KindInternal, MsgCitiesFailed, err)
	}
	if s.cache != nil {
		_ = s.cache.SetCities(ctx, cities)
	}
	return cities, nil
}

// AddFlight stores the flight as given. Route, date and prices are not checked.
func (s *CatalogService) AddFlight(ctx context.Context, input AddFlightInput) (*domain.Flight, error) {
	flight := &domain.Flight{
		ID:            domain.NewID(),
		OwnerID:       input.UserID,
		Name:          input.Name,
		From:          input.From,
		Destination:   input.Destination,
		PriceEconomy:  input.PriceEconomy,
		PriceBusiness: input.PriceBusiness,
		Date:          input.Date,
	}
	if err := s.flights.Create(ctx, flight); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("create flight")
		return nil, domain.Errorf(domain.KindInternal, MsgAddFailed, err)
	}
	return flight, nil
}

func (s *CatalogService) FindFlights(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	flights, err := s.flights.Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("find flights")
		return nil, domain.Errorf(domain.KindInternal, MsgFlightsFailed, err)
	}
	if flights == nil {
		flights = []domain.Flight{}
	}
	return flights, nil
}

var _ CatalogUseCase = (*CatalogService)(nil)
