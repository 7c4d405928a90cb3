package geocoding

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"parcel-service/pkg/logger"
)

const (
	serviceName   = "nominatim"
	reverseMethod = "reverse"
	reversePath   = "/reverse"
	zoomLevel     = "18"
)

// Адреса-заглушки: геокодер никогда не возвращает ошибку.
const (
	AddressNotFound     = "Address not found"
	AddressLookupFailed = "Error fetching address"
)

const (
	outcomeOK       = "ok"
	outcomeNotFound = "not_found"
	outcomeFailed   = "failed"
	outcomeCanceled = "canceled"
	outcomeSkipped  = "skipped"
)

// Часть оставшегося бюджета запроса, которую геокодер не трогает:
// после него вызывающему ещё нужно закоммитить доставку.
const (
	callerReserveShare = 4
	maxCallerReserve   = 2 * time.Second
)

type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// Delay минимальная пауза перед каждым исходящим запросом
	Delay time.Duration
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

type Gateway struct {
	client *resty.Client
	cache  cache
	delay  time.Duration
	log    logger.Logger
}

// New cache может быть nil: тогда каждый вызов идёт во внешний сервис.
func New(log gatewayLogger, cfg Config, c cache) *Gateway {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json")

	return &Gateway{
		client: client,
		cache:  c,
		delay:  cfg.Delay,
		log:    log.With(logger.NewField("gateway", serviceName)),
	}
}

func (g *Gateway) ReverseGeocode(ctx context.Context, latitude, longitude float64) string {
	if address, ok := g.fromCache(ctx, latitude, longitude); ok {
		return address
	}

	start := time.Now()
	address, outcome := g.lookup(ctx, latitude, longitude)
	// Метрики Prometheus
	GeocodingRequestDuration.WithLabelValues(serviceName, reverseMethod, outcome).Observe(time.Since(start).Seconds())

	if outcome == outcomeOK {
		g.toCache(ctx, latitude, longitude, address)
	}
	return address
}

func (g *Gateway) lookup(parent context.Context, latitude, longitude float64) (string, string) {
	ctx, cancel := lookupContext(parent)
	defer cancel()

	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) <= g.delay {
		// на паузу и запрос бюджета нет: сразу заглушка, контекст вызывающего жив
		return AddressLookupFailed, outcomeSkipped
	}

	if err := g.courtesyWait(ctx); err != nil {
		return AddressLookupFailed, outcomeCanceled
	}

	lookupLog := g.log.With(
		logger.NewField("lat", latitude),
		logger.NewField("lon", longitude),
	)

	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"format":         "json",
			"lat":            strconv.FormatFloat(latitude, 'f', -1, 64),
			"lon":            strconv.FormatFloat(longitude, 'f', -1, 64),
			"zoom":           zoomLevel,
			"addressdetails": "1",
		}).
		Get(reversePath)
	if err != nil {
		lookupLog.With(logger.NewField("error", err)).Warn("reverse geocoding request failed")
		return AddressLookupFailed, outcomeFailed
	}

	if resp.StatusCode() != http.StatusOK {
		lookupLog.With(logger.NewField("status", resp.StatusCode())).Warn("reverse geocoding unexpected status")
		return AddressNotFound, outcomeNotFound
	}

	var body reverseResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		lookupLog.With(logger.NewField("error", err)).Warn("reverse geocoding decode failed")
		return AddressLookupFailed, outcomeFailed
	}

	if body.DisplayName == "" {
		return AddressNotFound, outcomeNotFound
	}
	return body.DisplayName, outcomeOK
}

// courtesyWait пауза перед каждым исходящим запросом. Вызовы друг друга не ждут:
// пауза отсчитывается для каждого запроса отдельно.
func (g *Gateway) courtesyWait(ctx context.Context) error {
	if g.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(g.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// lookupContext отрезает от дедлайна родителя резерв для вызывающего.
func lookupContext(parent context.Context) (context.Context, context.CancelFunc) {
	deadline, ok := parent.Deadline()
	if !ok {
		return context.WithCancel(parent)
	}

	reserve := time.Until(deadline) / callerReserveShare
	if reserve > maxCallerReserve {
		reserve = maxCallerReserve
	}
	return context.WithDeadline(parent, deadline.Add(-reserve))
}

func (g *Gateway) fromCache(ctx context.Context, latitude, longitude float64) (string, bool) {
	if g.cache == nil {
		return "", false
	}

	address, ok, err := g.cache.Get(ctx, latitude, longitude)
	if err != nil {
		g.log.With(logger.NewField("error", err)).Warn("geocoding cache read failed")
		GeocodingCacheTotal.WithLabelValues("error").Inc()
		return "", false
	}
	if !ok {
		GeocodingCacheTotal.WithLabelValues("miss").Inc()
		return "", false
	}

	GeocodingCacheTotal.WithLabelValues("hit").Inc()
	return address, true
}

func (g *Gateway) toCache(ctx context.Context, latitude, longitude float64, address string) {
	if g.cache == nil {
		return
	}

	if err := g.cache.Set(ctx, latitude, longitude, address); err != nil {
		g.log.With(logger.NewField("error", err)).Warn("geocoding cache write failed")
	}
}
