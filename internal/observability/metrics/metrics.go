// Package metrics exposes low-cardinality service metrics through the
// process-wide Prometheus registry, bridged from OpenTelemetry instruments.
package metrics

import (
	"context"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
)

// Config identifies the emitting service on exported series.
type Config struct {
	ServiceName string
	Environment string
}

// allowedAttributeKeys keeps exported label sets low-cardinality and free of
// member identifiers.
var allowedAttributeKeys = map[string]struct{}{
	"endpoint":    {},
	"status_code": {},
	"service":     {},
	"env":         {},
	"result":      {},
}

// FilterAttributes drops any attribute whose key is not allowlisted.
func FilterAttributes(attrs ...attribute.KeyValue) []attribute.KeyValue {
	filtered := make([]attribute.KeyValue, 0, len(attrs))
	for _, attr := range attrs {
		key := strings.ToLower(strings.TrimSpace(string(attr.Key)))
		if _, ok := allowedAttributeKeys[key]; !ok {
			continue
		}
		filtered = append(filtered, attr)
	}
	return filtered
}

// NewProvider builds a meter provider that publishes into the default
// Prometheus registry. Series are scraped via the /metrics endpoint.
func NewProvider(lc fx.Lifecycle, cfg Config) (*sdkmetric.MeterProvider, error) {
	exporter, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, err
	}
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}

var Module = fx.Module("metrics",
	fx.Provide(NewProvider),
	fx.Provide(func(cfg Config, provider *sdkmetric.MeterProvider) (*HTTPMetrics, error) {
		return NewHTTPMetrics(cfg, provider)
	}),
)
