package route_pricing

import (
	"context"
	"fmt"
	"strings"
)

// RoutePricingFactory — локальная реализация справочника маршрутов и прайсера.
// route_scope имеет вид "province", "province/district" или
// "province/district/ward"; чем шире зона, тем дороже перевозка. Снаружи эти
// две роли закрывают отдельные сервисы, движок видит только интерфейсы.
type RoutePricingFactory struct{}

func New() *RoutePricingFactory {
	return &RoutePricingFactory{}
}

const (
	basePriceCents      = 5000
	centsPerKg          = 200
	centsPerCubicMeter  = 10000
	maxRouteScopeLevels = 3
)

func (f *RoutePricingFactory) ValidateRouteScope(_ context.Context, routeScope string) error {
	if routeScope == "" {
		return fmt.Errorf("route scope is empty")
	}

	levels := strings.Split(routeScope, "/")
	if len(levels) > maxRouteScopeLevels {
		return fmt.Errorf("route scope %q has more than %d levels", routeScope, maxRouteScopeLevels)
	}

	for _, level := range levels {
		if level == "" {
			return fmt.Errorf("route scope %q has an empty level", routeScope)
		}
		for _, r := range level {
			if r < '0' || r > '9' {
				return fmt.Errorf("route scope %q: level %q is not a numeric code", routeScope, level)
			}
		}
	}

	return nil
}

func (f *RoutePricingFactory) Quote(ctx context.Context, weightKg, volumeM3 float64, routeScope string) (int64, error) {
	if err := f.ValidateRouteScope(ctx, routeScope); err != nil {
		return 0, err
	}

	price := float64(basePriceCents) + weightKg*centsPerKg + volumeM3*centsPerCubicMeter

	// межпровинциальные перевозки дороже внутрирайонных
	switch len(strings.Split(routeScope, "/")) {
	case 1:
		price *= 2
	case 2:
		price *= 1.5
	}

	return int64(price), nil
}
