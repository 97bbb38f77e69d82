package batching

import "time"

// Config задаёт пороги группировки заказов. Передаётся явно,
// скрытых глобальных значений по умолчанию нет.
type Config struct {
	PharmacyProximityKm    float64
	DestinationProximityKm float64
	TimeWindow             time.Duration
	MaxBatchSize           int
}

func (c Config) Validate() error {
	if c.PharmacyProximityKm <= 0 ||
		c.DestinationProximityKm <= 0 ||
		c.TimeWindow <= 0 ||
		c.MaxBatchSize < 1 {
		return ErrInvalidConfig
	}
	return nil
}
