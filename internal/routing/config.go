package routing

// Config carries the fixed planning constants threaded through the strategy
// functions. Values are planning estimates, not live telemetry: completion
// times are derived purely from distance and AverageSpeedKmph.
type Config struct {
	// Assumed average truck speed used to convert distance to travel time.
	AverageSpeedKmph float64
	// Minimum time advantage (hours) Parallel must show over MultiPickup
	// before the optimizer prefers the larger fleet.
	GraceHours float64
	// Units one truck can carry in a single trip.
	TruckCapacity int
}

func DefaultConfig() Config {
	return Config{
		AverageSpeedKmph: 40,
		GraceHours:       2.0,
		TruckCapacity:    100,
	}
}

func (c Config) hours(km float64) float64 { return km / c.AverageSpeedKmph }
