package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	Reseeds              int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime is the wall time since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}

// OverallRate is generations per second across the whole run
func (s *Stats) OverallRate() float64 {
	secs := s.Runtime().Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(s.TotalGenerations) / secs
}
