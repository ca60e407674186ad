package models

import "time"

// SystemMetrics is a point-in-time summary of service health counters.
type SystemMetrics struct {
	CacheHitRatio                 float64   `json:"cache_hit_ratio"`
	CacheHits                     uint64    `json:"cache_hits"`
	CacheMisses                   uint64    `json:"cache_misses"`
	RequestsTotal                 uint64    `json:"requests_total"`
	AverageRequestDurationMs      float64   `json:"avg_request_duration_ms"`
	UpstreamCallCount             uint64    `json:"upstream_call_count"`
	UpstreamErrorCount            uint64    `json:"upstream_error_count"`
	AverageUpstreamCallDurationMs float64   `json:"avg_upstream_call_duration_ms"`
	Goroutines                    int       `json:"goroutines"`
	GeneratedAt                   time.Time `json:"generated_at"`
}
