// Package analytics tracks search activity in memory and aggregates it
// into a dashboard. Events are request-scoped observations; nothing is
// persisted across restarts.
package analytics

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/devref/docsearch/model"
)

const maxEventsToKeep = 10000 // Keep last 10k events for performance

// SearchEvent records one search request.
type SearchEvent struct {
	ID           string        `json:"id"`
	Query        string        `json:"query"`
	Intent       model.Intent  `json:"intent"`
	ResultCount  int           `json:"result_count"`
	Filtered     bool          `json:"filtered"`
	ResponseTime time.Duration `json:"response_time"`
	Timestamp    time.Time     `json:"timestamp"`
}

// PopularSearch is one entry of the top-queries list.
type PopularSearch struct {
	Query       string `json:"query"`
	SearchCount int    `json:"search_count"`
}

// Dashboard aggregates tracked search events.
type Dashboard struct {
	TotalSearches      int                  `json:"total_searches"`
	AvgResponseTimeMs  int64                `json:"avg_response_time_ms"`
	ZeroResultRate     float64              `json:"zero_result_rate"`
	PopularSearches    []PopularSearch      `json:"popular_searches"`
	IntentDistribution map[model.Intent]int `json:"intent_distribution"`
}

// Service implements analytics tracking and reporting.
type Service struct {
	mutex  sync.RWMutex
	events []SearchEvent
}

// NewService creates a new analytics service.
func NewService() *Service {
	return &Service{
		events: make([]SearchEvent, 0),
	}
}

// TrackSearchEvent records a new search event. The event id and timestamp
// are assigned here.
func (s *Service) TrackSearchEvent(event SearchEvent) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	event.ID = uuid.New().String()
	event.Timestamp = time.Now()
	s.events = append(s.events, event)

	// Keep only the latest events to prevent unbounded growth
	if len(s.events) > maxEventsToKeep {
		s.events = s.events[len(s.events)-maxEventsToKeep:]
	}
}

// EventCount returns the number of currently tracked events.
func (s *Service) EventCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.events)
}

// DashboardData aggregates all tracked events into a dashboard.
func (s *Service) DashboardData() Dashboard {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	dashboard := Dashboard{
		TotalSearches:      len(s.events),
		AvgResponseTimeMs:  s.calculateAvgResponseTime(),
		ZeroResultRate:     s.calculateZeroResultRate(),
		PopularSearches:    s.getPopularSearches(),
		IntentDistribution: s.getIntentDistribution(),
	}

	return dashboard
}

// calculateAvgResponseTime returns the mean response time in milliseconds.
func (s *Service) calculateAvgResponseTime() int64 {
	if len(s.events) == 0 {
		return 0
	}

	var total time.Duration
	for _, event := range s.events {
		total += event.ResponseTime
	}
	return (total / time.Duration(len(s.events))).Milliseconds()
}

// calculateZeroResultRate returns the fraction of searches that matched
// nothing.
func (s *Service) calculateZeroResultRate() float64 {
	if len(s.events) == 0 {
		return 0
	}

	zero := 0
	for _, event := range s.events {
		if event.ResultCount == 0 {
			zero++
		}
	}
	return float64(zero) / float64(len(s.events))
}

// getPopularSearches returns the most frequent query strings.
func (s *Service) getPopularSearches() []PopularSearch {
	queryCounts := make(map[string]int)
	for _, event := range s.events {
		if event.Query != "" {
			queryCounts[event.Query]++
		}
	}

	popular := make([]PopularSearch, 0, len(queryCounts))
	for query, count := range queryCounts {
		popular = append(popular, PopularSearch{Query: query, SearchCount: count})
	}

	// Sort by count descending, then query for a stable listing
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].SearchCount != popular[j].SearchCount {
			return popular[i].SearchCount > popular[j].SearchCount
		}
		return popular[i].Query < popular[j].Query
	})

	// Return top 5
	if len(popular) > 5 {
		popular = popular[:5]
	}
	return popular
}

// getIntentDistribution counts searches per derived intent.
func (s *Service) getIntentDistribution() map[model.Intent]int {
	dist := make(map[model.Intent]int)
	for _, event := range s.events {
		dist[event.Intent]++
	}
	return dist
}
