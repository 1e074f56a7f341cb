package analytics

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devref/docsearch/model"
)

func TestTrackSearchEventAssignsIDAndTimestamp(t *testing.T) {
	service := NewService()

	service.TrackSearchEvent(SearchEvent{Query: "react hooks", Intent: model.IntentSearch, ResultCount: 3})

	assert.Equal(t, 1, service.EventCount())

	dashboard := service.DashboardData()
	assert.Equal(t, 1, dashboard.TotalSearches)
}

func TestDashboardEmpty(t *testing.T) {
	service := NewService()

	dashboard := service.DashboardData()

	assert.Zero(t, dashboard.TotalSearches)
	assert.Zero(t, dashboard.AvgResponseTimeMs)
	assert.Zero(t, dashboard.ZeroResultRate)
	assert.Empty(t, dashboard.PopularSearches)
	assert.Empty(t, dashboard.IntentDistribution)
}

func TestDashboardAggregation(t *testing.T) {
	service := NewService()

	service.TrackSearchEvent(SearchEvent{Query: "react", Intent: model.IntentSearch, ResultCount: 2, ResponseTime: 10 * time.Millisecond})
	service.TrackSearchEvent(SearchEvent{Query: "react", Intent: model.IntentSearch, ResultCount: 2, ResponseTime: 20 * time.Millisecond})
	service.TrackSearchEvent(SearchEvent{Query: "what is css", Intent: model.IntentDefinition, ResultCount: 0, ResponseTime: 30 * time.Millisecond})
	service.TrackSearchEvent(SearchEvent{Query: "zzz", Intent: model.IntentSearch, ResultCount: 0, ResponseTime: 40 * time.Millisecond})

	dashboard := service.DashboardData()

	assert.Equal(t, 4, dashboard.TotalSearches)
	assert.Equal(t, int64(25), dashboard.AvgResponseTimeMs)
	assert.InDelta(t, 0.5, dashboard.ZeroResultRate, 1e-9)
	assert.Equal(t, 3, dashboard.IntentDistribution[model.IntentSearch])
	assert.Equal(t, 1, dashboard.IntentDistribution[model.IntentDefinition])

	require.NotEmpty(t, dashboard.PopularSearches)
	assert.Equal(t, "react", dashboard.PopularSearches[0].Query)
	assert.Equal(t, 2, dashboard.PopularSearches[0].SearchCount)
}

func TestPopularSearchesTopFive(t *testing.T) {
	service := NewService()

	for i := 0; i < 8; i++ {
		query := fmt.Sprintf("query-%d", i)
		for j := 0; j <= i; j++ {
			service.TrackSearchEvent(SearchEvent{Query: query, Intent: model.IntentSearch, ResultCount: 1})
		}
	}

	popular := service.DashboardData().PopularSearches

	require.Len(t, popular, 5)
	assert.Equal(t, "query-7", popular[0].Query)
	assert.Equal(t, 8, popular[0].SearchCount)
	for i := 1; i < len(popular); i++ {
		assert.GreaterOrEqual(t, popular[i-1].SearchCount, popular[i].SearchCount)
	}
}

func TestPopularSearchesSkipsEmptyQueries(t *testing.T) {
	service := NewService()

	service.TrackSearchEvent(SearchEvent{Query: "", Intent: model.IntentSearch})
	service.TrackSearchEvent(SearchEvent{Query: "react", Intent: model.IntentSearch})

	popular := service.DashboardData().PopularSearches
	require.Len(t, popular, 1)
	assert.Equal(t, "react", popular[0].Query)
}

func TestTrackSearchEventConcurrent(t *testing.T) {
	service := NewService()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			service.TrackSearchEvent(SearchEvent{Query: "concurrent", Intent: model.IntentSearch, ResultCount: 1})
			_ = service.DashboardData()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, service.EventCount())
}
