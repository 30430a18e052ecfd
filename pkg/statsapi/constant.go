package statsapi

import "time"

const (
	// DefaultBaseURL is where the statistics backend listens by default.
	DefaultBaseURL = "http://localhost:5000"
	// DefaultTimeout is the default HTTP client timeout for the backend.
	DefaultTimeout = 30 * time.Second
)

// API paths.
const (
	PathHealth           = "/health"
	PathFilterOptions    = "/filters/options"
	PathExploreFilter    = "/explore/filter"
	PathRecommend        = "/recommend"
	PathComparePlatforms = "/compare/platforms"
	PathCompareRegions   = "/compare/regions"
)

// Query parameter names.
const (
	QueryPlatformA  = "A"
	QueryPlatformB  = "B"
	QueryRegionList = "list"
)
