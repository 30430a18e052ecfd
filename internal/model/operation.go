package model

// Operation names one backend fetch. Each operation owns exactly one result slot.
type Operation string

const (
	OperationFilterOptions    Operation = "filter-options"
	OperationExplore          Operation = "explore"
	OperationRecommend        Operation = "recommend"
	OperationComparePlatforms Operation = "compare-platforms"
	OperationCompareRegions   Operation = "compare-regions"
)

// Operations lists every fetch operation.
var Operations = []Operation{
	OperationFilterOptions,
	OperationExplore,
	OperationRecommend,
	OperationComparePlatforms,
	OperationCompareRegions,
}

// IsValid reports whether o is a known operation.
func (o Operation) IsValid() bool {
	switch o {
	case OperationFilterOptions, OperationExplore, OperationRecommend,
		OperationComparePlatforms, OperationCompareRegions:
		return true
	}
	return false
}

// FetchOutcome is how a settled fetch affected its slot.
type FetchOutcome string

const (
	FetchApplied   FetchOutcome = "applied"
	FetchDiscarded FetchOutcome = "discarded"
	FetchFailed    FetchOutcome = "failed"
)
