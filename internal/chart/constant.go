package chart

const (
	TypePie  = "pie"
	TypeLine = "line"
	TypeBar  = "bar"
)

// Platform comparison categories, in display order.
const (
	CategoryAvgViews       = "Avg Views"
	CategoryEngagementRate = "Engagement Rate"
	CategoryAvgLikes       = "Avg Likes"
	CategoryAvgShares      = "Avg Shares"
	CategoryAvgComments    = "Avg Comments"
)

// ViewsScale divides view counts so they share an axis with rates and counts.
const ViewsScale = 1000.0

// PercentScale turns a rate in [0,1] into a percentage.
const PercentScale = 100.0

var (
	pieColors      = []string{"#10b981", "#f59e0b", "#ef4444"}
	regionColors   = []string{"#6366f1", "#ec4899", "#14b8a6", "#f97316", "#8b5cf6"}
	platformColors = []string{"#3b82f6", "#f43f5e"}
	lineColor      = "#3b82f6"
)
