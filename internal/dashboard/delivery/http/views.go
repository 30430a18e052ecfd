package http

import (
	"fmt"
	"strconv"
	"strings"

	"dashboard-srv/internal/chart"
	"dashboard-srv/internal/model"

	"github.com/dustin/go-humanize"
)

// =====================================================
// Page view
// =====================================================

// pageView is everything the page template needs. Only the active screen's
// block is populated, so results held for other screens are never rendered.
type pageView struct {
	Screen    model.Screen   `json:"screen"`
	Nav       []navItem      `json:"nav"`
	Loading   bool           `json:"loading"`
	Features  featuresView   `json:"features"`
	Landing   *landingView   `json:"landing,omitempty"`
	Explore   *exploreView   `json:"explore,omitempty"`
	Recommend *recommendView `json:"recommend,omitempty"`
	Compare   *compareView   `json:"compare,omitempty"`
}

type navItem struct {
	ID     model.Screen `json:"id"`
	Title  string       `json:"title"`
	Active bool         `json:"active"`
}

type featuresView struct {
	Presets bool `json:"presets"`
	Export  bool `json:"export"`
}

type optionsView struct {
	Platforms    []string `json:"platforms"`
	ContentTypes []string `json:"content_types"`
	Regions      []string `json:"regions"`
	DateMin      string   `json:"date_min,omitempty"`
	DateMax      string   `json:"date_max,omitempty"`
}

// newPageView renders st for display. It has no side effects.
func newPageView(st model.DashboardState, features Features, presets []model.FilterPreset) pageView {
	v := pageView{
		Screen:   st.Screen,
		Loading:  st.Loading(),
		Features: featuresView{Presets: features.Presets, Export: features.Export},
	}
	for _, s := range model.Screens {
		v.Nav = append(v.Nav, navItem{ID: s, Title: s.Title(), Active: s == st.Screen})
	}

	opts := newOptionsView(st.FilterOptions)
	switch st.Screen {
	case model.ScreenExplore:
		v.Explore = newExploreView(st, opts, presets)
		v.Explore.Features = v.Features
	case model.ScreenRecommend:
		v.Recommend = newRecommendView(st, opts)
	case model.ScreenCompare:
		v.Compare = newCompareView(st, opts)
	default:
		v.Landing = newLandingView(st.FilterOptions)
	}
	return v
}

func newOptionsView(fo *model.FilterOptions) optionsView {
	if fo == nil {
		return optionsView{}
	}
	v := optionsView{
		Platforms:    fo.Platforms,
		ContentTypes: fo.ContentTypes,
		Regions:      fo.Regions,
	}
	if fo.DateRange != nil {
		v.DateMin = fo.DateRange.Min
		v.DateMax = fo.DateRange.Max
	}
	return v
}

// =====================================================
// Landing
// =====================================================

type landingView struct {
	Stats *landingStatsView `json:"stats,omitempty"`
}

type landingStatsView struct {
	TotalPosts        string `json:"total_posts"`
	AvgViews          string `json:"avg_views"`
	AvgEngagementRate string `json:"avg_engagement_rate"`
	Platforms         int    `json:"platforms"`
	Regions           int    `json:"regions"`
	DateRange         string `json:"date_range,omitempty"`
}

func newLandingView(fo *model.FilterOptions) *landingView {
	v := &landingView{}
	if fo == nil {
		return v
	}
	v.Stats = &landingStatsView{
		TotalPosts:        humanize.Comma(fo.Stats.TotalPosts),
		AvgViews:          formatCount(fo.Stats.AvgViews),
		AvgEngagementRate: formatPercent(fo.Stats.AvgEngagementRate),
		Platforms:         len(fo.Platforms),
		Regions:           len(fo.Regions),
	}
	if fo.DateRange != nil {
		v.Stats.DateRange = fo.DateRange.Min + " to " + fo.DateRange.Max
	}
	return v
}

// =====================================================
// Explore
// =====================================================

type exploreView struct {
	Filters  model.Filters      `json:"filters"`
	Options  optionsView        `json:"options"`
	Presets  []presetView       `json:"presets,omitempty"`
	Result   *exploreResultView `json:"result,omitempty"`
	Features featuresView       `json:"-"`
}

type presetView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

type exploreResultView struct {
	TotalPosts        string      `json:"total_posts"`
	AvgViews          string      `json:"avg_views"`
	AvgLikes          string      `json:"avg_likes"`
	AvgShares         string      `json:"avg_shares"`
	AvgComments       string      `json:"avg_comments"`
	AvgEngagementRate string      `json:"avg_engagement_rate"`
	Distribution      *chart.Spec `json:"distribution,omitempty"`
	TimeSeries        *chart.Spec `json:"time_series,omitempty"`
	Months            []monthView `json:"months,omitempty"`
	TopPosts          []postView  `json:"top_posts"`
}

type monthView struct {
	Month   string `json:"month"`
	EngRate string `json:"eng_rate"`
	Views   string `json:"views"`
}

type postView struct {
	Platform    string `json:"platform"`
	ContentType string `json:"content_type"`
	Region      string `json:"region"`
	Views       string `json:"views"`
	Likes       string `json:"likes"`
	Shares      string `json:"shares"`
	Comments    string `json:"comments"`
	EngRate     string `json:"eng_rate"`
}

func newExploreView(st model.DashboardState, opts optionsView, presets []model.FilterPreset) *exploreView {
	v := &exploreView{
		Filters: st.Filters,
		Options: opts,
	}
	for _, p := range presets {
		v.Presets = append(v.Presets, presetView{ID: p.ID, Name: p.Name, Summary: filtersSummary(p.Filters)})
	}

	r := st.Explore
	if r == nil {
		return v
	}
	res := &exploreResultView{
		TotalPosts:        humanize.Comma(r.Summary.TotalPosts),
		AvgViews:          formatCount(r.Summary.AvgViews),
		AvgLikes:          formatCount(r.Summary.AvgLikes),
		AvgShares:         formatCount(r.Summary.AvgShares),
		AvgComments:       formatCount(r.Summary.AvgComments),
		AvgEngagementRate: formatPercent(r.Summary.AvgEngagementRate),
		TopPosts:          make([]postView, 0, len(r.TopPosts)),
	}
	if len(r.EngagementDistribution) > 0 {
		pie := chart.EngagementPie(r.EngagementDistribution)
		res.Distribution = &pie
	}
	if line, ok := chart.EngagementTimeSeries(r.TimeSeries); ok {
		res.TimeSeries = &line
	}
	for _, p := range r.TimeSeries {
		res.Months = append(res.Months, monthView{
			Month:   p.PostDate,
			EngRate: formatPercent(p.EngRate),
			Views:   formatCount(p.Views),
		})
	}
	for _, p := range r.TopPosts {
		res.TopPosts = append(res.TopPosts, postView{
			Platform:    p.Platform,
			ContentType: p.ContentType,
			Region:      p.Region,
			Views:       formatCount(p.Views),
			Likes:       formatCount(p.Likes),
			Shares:      formatCount(p.Shares),
			Comments:    formatCount(p.Comments),
			EngRate:     formatPercent(p.EngRate),
		})
	}
	v.Result = res
	return v
}

func filtersSummary(f model.Filters) string {
	parts := []string{}
	for _, s := range []string{f.Platform, f.ContentType, f.Region} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if f.DateStart != "" || f.DateEnd != "" {
		parts = append(parts, f.DateStart+".."+f.DateEnd)
	}
	if len(parts) == 0 {
		return "All posts"
	}
	return strings.Join(parts, " · ")
}

// =====================================================
// Recommend
// =====================================================

type recommendView struct {
	Form          model.RecommendationForm `json:"form"`
	ExpectedViews string                   `json:"expected_views"`
	Options       optionsView              `json:"options"`
	Result        *recommendResultView     `json:"result,omitempty"`
}

type recommendResultView struct {
	Segment               *model.SegmentInfo `json:"segment,omitempty"`
	Confidence            string             `json:"confidence"`
	Recommendations       []string           `json:"recommendations"`
	ViewsP25              string             `json:"views_p25"`
	ViewsP50              string             `json:"views_p50"`
	ViewsP75              string             `json:"views_p75"`
	EngagementPercentiles *percentilesView   `json:"engagement_percentiles,omitempty"`
	AvgEngagementRate     string             `json:"avg_engagement_rate"`
}

type percentilesView struct {
	P25 string `json:"p25"`
	P50 string `json:"p50"`
	P75 string `json:"p75"`
}

func newRecommendView(st model.DashboardState, opts optionsView) *recommendView {
	v := &recommendView{
		Form:    st.RecommendationForm,
		Options: opts,
	}
	if ev := st.RecommendationForm.ExpectedViews; ev != nil {
		v.ExpectedViews = strconv.FormatInt(*ev, 10)
	}

	r := st.Recommendation
	if r == nil {
		return v
	}
	res := &recommendResultView{
		Segment:           r.SegmentInfo,
		Confidence:        fmt.Sprintf("%.0f%%", r.Confidence*100),
		Recommendations:   r.Recommendations,
		ViewsP25:          formatCount(r.PlatformStats.ViewsPercentiles.P25),
		ViewsP50:          formatCount(r.PlatformStats.ViewsPercentiles.P50),
		ViewsP75:          formatCount(r.PlatformStats.ViewsPercentiles.P75),
		AvgEngagementRate: formatPercent(r.PlatformStats.AvgEngagementRate),
	}
	if ep := r.PlatformStats.EngagementPercentiles; ep != nil {
		res.EngagementPercentiles = &percentilesView{
			P25: formatPercent(ep.P25),
			P50: formatPercent(ep.P50),
			P75: formatPercent(ep.P75),
		}
	}
	v.Result = res
	return v
}

// =====================================================
// Compare
// =====================================================

type compareView struct {
	PlatformA    string                  `json:"platform_a"`
	PlatformB    string                  `json:"platform_b"`
	Options      optionsView             `json:"options"`
	Regions      []regionOptionView      `json:"regions"`
	Platforms    *platformComparisonView `json:"platforms,omitempty"`
	RegionResult *regionComparisonView   `json:"region_result,omitempty"`
}

type regionOptionView struct {
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

type platformComparisonView struct {
	Chart         chart.Spec         `json:"chart"`
	Rows          []platformRowView  `json:"rows"`
	Distributions []distributionView `json:"distributions,omitempty"`
}

// distributionView is one platform's or region's engagement buckets.
type distributionView struct {
	Name  string     `json:"name"`
	Chart chart.Spec `json:"chart"`
}

type platformRowView struct {
	Platform          string `json:"platform"`
	TotalPosts        string `json:"total_posts"`
	AvgViews          string `json:"avg_views"`
	AvgEngagementRate string `json:"avg_engagement_rate"`
	AvgLikes          string `json:"avg_likes"`
	AvgShares         string `json:"avg_shares"`
	AvgComments       string `json:"avg_comments"`
}

type regionComparisonView struct {
	Chart         chart.Spec         `json:"chart"`
	Rows          []regionRowView    `json:"rows"`
	Distributions []distributionView `json:"distributions,omitempty"`
}

type regionRowView struct {
	Region            string `json:"region"`
	TotalPosts        string `json:"total_posts"`
	AvgViews          string `json:"avg_views"`
	AvgLikes          string `json:"avg_likes"`
	AvgEngagementRate string `json:"avg_engagement_rate"`
}

func newCompareView(st model.DashboardState, opts optionsView) *compareView {
	sel := st.Comparison
	v := &compareView{
		PlatformA: sel.PlatformA,
		PlatformB: sel.PlatformB,
		Options:   opts,
	}

	// Known regions in catalog order, then any selected region the catalog lacks.
	seen := map[string]bool{}
	for _, r := range opts.Regions {
		seen[r] = true
		v.Regions = append(v.Regions, regionOptionView{Name: r, Selected: sel.HasRegion(r)})
	}
	for _, r := range sel.SelectedRegions {
		if !seen[r] {
			v.Regions = append(v.Regions, regionOptionView{Name: r, Selected: true})
		}
	}

	if pc := st.PlatformComparison; pc != nil {
		pv := &platformComparisonView{
			Chart: chart.PlatformComparison(*pc),
			Rows:  []platformRowView{newPlatformRow(pc.PlatformA), newPlatformRow(pc.PlatformB)},
		}
		for _, p := range []model.PlatformStats{pc.PlatformA, pc.PlatformB} {
			pv.Distributions = appendDistribution(pv.Distributions, p.Platform, p.EngagementDistribution)
		}
		v.Platforms = pv
	}
	if rc := st.RegionComparison; rc != nil {
		rv := &regionComparisonView{Chart: chart.RegionEngagement(*rc)}
		for _, r := range rc.Regions {
			rv.Rows = append(rv.Rows, regionRowView{
				Region:            r.Region,
				TotalPosts:        humanize.Comma(r.TotalPosts),
				AvgViews:          formatCount(r.AvgViews),
				AvgLikes:          formatCount(r.AvgLikes),
				AvgEngagementRate: formatPercent(r.AvgEngagementRate),
			})
			rv.Distributions = appendDistribution(rv.Distributions, r.Region, r.EngagementDistribution)
		}
		v.RegionResult = rv
	}
	return v
}

// appendDistribution skips entities the backend sent no buckets for.
func appendDistribution(out []distributionView, name string, dist model.EngagementDistribution) []distributionView {
	if len(dist) == 0 {
		return out
	}
	return append(out, distributionView{Name: name, Chart: chart.DistributionPie(name, dist)})
}

func newPlatformRow(p model.PlatformStats) platformRowView {
	return platformRowView{
		Platform:          p.Platform,
		TotalPosts:        humanize.Comma(p.TotalPosts),
		AvgViews:          formatCount(p.AvgViews),
		AvgEngagementRate: formatPercent(p.AvgEngagementRate),
		AvgLikes:          formatCount(p.AvgLikes),
		AvgShares:         formatCount(p.AvgShares),
		AvgComments:       formatCount(p.AvgComments),
	}
}

// =====================================================
// Formatting
// =====================================================

func formatCount(v float64) string {
	return humanize.CommafWithDigits(v, 0)
}

func formatPercent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}
