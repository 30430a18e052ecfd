package chart

import "dashboard-srv/internal/model"

// EngagementPie maps a distribution to a pie chart, keeping the distribution's order.
// Colors cycle when there are more buckets than colors.
func EngagementPie(dist model.EngagementDistribution) Spec {
	return DistributionPie("Engagement Distribution", dist)
}

// DistributionPie is EngagementPie under another title, used for one platform or region.
func DistributionPie(title string, dist model.EngagementDistribution) Spec {
	labels := make([]string, 0, len(dist))
	values := make([]float64, 0, len(dist))
	colors := make([]string, 0, len(dist))
	for i, b := range dist {
		labels = append(labels, b.Label)
		values = append(values, float64(b.Count))
		colors = append(colors, cycle(pieColors, i))
	}

	return Spec{
		Type: TypePie,
		Data: Data{
			Labels:   labels,
			Datasets: []Dataset{{Data: values, BackgroundColor: colors}},
		},
		Options: newOptions(title, "", true),
	}
}

// EngagementTimeSeries maps monthly points to a line chart of engagement rate in percent.
// Points are kept in the order given. ok is false when there is nothing to draw.
func EngagementTimeSeries(points []model.TimeSeriesPoint) (Spec, bool) {
	if len(points) == 0 {
		return Spec{}, false
	}

	labels := make([]string, 0, len(points))
	values := make([]float64, 0, len(points))
	for _, p := range points {
		labels = append(labels, p.PostDate)
		values = append(values, p.EngRate*PercentScale)
	}

	return Spec{
		Type: TypeLine,
		Data: Data{
			Labels: labels,
			Datasets: []Dataset{{
				Label:       "Engagement Rate (%)",
				Data:        values,
				BorderColor: lineColor,
				Tension:     0.3,
			}},
		},
		Options: newOptions("Engagement Over Time", "Engagement Rate (%)", false),
	}, true
}

// PlatformComparison maps two platform summaries to a grouped bar chart with
// five fixed categories. Views are in thousands and the rate in percent.
func PlatformComparison(r model.PlatformComparisonResult) Spec {
	platforms := []model.PlatformStats{r.PlatformA, r.PlatformB}
	datasets := make([]Dataset, 0, len(platforms))
	for i, p := range platforms {
		datasets = append(datasets, Dataset{
			Label:           p.Platform,
			Data:            PlatformValues(p),
			BackgroundColor: []string{cycle(platformColors, i)},
		})
	}

	return Spec{
		Type: TypeBar,
		Data: Data{
			Labels:   Categories(),
			Datasets: datasets,
		},
		Options: newOptions("Platform Comparison", "", true),
	}
}

// Categories returns the platform comparison categories in display order.
func Categories() []string {
	return []string{
		CategoryAvgViews,
		CategoryEngagementRate,
		CategoryAvgLikes,
		CategoryAvgShares,
		CategoryAvgComments,
	}
}

// PlatformValues returns one platform's bar heights, aligned with Categories.
func PlatformValues(p model.PlatformStats) []float64 {
	return []float64{
		p.AvgViews / ViewsScale,
		p.AvgEngagementRate * PercentScale,
		p.AvgLikes,
		p.AvgShares,
		p.AvgComments,
	}
}

// RegionEngagement maps region summaries to one bar per region in the order given.
func RegionEngagement(r model.RegionComparisonResult) Spec {
	labels := make([]string, 0, len(r.Regions))
	values := make([]float64, 0, len(r.Regions))
	colors := make([]string, 0, len(r.Regions))
	for i, rs := range r.Regions {
		labels = append(labels, rs.Region)
		values = append(values, rs.AvgEngagementRate*PercentScale)
		colors = append(colors, cycle(regionColors, i))
	}

	return Spec{
		Type: TypeBar,
		Data: Data{
			Labels: labels,
			Datasets: []Dataset{{
				Label:           "Avg Engagement Rate (%)",
				Data:            values,
				BackgroundColor: colors,
			}},
		},
		Options: newOptions("Engagement Rate by Region", "Engagement Rate (%)", false),
	}
}

func newOptions(title, yLabel string, legend bool) Options {
	opts := Options{
		Responsive: true,
		Plugins: Plugins{
			Legend: Legend{Display: legend, Position: "bottom"},
			Title:  Title{Display: title != "", Text: title},
		},
	}
	if yLabel != "" {
		opts.Scales = &Scales{Y: Axis{
			BeginAtZero: true,
			Title:       Title{Display: true, Text: yLabel},
		}}
	}
	return opts
}

func cycle(palette []string, i int) string {
	return palette[i%len(palette)]
}
