package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// EChartsRenderer renders charts as interactive HTML documents.
type EChartsRenderer struct{}

func NewEChartsRenderer() *EChartsRenderer {
	return &EChartsRenderer{}
}

func (r *EChartsRenderer) RenderLine(w io.Writer, c LineChart) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    c.Title,
			Subtitle: c.Subtitle,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: c.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: c.YLabel}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	line.SetXAxis(c.XValues)
	for _, series := range c.Series {
		data := make([]opts.LineData, 0, len(series.Values))
		for _, value := range series.Values {
			data = append(data, opts.LineData{Value: value})
		}
		line.AddSeries(series.Name, data)
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("rendering line chart %q: %w", c.Title, err)
	}
	return nil
}
