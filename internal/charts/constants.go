package charts

const (
	// DefaultChartWidth is used when the terminal size cannot be
	// determined.
	DefaultChartWidth = 80

	// BarRowHeight is the vertical space per bar in the group chart.
	BarRowHeight = 2
)
