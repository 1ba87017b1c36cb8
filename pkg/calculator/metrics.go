package calculator

import (
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
)

var (
	mUnitsPushed   = stats.Int64("calculator/units_pushed", "Number of tokens accepted by evaluators", stats.UnitDimensionless)
	mInvalidUnits  = stats.Int64("calculator/invalid_units", "Number of tokens rejected as invalid", stats.UnitDimensionless)
	mNumericErrors = stats.Int64("calculator/numeric_errors", "Number of evaluations that produced NaN or infinity", stats.UnitDimensionless)
	mUndos         = stats.Int64("calculator/undos", "Number of session undo requests that restored a snapshot", stats.UnitDimensionless)
)

// Views contains the OpenCensus views for the calculator measures.
var Views = []*view.View{
	{
		Name:        "calculator/units_pushed",
		Description: "Count of tokens accepted by evaluators",
		Measure:     mUnitsPushed,
		Aggregation: view.Sum(),
	},
	{
		Name:        "calculator/invalid_units",
		Description: "Count of tokens rejected as invalid",
		Measure:     mInvalidUnits,
		Aggregation: view.Count(),
	},
	{
		Name:        "calculator/numeric_errors",
		Description: "Count of evaluations that produced NaN or infinity",
		Measure:     mNumericErrors,
		Aggregation: view.Count(),
	},
	{
		Name:        "calculator/undos",
		Description: "Count of session undo requests that restored a snapshot",
		Measure:     mUndos,
		Aggregation: view.Count(),
	},
}
