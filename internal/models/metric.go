package models

// MetricDefinition represents one row of the Dynamic Measure table:
// a display name mapped to a registered aggregation, plus the position
// it takes in the metric switch control. It is not joined to any other
// table; it only parametrizes which aggregation a chart renders.
type MetricDefinition struct {
	Name        string `json:"name" yaml:"metric"`
	DisplayName string `json:"display_name" yaml:"display_name"`
	SortOrder   int    `json:"sort_order" yaml:"sort_order"`
}

// MetricResult is the outcome of evaluating one metric over a filtered
// trip set: the raw value plus its display string. NoData marks the
// defined "no value" outcome (e.g. an average over zero bookings); it is
// a normal result, not an error.
type MetricResult struct {
	Metric    string      `json:"metric"`
	Value     interface{} `json:"value,omitempty"`
	Formatted string      `json:"formatted"`
	NoData    bool        `json:"no_data,omitempty"`
}
