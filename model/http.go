package model

type AnalyzeRequestBody struct {
	Onsets []float64 `json:"onsets"`
}

type GroupSummary struct {
	StartTime          float64  `json:"start_time"`
	Duration           float64  `json:"duration"`
	NumEvents          int      `json:"num_events"`
	EventInterval      *float64 `json:"event_interval,omitempty"`
	EventIntervalRatio float64  `json:"event_interval_ratio"`
	StartTimeInterval  *float64 `json:"start_time_interval,omitempty"`
	RepeatsPrevious    bool     `json:"repeats_previous"`
}

type AnalyzeResponse struct {
	Id        string         `json:"id"`
	NumEvents int            `json:"num_events"`
	Groups    []GroupSummary `json:"groups"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
