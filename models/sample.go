package models

// Sample is a single observation of host and queue load.
type Sample struct {
	CPUUsagePercent float64 `json:"cpu_usage_percent"`
	// QueueLength is approximate; SQS only guarantees an eventually
	// consistent message count.
	QueueLength int `json:"queue_length"`
}

type Decision struct {
	DesiredProcessCount int    `json:"desired_process_count"`
	Reason              string `json:"reason"`
}
