package benchmarks

import _ "embed"

// Category names accepted by the embedded table.
const (
	CategoryVisibility  = "visibility_performance"
	CategoryPerformance = "performance_metrics"
	CategoryMetadata    = "metadata_optimization"
)

//go:embed benchmarks.yaml
var defaultTableYAML []byte
