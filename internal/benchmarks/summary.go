package benchmarks

// MetricGrade is one graded metric in a summary section.
type MetricGrade struct {
	Value float64 `json:"value"`
	Level Tier    `json:"level"`
	Score int     `json:"score"`
}

// Section is a graded category: metric name -> grade.
type Section map[string]MetricGrade

// Summary groups graded metrics by category and carries the overall score,
// the unweighted mean of every graded metric.
type Summary struct {
	Sections     map[string]Section `json:"sections"`
	OverallScore int                `json:"overall_score"`
}

// Summarize grades every metric in the input against the table. Input is
// category -> metric -> raw value; metrics the table does not know still
// appear in the output with the neutral grade so callers never lose data.
func (e *Evaluator) Summarize(input map[string]map[string]float64) Summary {
	summary := Summary{Sections: make(map[string]Section, len(input))}

	var total, count int
	for category, metrics := range input {
		section := make(Section, len(metrics))
		for metric, value := range metrics {
			grade := MetricGrade{
				Value: value,
				Level: e.Level(category, metric, value),
				Score: e.Score(category, metric, value),
			}
			section[metric] = grade
			total += grade.Score
			count++
		}
		summary.Sections[category] = section
	}

	if count > 0 {
		summary.OverallScore = total / count
	}
	return summary
}
