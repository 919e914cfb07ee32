package benchmarks

import (
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"seo-audit-backend/internal/shared/telemetry"
)

// Tier is a qualitative performance bucket for a metric value.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierAverage   Tier = "average"
	TierPoor      Tier = "poor"
)

// Bound is an inclusive one-sided threshold. A tier with Min matches when
// value >= Min; a tier with Max matches when value <= Max.
type Bound struct {
	Min *float64 `yaml:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty"`
}

// Thresholds holds the per-tier bounds for one metric. Tiers are always
// evaluated excellent, good, average, poor; first match wins.
type Thresholds struct {
	Excellent *Bound `yaml:"excellent,omitempty"`
	Good      *Bound `yaml:"good,omitempty"`
	Average   *Bound `yaml:"average,omitempty"`
	Poor      *Bound `yaml:"poor,omitempty"`
}

// Table maps category -> metric -> thresholds. Loaded once, read-only after.
type Table map[string]map[string]Thresholds

// Evaluator grades metric values against a benchmark table. It is pure and
// safe for concurrent use.
type Evaluator struct {
	table Table
}

// NewEvaluator constructs an Evaluator from a threshold table.
func NewEvaluator(table Table) (*Evaluator, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("benchmark table is empty")
	}
	for category, metrics := range table {
		if len(metrics) == 0 {
			return nil, fmt.Errorf("benchmark category %q has no metrics", category)
		}
	}
	return &Evaluator{table: table}, nil
}

// ParseTable decodes a YAML benchmark table.
func ParseTable(raw []byte) (Table, error) {
	var table Table
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("parse benchmark table: %w", err)
	}
	return table, nil
}

var (
	defaultOnce sync.Once
	defaultEval *Evaluator
)

// Default returns the process-wide evaluator built from the embedded table.
// The embedded table is validated at first use; a broken embed is a
// programming error and panics rather than degrading every lookup.
func Default() *Evaluator {
	defaultOnce.Do(func() {
		table, err := ParseTable(defaultTableYAML)
		if err != nil {
			panic(fmt.Sprintf("benchmarks: embedded table invalid: %v", err))
		}
		eval, err := NewEvaluator(table)
		if err != nil {
			panic(fmt.Sprintf("benchmarks: embedded table invalid: %v", err))
		}
		defaultEval = eval
	})
	return defaultEval
}

// Level grades a metric value into a tier. Unknown category/metric pairs
// resolve to TierAverage and are logged as a lookup miss, never an error.
func (e *Evaluator) Level(category, metric string, value float64) Tier {
	thresholds, ok := e.lookup(category, metric)
	if !ok {
		telemetry.Info("benchmark.lookup_miss", map[string]any{
			"category": category,
			"metric":   metric,
		})
		return TierAverage
	}

	for _, candidate := range []struct {
		tier  Tier
		bound *Bound
	}{
		{TierExcellent, thresholds.Excellent},
		{TierGood, thresholds.Good},
		{TierAverage, thresholds.Average},
		{TierPoor, thresholds.Poor},
	} {
		if matches(candidate.bound, value) {
			return candidate.tier
		}
	}
	return TierPoor
}

// Score maps a metric value to 0-100 by linear interpolation between the
// poor boundary (0) and the excellent boundary (100). Polarity comes from
// whether the excellent tier carries a min (higher is better) or a max
// (lower is better). Missing boundaries resolve to the neutral 50.
func (e *Evaluator) Score(category, metric string, value float64) int {
	thresholds, ok := e.lookup(category, metric)
	if !ok {
		telemetry.Info("benchmark.lookup_miss", map[string]any{
			"category": category,
			"metric":   metric,
		})
		return 50
	}

	excellent := thresholds.Excellent
	poor := thresholds.Poor
	if excellent == nil || poor == nil {
		return 50
	}

	if excellent.Min != nil {
		// Higher is better: poor.Max -> 0, excellent.Min -> 100.
		if poor.Max == nil || *excellent.Min == *poor.Max {
			return 50
		}
		switch {
		case value >= *excellent.Min:
			return 100
		case value <= *poor.Max:
			return 0
		default:
			return int((value - *poor.Max) / (*excellent.Min - *poor.Max) * 100)
		}
	}

	if excellent.Max != nil {
		// Lower is better: poor.Min -> 0, excellent.Max -> 100.
		if poor.Min == nil || *poor.Min == *excellent.Max {
			return 50
		}
		switch {
		case value <= *excellent.Max:
			return 100
		case value >= *poor.Min:
			return 0
		default:
			return int((*poor.Min - value) / (*poor.Min - *excellent.Max) * 100)
		}
	}

	return 50
}

func (e *Evaluator) lookup(category, metric string) (Thresholds, bool) {
	metrics, ok := e.table[category]
	if !ok {
		return Thresholds{}, false
	}
	thresholds, ok := metrics[metric]
	return thresholds, ok
}

func matches(bound *Bound, value float64) bool {
	if bound == nil {
		return false
	}
	if bound.Min != nil && value >= *bound.Min {
		return true
	}
	if bound.Max != nil && value <= *bound.Max {
		return true
	}
	return false
}
