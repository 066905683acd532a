package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// QueryThreshold filters which recorded operations are relevant to a check:
// either an absolute query count or a fraction of total traffic. The zero
// value means no threshold. Modeled as a single variant so "at most one"
// holds by construction.
type QueryThreshold struct {
	kind  thresholdKind
	count int
	pct   float64
}

type thresholdKind int

const (
	thresholdNone thresholdKind = iota
	thresholdCount
	thresholdPercentage
)

// CountThreshold returns a threshold expressed as an absolute query count.
func CountThreshold(n int) QueryThreshold {
	return QueryThreshold{kind: thresholdCount, count: n}
}

// PercentageThreshold returns a threshold expressed as a fraction of total
// traffic in [0, 0.05].
func PercentageThreshold(p float64) QueryThreshold {
	return QueryThreshold{kind: thresholdPercentage, pct: p}
}

// Count returns the absolute-count value, if that is the variant set.
func (t QueryThreshold) Count() (int, bool) {
	return t.count, t.kind == thresholdCount
}

// Percentage returns the traffic-fraction value, if that is the variant set.
func (t QueryThreshold) Percentage() (float64, bool) {
	return t.pct, t.kind == thresholdPercentage
}

// None reports whether no threshold was supplied.
func (t QueryThreshold) None() bool { return t.kind == thresholdNone }

// HistoricParameters scope the usage the registry compares a schema change
// against. Built once per invocation and never mutated.
type HistoricParameters struct {
	Window    ValidationWindow
	Threshold QueryThreshold
}

// RawHistoricFlags holds the historic-parameter flag values exactly as the
// user supplied them. The Set booleans distinguish an explicit zero from an
// absent flag.
type RawHistoricFlags struct {
	Period        string
	Threshold     int
	ThresholdSet  bool
	Percentage    float64
	PercentageSet bool
}

func (r RawHistoricFlags) empty() bool {
	return r.Period == "" && !r.ThresholdSet && !r.PercentageSet
}

// ValidateHistoricParams normalizes raw flag values into well-formed
// historic parameters. When no flag was supplied it returns (nil, nil) and
// the registry applies its own defaults. It is a pure function of its
// inputs.
func ValidateHistoricParams(raw RawHistoricFlags) (*HistoricParameters, error) {
	if raw.empty() {
		return nil, nil
	}

	if raw.ThresholdSet && raw.PercentageSet {
		return nil, ErrConflictingThresholds
	}

	params := &HistoricParameters{}

	if raw.Period != "" {
		seconds, err := ParseValidationPeriod(raw.Period)
		if err != nil {
			return nil, err
		}
		params.Window = ValidationWindow{From: -seconds, To: 0}
	}

	switch {
	case raw.ThresholdSet:
		if raw.Threshold < 1 {
			return nil, fmt.Errorf("queryCountThreshold must be at least 1, got %d", raw.Threshold)
		}
		params.Threshold = CountThreshold(raw.Threshold)
	case raw.PercentageSet:
		// Values above 5% are almost certainly a 0-100 percentage passed
		// where a 0-1 fraction was expected.
		if raw.Percentage < 0 || raw.Percentage > 0.05 {
			return nil, fmt.Errorf("%w, got %v", ErrThresholdOutOfRange, raw.Percentage)
		}
		params.Threshold = PercentageThreshold(raw.Percentage)
	}

	return params, nil
}

var periodComponent = regexp.MustCompile(`^(\d+)\s*(y|mo|w|d|h|m|s)`)

var periodUnitSeconds = map[string]int64{
	"y":  365 * 86400,
	"mo": 30 * 86400,
	"w":  7 * 86400,
	"d":  86400,
	"h":  3600,
	"m":  60,
	"s":  1,
}

// ParseValidationPeriod converts a validation period into total seconds. It
// accepts either a plain integer (seconds) or a duration expression made of
// year/month/week/day/hour/minute/second components, e.g. "2w", "1y 6mo",
// "1h30m". The result is always positive.
func ParseValidationPeriod(raw string) (int64, error) {
	s := strings.TrimSpace(strings.ToLower(raw))
	if s == "" {
		return 0, fmt.Errorf("%w: empty period", ErrInvalidDuration)
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n <= 0 {
			return 0, fmt.Errorf("%w: period must be positive, got %q", ErrInvalidDuration, raw)
		}
		return n, nil
	}

	var total int64
	rest := s
	for rest != "" {
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" {
			break
		}
		m := periodComponent.FindStringSubmatch(rest)
		if m == nil {
			return 0, fmt.Errorf("%w: %q is neither seconds nor a duration expression", ErrInvalidDuration, raw)
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: component %q overflows", ErrInvalidDuration, m[0])
		}
		total += n * periodUnitSeconds[m[2]]
		rest = rest[len(m[0]):]
	}

	if total <= 0 {
		return 0, fmt.Errorf("%w: period must be positive, got %q", ErrInvalidDuration, raw)
	}
	return total, nil
}
