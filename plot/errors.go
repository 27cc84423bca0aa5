package plot

import "fmt"

// ConfigError reports a malformed plot construction: a missing axis or
// data sequences whose shapes don't fit the variant's geometry. It always
// surfaces at the constructor call, never from inside the refresh loop.
type ConfigError struct {
	Kind   Kind
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("plot: %s: %s", e.Kind, e.Reason)
}

func configErrf(k Kind, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Kind: k, Reason: fmt.Sprintf(format, args...)}
}

// sameLen verifies that every named sequence has the same length.
func sameLen(k Kind, names []string, lens []int) *ConfigError {
	for i := 1; i < len(lens); i++ {
		if lens[i] != lens[0] {
			return configErrf(k, "%s has %d samples but %s has %d",
				names[i], lens[i], names[0], lens[0])
		}
	}
	return nil
}
