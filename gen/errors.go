package gen

import "fmt"

// ConfigurationError reports invalid generator configuration: malformed
// ranges, unknown flavor or interaction names, non-positive counts.
// Configuration errors are fatal and surface before any event is produced.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string {
	return e.msg
}

func configErrorf(format string, args ...any) error {
	return &ConfigurationError{msg: fmt.Sprintf(format, args...)}
}

// LifecycleError reports a contract violation in the driver lifecycle,
// such as requesting another event after the target count was reached.
// It signals a caller bug, not a data problem.
type LifecycleError struct {
	msg string
}

func (e *LifecycleError) Error() string {
	return e.msg
}

func lifecycleErrorf(format string, args ...any) error {
	return &LifecycleError{msg: fmt.Sprintf(format, args...)}
}
