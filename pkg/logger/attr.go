package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Class records the validation class identifier under the key "class".
func Class(name string) slog.Attr {
	return slog.String("class", name)
}

// Path records the dotted path of the validated node under the key "path".
// The root path is logged as "<root>" so that it stays visible in text output.
func Path(path string) slog.Attr {
	if path == "" {
		path = "<root>"
	}
	return slog.String("path", path)
}

// Property records a mapped property name under the key "property".
func Property(name string) slog.Attr {
	return slog.String("property", name)
}

// ErrorKey records a machine-readable validation error key under the key "error_key".
func ErrorKey(key string) slog.Attr {
	return slog.String("error_key", key)
}

// ErrorCount records the number of accumulated validation errors under the key "error_count".
func ErrorCount(n int) slog.Attr {
	return slog.Int("error_count", n)
}

// Groups records the active validation groups under the key "groups".
// If no groups are given, it returns an empty Attr.
func Groups(groups []string) slog.Attr {
	if len(groups) == 0 {
		return slog.Attr{}
	}
	return slog.Any("groups", groups)
}

// Depth records the recursion depth under the key "depth".
func Depth(depth int) slog.Attr {
	return slog.Int("depth", depth)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
