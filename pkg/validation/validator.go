package validation

import (
	"log/slog"
	"reflect"
	"time"

	"github.com/dmitrymomot/validation/pkg/logger"
)

// DefaultMaxDepth bounds nested validation when no explicit limit is set.
const DefaultMaxDepth = 32

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics records validation runs in m.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithMaxDepth limits how deep constraints may recurse into nested objects.
// Values below 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(e *Engine) {
		if depth > 0 {
			e.maxDepth = depth
		}
	}
}

// Engine walks objects according to their registered mappings.
// It keeps no per-call state and is safe for concurrent use.
type Engine struct {
	registry *Registry
	maxDepth int
	logger   *slog.Logger
	metrics  *Metrics
}

var _ Validator = (*Engine)(nil)

// New creates an Engine over registry. It panics on a nil registry.
func New(registry *Registry, opts ...Option) *Engine {
	if registry == nil {
		panic("validation: nil registry")
	}

	e := &Engine{
		registry: registry,
		maxDepth: DefaultMaxDepth,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate validates object as the root of a run.
func (e *Engine) Validate(object any, ctx *Context) (Errors, error) {
	return e.ValidateObject(object, ctx, "")
}

// Check folds both channels into one error: the configuration error if any,
// otherwise the validation Errors, or nil for a valid object.
func (e *Engine) Check(object any, ctx *Context) error {
	errs, err := e.Validate(object, ctx)
	if err != nil {
		return err
	}
	return errs.Err()
}

// ValidateObject validates object located at path within the root object.
//
// Property constraints run first, in declaration order, each against the value
// read through the property accessor at path.<property>. Object-level
// constraints then run once against the whole object at path. The returned
// Errors keep that order and are nil for a valid object.
//
// The error return is reserved for configuration mistakes (*LogicError):
// missing mappings, missing accessors, excessive nesting. They are logged and
// counted once, by the root call. A call is the root when ctx has depth 0, so
// constraints recursing through the engine must hand on the ctx they received.
func (e *Engine) ValidateObject(object any, ctx *Context, path string) (Errors, error) {
	errs, err := e.validateObject(object, ctx, path)
	if ctx.Depth() > 0 {
		return errs, err
	}

	if err != nil {
		e.logger.Warn("validation misconfigured",
			logger.Path(path),
			logger.Error(err),
		)
		e.metrics.observeLogicError(err)
		return nil, err
	}

	e.metrics.observeErrors(errs)
	return errs, nil
}

func (e *Engine) validateObject(object any, ctx *Context, path string) (Errors, error) {
	if isNilObject(object) {
		return nil, NewLogicError(ErrInvalidObject, "cannot validate a nil object at path %q", path)
	}
	if ctx.Depth() > e.maxDepth {
		return nil, NewLogicError(ErrMaxDepthExceeded,
			"validation at path %q is nested deeper than %d levels", path, e.maxDepth)
	}

	mapping, err := e.registry.ResolveObject(object)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	child := ctx.nested()

	var errs Errors
	for _, pm := range mapping.properties {
		if !ctx.Activates(pm.groups) {
			continue
		}

		value, err := pm.accessor.Value(object)
		if err != nil {
			return nil, err
		}

		subPath := JoinPath(path, pm.name)
		for _, c := range pm.constraints {
			cerrs, err := c.Validate(subPath, value, child, e)
			if err != nil {
				return nil, err
			}
			errs = append(errs, cerrs...)
		}
	}

	if ctx.Activates(mapping.groups) {
		for _, c := range mapping.constraints {
			cerrs, err := c.Validate(path, object, child, e)
			if err != nil {
				return nil, err
			}
			errs = append(errs, cerrs...)
		}
	}

	elapsed := time.Since(start)
	e.metrics.observeObject(mapping.class, elapsed)
	e.logger.Debug("object validated",
		logger.Class(mapping.class),
		logger.Path(path),
		logger.Depth(ctx.Depth()),
		logger.Groups(ctx.Groups()),
		logger.ErrorCount(len(errs)),
		logger.Duration(elapsed),
	)

	return errs, nil
}

func isNilObject(object any) bool {
	if object == nil {
		return true
	}
	rv := reflect.ValueOf(object)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
