// Package validation validates object graphs against declarative mappings.
//
// A mapping binds a class to an ordered list of property mappings (each with
// its own constraints) and to object-level constraints that see the whole
// object. The Engine resolves the mapping of an object through a Registry,
// reads every property through its Accessor, runs the constraints and
// collects failures into a flat, ordered Errors list with dotted paths such
// as "order.items[2].sku".
//
// # Architecture
//
// Core building blocks:
//   - Error / Errors       - immutable failure records (path, key, input, args)
//   - Accessor             - MethodAccessor, FieldAccessor, MapAccessor
//   - Constraint           - validation logic, may recurse through a Validator
//   - PropertyMapping      - built with NewPropertyMapping(...).Mapping()
//   - ObjectMapping        - built with NewObjectMapping(class)...Mapping()
//   - Provider / Registry  - class identifier to mapping lookup, proxy aware
//   - Context              - groups that switch mappings on and off
//   - Engine               - the traversal
//   - Metrics              - optional Prometheus collectors (WithMetrics)
//
// Concrete constraints live in the constraint subpackage.
//
// # Usage
//
//	registry := validation.MustNewRegistry([]validation.Provider{
//	    validation.ProvideMapping(
//	        validation.NewObjectMappingFor[Order]().
//	            Property(
//	                validation.NewPropertyMapping("items", constraint.NotNull(), constraint.Count(1, 50), constraint.Valid()),
//	                validation.NewPropertyMapping("email", constraint.Email()).WithGroups("checkout"),
//	            ).
//	            Mapping(),
//	    ),
//	})
//
//	engine := validation.New(registry, validation.WithLogger(log))
//	errs, err := engine.Validate(order, validation.NewContextBuilder().WithGroups("checkout").Context())
//	if err != nil {
//	    // the mapping does not fit the object model: fix the code
//	}
//	for _, e := range errs {
//	    fmt.Println(e.Path(), e.Key(), e.Args())
//	}
//
// # Error Handling
//
// Two channels never mix. Invalid data yields Errors values, including type
// mismatches ("constraint.count.invalidtype"). Configuration mistakes yield a
// *LogicError matching ErrLogic and one of ErrMissingAccessor,
// ErrMissingMapping, ErrDuplicateMapping, ErrMaxDepthExceeded,
// ErrInvalidObject, ErrInvalidConstraint, ErrIncompatibleValue or
// ErrNoValidator.
//
// # Class identity
//
// The class of an object is its Go type name ("github.com/acme/app.User")
// unless it implements Classifier. Lazy-loading stand-ins implement Proxy and
// are resolved to the class they represent; proxy identifiers can also be
// unwrapped by the registry through WithProxyResolver.
//
// # Observability
//
// The engine logs through log/slog (WithLogger, pkg/logger): a Debug record
// per validated object and a Warn record per configuration error. Metrics
// created with NewMetrics count validated objects per class, errors per key
// and configuration errors per reason.
//
// # Recursion
//
// Constraints receive the engine as a Validator and may call ValidateObject
// for nested values with an extended path. Nesting is limited to
// DefaultMaxDepth levels (WithMaxDepth), which stops self-referencing graphs
// with ErrMaxDepthExceeded instead of recursing forever.
package validation
