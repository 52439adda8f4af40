// Package constraint provides the constraints used in validation mappings.
//
// Every constraint implements validation.Constraint and reports invalid data
// as validation.Errors with keys of the form "constraint.<name>.<reason>"
// (see keys.go). Type mismatches are data errors too: applying Count to a
// string yields "constraint.count.invalidtype" with the runtime type in the
// "type" argument. Only misconfigured constraints, such as a Count whose min
// exceeds its max, return an error.
//
// nil values (including nil pointers, slices and maps) are skipped by all
// constraints except NotNull and NotBlank, which own presence checks.
//
// Families:
//   - presence:    NotNull, NotBlank
//   - size:        Count, MinCount, MaxCount, Length, MinLength, MaxLength
//   - numbers:     NumericRange, Min, Max
//   - values:      Choice, Choices, Pattern, MatchRegexp, Type
//   - formats:     Email, UUID, NotNilUUID, DateTime
//   - delegation:  Tag (go-playground/validator tags)
//   - nesting:     Valid, All
//   - custom:      Callback, ObjectCallback
//
// Each constraint emits at most one error per evaluated value; Valid and All
// emit the errors of each element they visit.
package constraint
