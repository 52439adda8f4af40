package constraint

// Error keys produced by the constraints of this package.
const (
	KeyCountInvalidType = "constraint.count.invalidtype"
	KeyCountOutOfRange  = "constraint.count.outofrange"

	KeyNotNull  = "constraint.notnull.null"
	KeyNotBlank = "constraint.notblank.blank"

	KeyLengthInvalidType = "constraint.length.invalidtype"
	KeyLengthOutOfRange  = "constraint.length.outofrange"

	KeyNumericRangeInvalidType = "constraint.numericrange.invalidtype"
	KeyNumericRangeOutOfRange  = "constraint.numericrange.outofrange"

	KeyChoiceInvalidValue = "constraint.choice.invalidvalue"

	KeyPatternInvalidType  = "constraint.pattern.invalidtype"
	KeyPatternInvalidValue = "constraint.pattern.invalidvalue"

	KeyEmailInvalidType   = "constraint.email.invalidtype"
	KeyEmailInvalidFormat = "constraint.email.invalidformat"

	KeyUUIDInvalidType   = "constraint.uuid.invalidtype"
	KeyUUIDInvalidFormat = "constraint.uuid.invalidformat"
	KeyUUIDNil           = "constraint.uuid.nil"

	KeyDateTimeInvalidType  = "constraint.datetime.invalidtype"
	KeyDateTimeInvalidValue = "constraint.datetime.invalidvalue"

	KeyTypeInvalidType = "constraint.type.invalidtype"

	KeyValidInvalidType = "constraint.valid.invalidtype"
	KeyAllInvalidType   = "constraint.all.invalidtype"

	KeyCallbackInvalidType = "constraint.callback.invalidtype"

	// KeyTagPrefix is followed by the failing go-playground tag, e.g. "constraint.tag.email".
	KeyTagPrefix = "constraint.tag."
)
