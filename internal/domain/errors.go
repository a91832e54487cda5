package domain

import "errors"

// Error taxonomy shared by every layer. Callers wrap these with context and
// match them with errors.Is.
var (
	// ErrUnknownCurrency reports a currency code absent from the rate table.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrUnknownJurisdiction reports a jurisdiction id absent from the registry.
	ErrUnknownJurisdiction = errors.New("unknown jurisdiction")

	// ErrMalformedBracketSequence reports brackets that are unsorted, gapped,
	// overlapping or not terminated by an open-ended bracket. It indicates a
	// configuration defect rather than bad user input.
	ErrMalformedBracketSequence = errors.New("malformed bracket sequence")

	// ErrUnknownEntityType reports an entity type outside the supported set.
	ErrUnknownEntityType = errors.New("unknown entity type")
)
