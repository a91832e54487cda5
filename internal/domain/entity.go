package domain

import (
	"fmt"
	"strings"
)

// EntityType selects which computation a jurisdiction performs
type EntityType int

const (
	Corporate EntityType = iota
	Partnership
	SoleProprietor
)

// EntityTypes lists every supported entity type in display order
var EntityTypes = []EntityType{Corporate, Partnership, SoleProprietor}

// String returns the canonical flag/JSON spelling
func (e EntityType) String() string {
	switch e {
	case Corporate:
		return "corporate"
	case Partnership:
		return "partnership"
	case SoleProprietor:
		return "sole-proprietor"
	default:
		return fmt.Sprintf("EntityType(%d)", int(e))
	}
}

// Label returns a human readable name
func (e EntityType) Label() string {
	switch e {
	case Corporate:
		return "Corporate"
	case Partnership:
		return "Partnership"
	case SoleProprietor:
		return "Sole Proprietor"
	default:
		return e.String()
	}
}

// Valid reports whether e is one of the supported entity types
func (e EntityType) Valid() bool {
	return e >= Corporate && e <= SoleProprietor
}

// ParseEntityType parses the accepted spellings of an entity type
func ParseEntityType(s string) (EntityType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "corporate", "corp", "company":
		return Corporate, nil
	case "partnership", "aop", "firm":
		return Partnership, nil
	case "sole-proprietor", "sole_proprietor", "soleproprietor", "soleprop", "sole":
		return SoleProprietor, nil
	}
	return Corporate, fmt.Errorf("%w: %q", ErrUnknownEntityType, s)
}

// MarshalText implements encoding.TextMarshaler
func (e EntityType) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEntityType, int(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (e *EntityType) UnmarshalText(text []byte) error {
	parsed, err := ParseEntityType(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Next cycles to the following entity type
func (e EntityType) Next() EntityType {
	return EntityTypes[(int(e)+1)%len(EntityTypes)]
}
