package jurisdiction

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/taxcmp/internal/domain"
)

// constructors is the closed set of supported jurisdictions in display
// order. Adding a jurisdiction means adding a module and an entry here.
var constructors = []struct {
	id    string
	build func(domain.JurisdictionProfile) (Calculator, error)
}{
	{"ae", newUAE},
	{"in", newIndia},
	{"pk", newPakistan},
	{"cn", newChina},
	{"vn", newVietnam},
	{"bd", newBangladesh},
	{"kh", newCambodia},
}

// IDs returns the supported jurisdiction ids in registry order
func IDs() []string {
	ids := make([]string, len(constructors))
	for i, c := range constructors {
		ids[i] = c.id
	}
	return ids
}

// Jurisdiction pairs a profile with its rule module
type Jurisdiction struct {
	Profile    domain.JurisdictionProfile
	Calculator Calculator
}

// ID returns the jurisdiction id
func (j Jurisdiction) ID() string {
	return j.Profile.ID
}

// Registry resolves jurisdictions by id. It is immutable once built.
type Registry struct {
	ordered []Jurisdiction
	byID    map[string]int
}

// NewRegistry builds every rule module from its profile. Every supported
// jurisdiction needs a profile and every profile needs a rule module.
func NewRegistry(profiles map[string]domain.JurisdictionProfile) (*Registry, error) {
	r := &Registry{
		ordered: make([]Jurisdiction, 0, len(constructors)),
		byID:    make(map[string]int, len(constructors)),
	}

	for _, c := range constructors {
		profile, ok := profiles[c.id]
		if !ok {
			return nil, fmt.Errorf("no profile for jurisdiction %q", c.id)
		}
		if !profile.CurrencyCode.Known() {
			return nil, fmt.Errorf("jurisdiction %q: %w: %q", c.id, domain.ErrUnknownCurrency, profile.CurrencyCode)
		}
		calc, err := c.build(profile)
		if err != nil {
			return nil, fmt.Errorf("failed to build jurisdiction %q: %w", c.id, err)
		}
		r.byID[c.id] = len(r.ordered)
		r.ordered = append(r.ordered, Jurisdiction{Profile: profile, Calculator: calc})
	}

	if len(profiles) > len(constructors) {
		var unknown []string
		for id := range profiles {
			if _, ok := r.byID[id]; !ok {
				unknown = append(unknown, id)
			}
		}
		sort.Strings(unknown)
		return nil, fmt.Errorf("no rule module for jurisdiction(s) %s", strings.Join(unknown, ", "))
	}

	return r, nil
}

// All returns every jurisdiction in registry order
func (r *Registry) All() []Jurisdiction {
	out := make([]Jurisdiction, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Len returns the number of registered jurisdictions
func (r *Registry) Len() int {
	return len(r.ordered)
}

// Lookup finds a jurisdiction by id
func (r *Registry) Lookup(id string) (Jurisdiction, error) {
	i, ok := r.byID[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return Jurisdiction{}, fmt.Errorf("%w: %q", domain.ErrUnknownJurisdiction, id)
	}
	return r.ordered[i], nil
}
