package matcher

import (
	"sort"
)

// Tables holds the externally owned remapping and override data the
// pipeline consults. All keys are lowercase normalized forms. A Tables
// value is read-only for the duration of a search; callers replace the
// whole value (or the Engine) to update configuration, never mutate it
// in place.
type Tables struct {
	// NameRemap maps a given-name variant to its equivalent variants.
	// Symmetry is a data convention; lookups also walk the reverse
	// direction so one-sided entries still resolve.
	NameRemap map[string][]string

	// SurnameRemap is the same shape for family names.
	SurnameRemap map[string][]string

	// FullNameCanonical maps an exact variant full name to its
	// canonical full name.
	FullNameCanonical map[string]string

	// PartialToFull maps a literal partial string to a canonical full
	// name.
	PartialToFull map[string]string

	// SingleNamePriority maps a single name token to the preferred
	// canonical full name when several candidates share the token.
	SingleNamePriority map[string]string
}

// DefaultTables returns a built-in table set covering the common
// variant families. Production deployments load these from the
// directory database instead (see the store package).
func DefaultTables() Tables {
	return Tables{
		NameRemap: map[string][]string{
			"aisha":    {"ayesha", "aysha"},
			"ayesha":   {"aisha", "aysha"},
			"aysha":    {"aisha", "ayesha"},
			"bill":     {"william", "will"},
			"william":  {"bill", "will", "liam"},
			"bob":      {"robert", "rob"},
			"robert":   {"bob", "rob", "bert"},
			"kate":     {"katherine", "catherine", "katie"},
			"mike":     {"michael", "mikael"},
			"michael":  {"mike", "mikael"},
			"miguel":   {"mihel"},
			"mihel":    {"miguel"},
			"mohammed": {"muhammad", "mohammad", "mohamed"},
			"muhammad": {"mohammed", "mohammad", "mohamed"},
			"yusuf":    {"yousef", "joseph"},
			"jon":      {"john", "jonathan"},
			"john":     {"jon", "jonathan"},
		},
		SurnameRemap: map[string][]string{
			"smith":   {"smyth", "smythe"},
			"johnson": {"jonson", "johnsson"},
			"khan":    {"kahn"},
			"cruz":    {"cruse"},
			"hussain": {"hussein", "husain"},
			"garcia":  {"garzia"},
		},
		FullNameCanonical: map[string]string{
			"mohamed al fayed": "Mohammed Al-Fayed",
		},
		PartialToFull: map[string]string{
			"ali al": "Ali Al-Mansour",
		},
		SingleNamePriority: map[string]string{
			"ali": "Ali Al-Mansour",
		},
	}
}

// expandGiven returns the token itself plus every given-name variant
// reachable in either direction through the remap table, token first,
// remaining variants in deterministic order.
func (t Tables) expandGiven(token string) []string {
	return expandVariants(t.NameRemap, token)
}

// expandSurname is expandGiven for the surname table.
func (t Tables) expandSurname(token string) []string {
	return expandVariants(t.SurnameRemap, token)
}

func expandVariants(remap map[string][]string, token string) []string {
	seen := map[string]bool{token: true}
	var extra []string

	add := func(v string) {
		if v == "" || seen[v] {
			return
		}
		seen[v] = true
		extra = append(extra, v)
	}

	for _, v := range remap[token] {
		add(v)
	}

	// reverse direction: keys that list the token as one of their variants
	for key, variants := range remap {
		for _, v := range variants {
			if v == token {
				add(key)
				break
			}
		}
	}

	sort.Strings(extra)
	return append([]string{token}, extra...)
}
