package salesfinder

import (
	"fmt"

	"github.com/aerissecure/salesfinder/tier"
)

// Kind is the backpack.tf page a location points at.
type Kind int

const (
	// Unknown locations are not augmented.
	Unknown Kind = iota
	Item
	Premium
	Profile
	Unusual
)

func (k Kind) String() string {
	switch k {
	case Unknown:
		return "unknown"
	case Item:
		return "item"
	case Premium:
		return "premium"
	case Profile:
		return "profile"
	case Unusual:
		return "unusual"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Result is the outcome of augmenting one page.
type Result struct {
	Kind     Kind
	HTML     string      // rewritten document
	Location string      // corrected location, equal to the input unless a profile was aligned
	Tiers    []tier.Tier // per row tiers of item and premium pages
	Links    int         // effect links added to unusual pages
}

func (r Result) String() string {
	return fmt.Sprintf("Kind: %s, Location: %s, Tiers: %d, Links: %d, HTML: %d bytes", r.Kind, r.Location, len(r.Tiers), r.Links, len(r.HTML))
}
