package model

// Category is the coarse intent of a query.
type Category string

const (
	CategoryTrending       Category = "trending"
	CategorySearch         Category = "search"
	CategoryDetail         Category = "detail"
	CategoryRecommendation Category = "recommendation"
	CategoryPerson         Category = "person"
	CategoryAmbiguous      Category = "ambiguous"
)

// Capability names a downstream handler.
type Capability string

const (
	CapabilityGeneral        Capability = "general"
	CapabilityResearch       Capability = "research"
	CapabilityDetails        Capability = "details"
	CapabilityRecommendation Capability = "recommendation"
	CapabilityPeople         Capability = "people"
)

// Intent is the routing decision for a query.
type Intent struct {
	Category     Category     `json:"category"`
	Capabilities []Capability `json:"capabilities"`
}

// IsDirect reports whether the general handler can answer without specialists.
func (i Intent) IsDirect() bool {
	return i.Category == CategoryTrending || i.Category == CategorySearch
}

// Attempt marks whether a routed task is the first try or the single retry.
type Attempt string

const (
	AttemptInitial Attempt = "initial"
	AttemptRetry   Attempt = "retry"
)

// RoutedTask is one unit of work handed to a capability handler.
type RoutedTask struct {
	Capability   Capability
	Instructions string
	Attempt      Attempt
}
