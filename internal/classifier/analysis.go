package classifier

import "fmt"

// Category is the business category assigned to one conversation
type Category string

const (
	CategoryInteraction   Category = "interaction"
	CategoryPitch         Category = "pitch"
	CategorySale          Category = "sale"
	CategoryUncategorized Category = "uncategorized"
)

// ObjectionKind is the fixed enumeration of customer objection types
type ObjectionKind string

const (
	ObjectionDIY           ObjectionKind = "diy"
	ObjectionSpouse        ObjectionKind = "spouse"
	ObjectionPrice         ObjectionKind = "price"
	ObjectionCompetitor    ObjectionKind = "competitor"
	ObjectionDelay         ObjectionKind = "delay"
	ObjectionNotInterested ObjectionKind = "not_interested"
	ObjectionNoProblem     ObjectionKind = "no_problem"
	ObjectionNoSoliciting  ObjectionKind = "no_soliciting"
)

// AllObjectionKinds lists every recognized objection kind
var AllObjectionKinds = []ObjectionKind{
	ObjectionDIY,
	ObjectionSpouse,
	ObjectionPrice,
	ObjectionCompetitor,
	ObjectionDelay,
	ObjectionNotInterested,
	ObjectionNoProblem,
	ObjectionNoSoliciting,
}

// IsValidObjectionKind reports whether the given type name is in the fixed
// enumeration. Extraction-service entries with unrecognized types are
// discarded.
func IsValidObjectionKind(kind string) bool {
	for _, known := range AllObjectionKinds {
		if string(known) == kind {
			return true
		}
	}
	return false
}

// Objection is one customer-stated reason for resisting the pitch, with the
// short verbatim quote that evidenced it
type Objection struct {
	Kind ObjectionKind `json:"kind"`
	Text string        `json:"text"`
}

// Validate checks if the Objection has valid values
func (o *Objection) Validate() error {
	if !IsValidObjectionKind(string(o.Kind)) {
		return fmt.Errorf("unknown objection kind %q", o.Kind)
	}
	if o.Text == "" {
		return fmt.Errorf("text cannot be empty")
	}
	return nil
}

// Analysis is the classification result for one conversation segment.
// Computed once after segmentation and never mutated. Completed is false
// when objection extraction degraded, with the reason in ErrorReason.
type Analysis struct {
	Category        Category    `json:"category"`
	Objections      []Objection `json:"objections"`
	HasPriceMention bool        `json:"has_price_mention"`
	PIISpanCount    int         `json:"pii_span_count"`
	Completed       bool        `json:"completed"`
	ErrorReason     string      `json:"error_reason,omitempty"`
}
