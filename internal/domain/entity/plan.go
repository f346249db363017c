package entity

// Plan is a subscription tier with ascending resource ceilings.
type Plan string

const (
	PlanFree  Plan = "FREE"
	PlanBasic Plan = "BASIC"
	PlanPro   Plan = "PRO"
)

// IsValid reports whether p is one of the known plans.
func (p Plan) IsValid() bool {
	switch p {
	case PlanFree, PlanBasic, PlanPro:
		return true
	}

	return false
}

// ResourceKind names a plan-limited resource.
type ResourceKind string

const (
	ResourceCustomer ResourceKind = "customers"
	ResourceShipment ResourceKind = "shipments"
)

// Unlimited is the ceiling value that disables a quota check.
const Unlimited = -1

// PlanLimits holds the ceilings of a single plan.
type PlanLimits struct {
	Name      string `json:"name"`
	Customers int    `json:"customers"`
	Shipments int    `json:"shipments"`
	Price     int    `json:"price"`
}

// Ceiling returns the ceiling for kind. Unknown kinds have a zero ceiling.
func (l PlanLimits) Ceiling(kind ResourceKind) int {
	switch kind {
	case ResourceCustomer:
		return l.Customers
	case ResourceShipment:
		return l.Shipments
	}

	return 0
}

// PlanTable maps every plan to its limits. It is built once at startup and
// only read afterwards.
type PlanTable map[Plan]PlanLimits

// DefaultPlanTable returns the built-in plan ceilings.
func DefaultPlanTable() PlanTable {
	return PlanTable{
		PlanFree:  {Name: "Free", Customers: 50, Shipments: 500, Price: 0},
		PlanBasic: {Name: "Basic", Customers: 200, Shipments: 2000, Price: 25},
		PlanPro:   {Name: "Pro", Customers: Unlimited, Shipments: Unlimited, Price: 100},
	}
}

// CanCreate reports whether a tenant on plan that already owns currentCount
// resources of kind may create one more. Unknown plans are refused.
func (t PlanTable) CanCreate(kind ResourceKind, plan Plan, currentCount int64) bool {
	limits, ok := t[plan]
	if !ok {
		return false
	}

	ceiling := limits.Ceiling(kind)
	if ceiling == Unlimited {
		return true
	}

	return currentCount < int64(ceiling)
}
