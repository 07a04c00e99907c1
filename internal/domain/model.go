package domain

type MealType string

const (
	HealthyMeal   MealType = "Healthy Meal"
	TodaysSpecial MealType = "Today's Special"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusPrepping Status = "Prepping"
	StatusPickUp   Status = "Pick-Up"
	StatusFinished Status = "Finished"
)

// Statuses is the declared lane order for board display. The order carries
// no transition semantics: any status is reachable from any status.
var Statuses = []Status{StatusPending, StatusPrepping, StatusPickUp, StatusFinished}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// LineItem is one priced meal selection. Price is resolved from the catalog
// at add time and never recomputed; later menu edits do not touch it.
type LineItem struct {
	MealType   MealType `json:"meal_type"`
	Details    string   `json:"details"`
	LookupKey  string   `json:"-"` // catalog key the price came from; not persisted
	Note       string   `json:"note"`
	ExtraPrice float64  `json:"extra_price"`
	Price      float64  `json:"price"`
}

// Order is a finalized cart. Identity is the order's position in the
// persisted collection; the on-disk array carries no id field.
type Order struct {
	CustomerName string     `json:"name"`
	Phone        string     `json:"phone"`
	Meals        []LineItem `json:"meals"`
	Status       Status     `json:"status"`
}
