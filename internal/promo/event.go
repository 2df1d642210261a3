package promo

// Kind names one of the two recurring promotion processes.
type Kind string

const (
	KindLightning Kind = "lightning"
	KindSuggested Kind = "suggested"
)

// Event is emitted once per successful promotion tick, in tick order.
type Event struct {
	Kind        Kind   `json:"kind"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	NewPrice    int64  `json:"newPrice"`
}
