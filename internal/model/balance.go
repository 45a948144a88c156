package model

// BalanceFeedType says whether a balance is fed by elements or by a whole
// classification.
type BalanceFeedType string

const (
	FeedByElement        BalanceFeedType = "E"
	FeedByClassification BalanceFeedType = "C"
)

// AddSubtract is the direction a feed contributes to its balance.
type AddSubtract string

const (
	FeedAdd      AddSubtract = "+"
	FeedSubtract AddSubtract = "-"
)

// PayrollBalance is an accumulated total definition. The balance head is
// not effective-dated; its feeds are.
type PayrollBalance struct {
	BalanceID       string          `json:"balance_id,omitempty"`
	ReadOnly        Flag            `json:"is_read_only,omitempty"`
	BalanceName     string          `json:"balance_name,omitempty"`
	BalanceFeedType BalanceFeedType `json:"balance_feed_type,omitempty"`
	Description     string          `json:"description,omitempty"`
	Feeds           []BalanceFeed   `json:"feeds,omitempty"`
}

// BalanceFeed is one contribution rule of a balance.
type BalanceFeed struct {
	FeedID             string      `json:"feed_id,omitempty"`
	ReadOnly           Flag        `json:"is_read_only,omitempty"`
	EffectiveStart     Date        `json:"effective_start,omitzero"`
	EffectiveEnd       Date        `json:"effective_end,omitzero"`
	ClassificationID   string      `json:"classification_id,omitempty"`
	ClassificationName string      `json:"classification_name,omitempty"`
	ElementID          string      `json:"element_id,omitempty"`
	ElementName        string      `json:"element_name,omitempty"`
	AddSubtract        AddSubtract `json:"add_subtract,omitempty"`
}
