package domain

// Domain contains the core record types decoded from the breach API.

// Breach is one disclosed-breach record. Name is the stable identifier the
// upstream service keys breaches by; every other field may be absent from a
// response (notably truncated account lookups, which return names only), in
// which case the pointer/slice is nil.
type Breach struct {
	Name        string   `json:"Name"`
	Title       *string  `json:"Title,omitempty"`
	Domain      *string  `json:"Domain,omitempty"`
	BreachDate  *string  `json:"BreachDate,omitempty"`
	AddedDate   *string  `json:"AddedDate,omitempty"`
	PwnCount    *int64   `json:"PwnCount,omitempty"`
	Description *string  `json:"Description,omitempty"`
	DataClasses []string `json:"DataClasses,omitempty"`
	IsVerified  *bool    `json:"IsVerified,omitempty"`
	IsSensitive *bool    `json:"IsSensitive,omitempty"`
	IsRetired   *bool    `json:"IsRetired,omitempty"`
}

// Paste is one public paste found to contain an account's data.
type Paste struct {
	Source     string  `json:"Source"`
	ID         string  `json:"Id"`
	Title      *string `json:"Title,omitempty"`
	Date       *string `json:"Date,omitempty"`
	EmailCount int64   `json:"EmailCount"`
}

// Key returns the identifier pastes are deduplicated by. Paste IDs are only
// unique per source site, so both parts are needed.
func (p Paste) Key() string {
	return p.Source + ":" + p.ID
}

// DataClass names a category of personal data a breach may expose, e.g.
// "Email addresses". The upstream taxonomy is a bare ordered list of these.
type DataClass = string
