package models

import "github.com/julianstephens/imaan/internal/constants"

// GoodDeed is a free-form good deed logged during the day
type GoodDeed struct {
	ID          string `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	Timestamp   string `json:"timestamp" yaml:"timestamp"`
}

// CharityDonation is a single donation; Amount is expected to be positive
type CharityDonation struct {
	ID          string  `json:"id" yaml:"id"`
	Amount      float64 `json:"amount" yaml:"amount"`
	Description string  `json:"description" yaml:"description"`
	Timestamp   string  `json:"timestamp" yaml:"timestamp"`
}

// SpiritualNote is a titled reflection with optional tags
type SpiritualNote struct {
	ID        string   `json:"id" yaml:"id"`
	Title     string   `json:"title" yaml:"title"`
	Content   string   `json:"content" yaml:"content"`
	Tags      []string `json:"tags" yaml:"tags"`
	Timestamp string   `json:"timestamp" yaml:"timestamp"`
}

// Goal is a user-defined target. Current and Completed are independent:
// reaching the target does not complete the goal.
type Goal struct {
	ID        string                 `json:"id" yaml:"id"`
	Title     string                 `json:"title" yaml:"title"`
	Category  constants.GoalCategory `json:"category" yaml:"category"`
	Target    int                    `json:"target" yaml:"target"`
	Current   int                    `json:"current" yaml:"current"`
	Deadline  string                 `json:"deadline" yaml:"deadline"` // YYYY-MM-DD format
	Completed bool                   `json:"completed" yaml:"completed"`
}

// Timestamped is implemented by entries that carry a capture-time timestamp
type Timestamped interface {
	GetTimestamp() string
}

func (d GoodDeed) GetTimestamp() string        { return d.Timestamp }
func (d CharityDonation) GetTimestamp() string { return d.Timestamp }
func (n SpiritualNote) GetTimestamp() string   { return n.Timestamp }

// Timestamps extracts the timestamps of a collection of entries
func Timestamps[T Timestamped](entries []T) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.GetTimestamp()
	}
	return out
}
