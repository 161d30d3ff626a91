package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MinCandidateAge   = 18
	MaxCandidateAge   = 120
	maxCandidateField = 100
)

// VoteEntry links one voter to the candidate they voted for.
type VoteEntry struct {
	UserID  string    `json:"user"`
	VotedAt time.Time `json:"voted_at"`
}

// Candidate is the aggregate a voter casts a ballot for.
// VoteCount always equals len(Votes).
type Candidate struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Party     string      `json:"party"`
	Age       int         `json:"age"`
	Votes     []VoteEntry `json:"votes"`
	VoteCount int         `json:"vote_count"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// CandidatePatch carries a partial update; nil fields are left untouched.
type CandidatePatch struct {
	Name  *string
	Party *string
	Age   *int
}

// Empty reports whether the patch changes nothing.
func (p CandidatePatch) Empty() bool {
	return p.Name == nil && p.Party == nil && p.Age == nil
}

// Apply copies the set fields of p onto c.
func (p CandidatePatch) Apply(c *Candidate) {
	if p.Name != nil {
		c.Name = strings.TrimSpace(*p.Name)
	}
	if p.Party != nil {
		c.Party = strings.TrimSpace(*p.Party)
	}
	if p.Age != nil {
		c.Age = *p.Age
	}
}

// Validate checks the registry fields of the candidate record.
func (c *Candidate) Validate() error {
	verr := &ValidationError{}
	if name := strings.TrimSpace(c.Name); name == "" {
		verr.Add("name is required")
	} else if utf8.RuneCountInString(name) > maxCandidateField {
		verr.Add("name must be at most 100 characters")
	}
	if party := strings.TrimSpace(c.Party); party == "" {
		verr.Add("party is required")
	} else if utf8.RuneCountInString(party) > maxCandidateField {
		verr.Add("party must be at most 100 characters")
	}
	if c.Age < MinCandidateAge || c.Age > MaxCandidateAge {
		verr.Add("age must be between 18 and 120")
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// RecordVote appends a vote entry and bumps the tally together.
func (c *Candidate) RecordVote(userID string, at time.Time) {
	c.Votes = append(c.Votes, VoteEntry{UserID: userID, VotedAt: at})
	c.VoteCount++
}

// PartyResult is one row of the vote count report.
type PartyResult struct {
	Party string
	Count int
}

// RosterEntry is the public projection of a candidate.
type RosterEntry struct {
	Name  string
	Party string
}
