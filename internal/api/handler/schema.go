package handler

import (
	"time"

	"github.com/civicvote/voting-system/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Candidates ---

type createCandidateRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Party string `json:"party" validate:"required,max=100"`
	Age   int    `json:"age"   validate:"required,gte=18,lte=120"`
}

type updateCandidateRequest struct {
	Name  *string `json:"name"  validate:"omitempty,min=1,max=100"`
	Party *string `json:"party" validate:"omitempty,min=1,max=100"`
	Age   *int    `json:"age"   validate:"omitempty,gte=18,lte=120"`
}

type voteEntryResponse struct {
	User    string    `json:"user"`
	VotedAt time.Time `json:"voted_at"`
}

type candidateResponse struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Party     string              `json:"party"`
	Age       int                 `json:"age"`
	VoteCount int                 `json:"vote_count"`
	Votes     []voteEntryResponse `json:"votes"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// partyResultResponse is one row of GET /candidates/vote/count.
type partyResultResponse struct {
	Party string `json:"party"`
	Count int    `json:"count"`
}

// rosterEntryResponse is one row of GET /candidates/candidateList.
// It deliberately has no id, count or voter fields.
type rosterEntryResponse struct {
	Name  string `json:"name"`
	Party string `json:"party"`
}

// --- Users ---

type signupRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Age      int    `json:"age"      validate:"required,gte=18,lte=120"`
	Email    string `json:"email"    validate:"required,email"`
	Mobile   string `json:"mobile"   validate:"omitempty,max=20"`
	Address  string `json:"address"  validate:"required,max=200"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"omitempty,oneof=voter admin"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

// --- Mappers ---

func toCandidateResponse(c *domain.Candidate) candidateResponse {
	votes := make([]voteEntryResponse, len(c.Votes))
	for i, v := range c.Votes {
		votes[i] = voteEntryResponse{User: v.UserID, VotedAt: v.VotedAt.UTC()}
	}
	return candidateResponse{
		ID:        c.ID,
		Name:      c.Name,
		Party:     c.Party,
		Age:       c.Age,
		VoteCount: c.VoteCount,
		Votes:     votes,
		CreatedAt: c.CreatedAt.UTC(),
		UpdatedAt: c.UpdatedAt.UTC(),
	}
}

func toPatch(r updateCandidateRequest) domain.CandidatePatch {
	return domain.CandidatePatch{Name: r.Name, Party: r.Party, Age: r.Age}
}
