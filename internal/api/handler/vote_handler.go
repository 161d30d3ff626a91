package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/civicvote/voting-system/internal/api/metrics"
	"github.com/civicvote/voting-system/internal/core/domain"
	"github.com/civicvote/voting-system/internal/core/ports"
)

// VoteHandler serves the vote casting route.
type VoteHandler struct {
	service ports.VotingService
}

func NewVoteHandler(service ports.VotingService) *VoteHandler {
	return &VoteHandler{service: service}
}

// Cast handles POST /candidates/vote/:id.
//
// @Summary      Cast a vote
// @Description  Each non-admin user may vote exactly once.
// @Tags         votes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Candidate id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse  "already voted"
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse  "admin is not allowed to vote"
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse  "vote already in progress"
// @Failure      500  {object}  errorResponse
// @Router       /candidates/vote/{id} [post]
func (h *VoteHandler) Cast(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := h.service.CastVote(c.Request().Context(), c.Param("id"), userID); err != nil {
		metrics.VoteRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
		metrics.VoteDuration.WithLabelValues("rejected").Observe(time.Since(start).Seconds())
		return err
	}

	metrics.VotesCastTotal.Inc()
	metrics.VoteDuration.WithLabelValues("recorded").Observe(time.Since(start).Seconds())
	return c.JSON(http.StatusOK, messageResponse{Message: "vote recorded successfully"})
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrCandidateNotFound):
		return "candidate_not_found"
	case errors.Is(err, domain.ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, domain.ErrForbidden):
		return "admin_forbidden"
	case errors.Is(err, domain.ErrAlreadyVoted):
		return "already_voted"
	case errors.Is(err, domain.ErrVoteInProgress):
		return "in_progress"
	default:
		return "error"
	}
}
