package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/civicvote/voting-system/internal/api/metrics"
	"github.com/civicvote/voting-system/internal/core/ports"
)

// CandidateHandler serves the admin-only candidate registry routes.
type CandidateHandler struct {
	service ports.CandidateService
}

func NewCandidateHandler(service ports.CandidateService) *CandidateHandler {
	return &CandidateHandler{service: service}
}

// Create handles POST /candidates.
//
// @Summary      Create a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCandidateRequest  true  "Candidate details"
// @Success      200   {object}  candidateResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /candidates [post]
func (h *CandidateHandler) Create(c echo.Context) error {
	actorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createCandidateRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.service.CreateCandidate(c.Request().Context(), actorID, ports.CreateCandidateInput{
		Name:  req.Name,
		Party: req.Party,
		Age:   req.Age,
	})
	if err != nil {
		return err
	}

	metrics.CandidateMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusOK, toCandidateResponse(created))
}

// Update handles PUT /candidates/:id.
//
// @Summary      Partially update a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Candidate id"
// @Param        body  body      updateCandidateRequest  true  "Fields to change"
// @Success      200   {object}  candidateResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /candidates/{id} [put]
func (h *CandidateHandler) Update(c echo.Context) error {
	actorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateCandidateRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.service.UpdateCandidate(c.Request().Context(), actorID, c.Param("id"), toPatch(req))
	if err != nil {
		return err
	}

	metrics.CandidateMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toCandidateResponse(updated))
}

// Delete handles DELETE /candidates/:id.
//
// @Summary      Delete a candidate
// @Description  Candidates that already received votes cannot be deleted.
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Candidate id"
// @Success      200  {object}  candidateResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse  "candidate has recorded votes"
// @Failure      500  {object}  errorResponse
// @Router       /candidates/{id} [delete]
func (h *CandidateHandler) Delete(c echo.Context) error {
	actorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	deleted, err := h.service.DeleteCandidate(c.Request().Context(), actorID, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.CandidateMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, toCandidateResponse(deleted))
}
