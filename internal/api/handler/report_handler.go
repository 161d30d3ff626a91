package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/civicvote/voting-system/internal/core/ports"
)

// ReportHandler serves the public, unauthenticated read routes.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Results handles GET /candidates/vote/count.
//
// @Summary      Vote count per party
// @Tags         reports
// @Produce      json
// @Success      200  {array}   partyResultResponse
// @Failure      500  {object}  errorResponse
// @Router       /candidates/vote/count [get]
func (h *ReportHandler) Results(c echo.Context) error {
	results, err := h.service.ListResults(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]partyResultResponse, len(results))
	for i, r := range results {
		out[i] = partyResultResponse{Party: r.Party, Count: r.Count}
	}
	return c.JSON(http.StatusOK, out)
}

// Roster handles GET /candidates/candidateList.
//
// @Summary      List candidates
// @Tags         reports
// @Produce      json
// @Success      200  {array}   rosterEntryResponse
// @Failure      500  {object}  errorResponse
// @Router       /candidates/candidateList [get]
func (h *ReportHandler) Roster(c echo.Context) error {
	roster, err := h.service.ListCandidates(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]rosterEntryResponse, len(roster))
	for i, r := range roster {
		out[i] = rosterEntryResponse{Name: r.Name, Party: r.Party}
	}
	return c.JSON(http.StatusOK, out)
}
