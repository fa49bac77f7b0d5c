// README: Trip planning and refinement handlers.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/modules/itinerary"
	"tripplanner/internal/types"
)

const (
	planTimeout   = 60 * time.Second
	refineTimeout = 30 * time.Second

	dateLayout = "2006-01-02"
)

type TripHandler struct {
	planner *itinerary.Service
}

func NewTripHandler(planner *itinerary.Service) *TripHandler {
	return &TripHandler{planner: planner}
}

type planReq struct {
	Destination  string   `json:"destination"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Adults       int      `json:"adults"`
	Children     int      `json:"children"`
	Budget       float64  `json:"budget"`
	Interests    []string `json:"interests"`
	LodgingTypes []string `json:"lodging_types"`
	MinRating    float64  `json:"min_rating"`
}

// Plan handles POST /api/trips/plan.
func (h *TripHandler) Plan(c *gin.Context) {
	var req planReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	tripReq, errs := req.toTripRequest()
	if len(errs) > 0 {
		writeValidationErrors(c, errs)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), planTimeout)
	defer cancel()

	plan, err := h.planner.Plan(ctx, tripReq)
	if err != nil {
		writePlannerError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"itinerary": plan.Itinerary,
		"prompt":    plan.Prompt,
		"hotels":    plan.Hotels,
		"breakdown": plan.Breakdown,
		"history":   plan.History,
	})
}

type refineReq struct {
	History itinerary.History `json:"history"`
	Message string            `json:"message"`
}

// Refine handles POST /api/trips/refine. The conversation history travels in
// the request and back in the response; the server keeps no session state.
func (h *TripHandler) Refine(c *gin.Context) {
	var req refineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "Please enter your requested changes before refining.")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), refineTimeout)
	defer cancel()

	reply, history, err := h.planner.Refine(ctx, req.History, req.Message)
	if err != nil {
		writePlannerError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"reply":   reply,
		"history": history,
	})
}

// toTripRequest parses and validates the wire request. Date parse failures
// surface as the same message as missing dates.
func (r planReq) toTripRequest() (itinerary.TripRequest, []string) {
	req := itinerary.TripRequest{
		Destination:  itinerary.Destination{Name: strings.TrimSpace(r.Destination)},
		Adults:       r.Adults,
		Children:     r.Children,
		Budget:       types.GBP(r.Budget),
		Interests:    r.Interests,
		LodgingTypes: r.LodgingTypes,
		MinRating:    r.MinRating,
	}

	var dateErrs []string
	if start, err := time.Parse(dateLayout, r.StartDate); err == nil {
		req.StartDate = start
	} else {
		dateErrs = append(dateErrs, "Please select start and end dates.")
	}
	if end, err := time.Parse(dateLayout, r.EndDate); err == nil {
		req.EndDate = end
	} else if len(dateErrs) == 0 {
		dateErrs = append(dateErrs, "Please select start and end dates.")
	}

	errs := req.Validate()
	if len(dateErrs) > 0 {
		// Validate already reports zero dates; avoid the duplicate message.
		filtered := errs[:0]
		for _, e := range errs {
			if e != "Please select start and end dates." {
				filtered = append(filtered, e)
			}
		}
		errs = append(dateErrs, filtered...)
	}

	return req, errs
}
