package handler // handler package contains seat assignment handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/adamovic6666/bus-layout-builder/internal/ledger"
	"github.com/adamovic6666/bus-layout-builder/internal/plan"
)

// AssignSeat handles POST /v1/plans/:id/assignments: a click or a drop from
// the roster panel onto a seat.  Moves the person when they already sit
// elsewhere; evicts a different occupant to unassigned.
func (h *EditorHandler) AssignSeat(c echo.Context) error {
	var body struct {
		SeatID   string `json:"seat_id"`
		PersonID string `json:"person_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	seatID := strings.ToUpper(strings.TrimSpace(body.SeatID))
	personID := strings.TrimSpace(body.PersonID)
	if seatID == "" || personID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat_id and person_id required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	stored, p, ok := h.loadPlan(c, ctx)
	if !ok {
		return nil
	}
	if err := p.Assign(seatID, personID); err != nil {
		switch err {
		case plan.ErrUnknownPerson:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "person is not on the roster"})
		case ledger.ErrInvalidTarget:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat cannot be assigned"})
		default:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
	}
	return h.persist(c, ctx, stored, p)
}

// MoveSeat handles POST /v1/plans/:id/assignments/move: a drag from one seat
// to another.  Exactly one ledger operation results: a move to a free seat
// or a swap with its occupant; an invalid target changes nothing.
func (h *EditorHandler) MoveSeat(c echo.Context) error {
	var body struct {
		FromSeatID string `json:"from_seat_id"`
		ToSeatID   string `json:"to_seat_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	from := strings.ToUpper(strings.TrimSpace(body.FromSeatID))
	to := strings.ToUpper(strings.TrimSpace(body.ToSeatID))
	if from == "" || to == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "from_seat_id and to_seat_id required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	stored, p, ok := h.loadPlan(c, ctx)
	if !ok {
		return nil
	}
	personID, occupied := p.Ledger.Occupant(from)
	if !occupied {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "origin seat is empty"})
	}
	if err := p.MoveOrSwap(from, to, personID); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat cannot be assigned"})
	}
	return h.persist(c, ctx, stored, p)
}

// UnassignSeat handles DELETE /v1/plans/:id/assignments/:seat.  Freeing an
// already-free seat succeeds; the operation is idempotent.
func (h *EditorHandler) UnassignSeat(c echo.Context) error {
	seatID := strings.ToUpper(strings.TrimSpace(c.Param("seat")))

	ctx, cancel := reqCtx(c)
	defer cancel()

	stored, p, ok := h.loadPlan(c, ctx)
	if !ok {
		return nil
	}
	p.Unassign(seatID)
	return h.persist(c, ctx, stored, p)
}

// AutoAssign handles POST /v1/plans/:id/assignments/auto: seats every
// unassigned roster person oldest first onto the free seats in numbering
// order, without touching existing assignments.
func (h *EditorHandler) AutoAssign(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	stored, p, ok := h.loadPlan(c, ctx)
	if !ok {
		return nil
	}
	assigned := p.AutoAssign()
	doc := p.Snapshot()
	if err := h.Plans.UpdateDocument(ctx, stored.ID, stored.OwnerID, doc); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save plan failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"plan_id":  stored.ID,
		"assigned": assigned,
		"view":     buildPlanView(p),
	})
}
