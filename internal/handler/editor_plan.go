package handler // handler package contains editor-facing plan handlers

import (
	"net/http" // http defines status code constants
	"strconv"  // strconv parses identifiers from path params
	"strings"  // strings manipulates text and case

	"github.com/labstack/echo/v4" // echo framework provides context and JSON helpers

	"github.com/adamovic6666/bus-layout-builder/internal/layout"
	"github.com/adamovic6666/bus-layout-builder/internal/plan"
	"github.com/adamovic6666/bus-layout-builder/internal/repository"
)

// CreatePlan handles POST /v1/plans and stores a fresh plan with the default
// single-deck geometry.
func (h *EditorHandler) CreatePlan(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		name = "Untitled bus"
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	stored := &repository.StoredPlan{
		OwnerID:  ownerID,
		Name:     name,
		Document: plan.New().Snapshot(),
	}
	if err := h.Plans.Create(ctx, stored); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create plan failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":   stored.ID,
		"name": stored.Name,
	})
}

// ListPlans handles GET /v1/plans and returns the caller's plans with a few
// derived counts for list screens.
func (h *EditorHandler) ListPlans(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	plans, err := h.Plans.ListByOwner(ctx, ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list plans failed"})
	}
	type item struct {
		ID         uint64  `json:"id"`
		Name       string  `json:"name"`
		Seats      int     `json:"seats"`
		People     int     `json:"people"`
		Assigned   int     `json:"assigned"`
		ShareToken *string `json:"share_token,omitempty"`
	}
	out := make([]item, 0, len(plans))
	for _, sp := range plans {
		p, err := plan.FromDocument(sp.Document)
		if err != nil {
			continue // skip corrupt rows rather than failing the whole list
		}
		out = append(out, item{
			ID:         sp.ID,
			Name:       sp.Name,
			Seats:      len(layout.EnumerateSeats(p.Deck, p.EmptySpaces)),
			People:     p.Roster.Len(),
			Assigned:   p.Ledger.Len(),
			ShareToken: sp.ShareToken,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"plans": out})
}

// GetPlan handles GET /v1/plans/:id and returns the stored document together
// with the derived view.
func (h *EditorHandler) GetPlan(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	stored, p, ok := h.loadPlan(c, ctx)
	if !ok {
		return nil
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":          stored.ID,
		"name":        stored.Name,
		"share_token": stored.ShareToken,
		"document":    stored.Document,
		"view":        buildPlanView(p),
	})
}

// RenamePlan handles PATCH /v1/plans/:id.
func (h *EditorHandler) RenamePlan(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid plan id"})
	}
	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil || strings.TrimSpace(body.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Plans.Rename(ctx, id, ownerID, strings.TrimSpace(body.Name)); err != nil {
		if err == repository.ErrPlanNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "plan not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "rename failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// DeletePlan handles DELETE /v1/plans/:id.
func (h *EditorHandler) DeletePlan(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid plan id"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Plans.DeleteByIDAndOwner(ctx, id, ownerID); err != nil {
		if err == repository.ErrPlanNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "plan not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateDeck handles PUT /v1/plans/:id/deck and replaces the deck geometry.
// Per-seat state pointing at seats the new geometry no longer has is pruned
// by the plan; numbering recomputes from scratch.
func (h *EditorHandler) UpdateDeck(c echo.Context) error {
	var body struct {
		Rows              int   `json:"rows"`
		LastRowSeatCount  int   `json:"last_row_seat_count"`
		HasUpperDeck      bool  `json:"has_upper_deck"`
		UpperRows         int   `json:"upper_rows"`
		EntranceRows      []int `json:"entrance_rows"`
		TableRows         []int `json:"table_rows"`
		UpperEntranceRows []int `json:"upper_entrance_rows"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	stored, p, ok := h.loadPlan(c, ctx)
	if !ok {
		return nil
	}

	cfg := layout.DeckConfig{
		Rows:              body.Rows,
		LastRowSeatCount:  body.LastRowSeatCount,
		HasUpperDeck:      body.HasUpperDeck,
		UpperRows:         body.UpperRows,
		EntranceRows:      intSetOf(body.EntranceRows),
		TableRows:         intSetOf(body.TableRows),
		UpperEntranceRows: intSetOf(body.UpperEntranceRows),
	}
	if err := p.SetDeckConfig(cfg); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return h.persist(c, ctx, stored, p)
}

func intSetOf(list []int) map[int]bool {
	m := make(map[int]bool, len(list))
	for _, v := range list {
		m[v] = true
	}
	return m
}

// SetEmptySpace handles PUT /v1/plans/:id/empty-spaces/:seat and marks or
// unmarks a slot as empty space depending on the `empty` body flag.
func (h *EditorHandler) SetEmptySpace(c echo.Context) error {
	seatID := strings.ToUpper(strings.TrimSpace(c.Param("seat")))
	var body struct {
		Empty bool `json:"empty"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	stored, p, ok := h.loadPlan(c, ctx)
	if !ok {
		return nil
	}
	if body.Empty {
		if err := p.MarkEmpty(seatID); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown seat"})
		}
	} else {
		p.UnmarkEmpty(seatID)
	}
	return h.persist(c, ctx, stored, p)
}

// SetSeatLabel handles PUT /v1/plans/:id/seats/:seat/label and records a
// manual seat-number override; an empty label clears the override so the
// computed sequential number shows again.
func (h *EditorHandler) SetSeatLabel(c echo.Context) error {
	seatID := strings.ToUpper(strings.TrimSpace(c.Param("seat")))
	var body struct {
		Label string `json:"label"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	stored, p, ok := h.loadPlan(c, ctx)
	if !ok {
		return nil
	}
	if err := p.SetOverride(seatID, strings.TrimSpace(body.Label)); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown seat"})
	}
	return h.persist(c, ctx, stored, p)
}

// SetSpecialSeat handles PUT /v1/plans/:id/seats/:seat/special and toggles
// the tour-guide or driver reservation on a seat.  Kind is "guide", "driver"
// or "none".
func (h *EditorHandler) SetSpecialSeat(c echo.Context) error {
	seatID := strings.ToUpper(strings.TrimSpace(c.Param("seat")))
	var body struct {
		Kind string `json:"kind"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	stored, p, ok := h.loadPlan(c, ctx)
	if !ok {
		return nil
	}
	var opErr error
	switch strings.ToLower(strings.TrimSpace(body.Kind)) {
	case "guide":
		opErr = p.SetGuideSeat(seatID, true)
	case "driver":
		opErr = p.SetDriverSeat(seatID, true)
	case "none", "":
		if err := p.SetGuideSeat(seatID, false); err != nil {
			opErr = err
		} else {
			opErr = p.SetDriverSeat(seatID, false)
		}
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "kind must be guide, driver or none"})
	}
	if opErr != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown seat"})
	}
	return h.persist(c, ctx, stored, p)
}
