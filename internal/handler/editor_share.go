package handler // handler package contains the share/save endpoint

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adamovic6666/bus-layout-builder/internal/layout"
	"github.com/adamovic6666/bus-layout-builder/internal/queue"
	queue_publisher "github.com/adamovic6666/bus-layout-builder/internal/service"
	"github.com/adamovic6666/bus-layout-builder/internal/utils"
)

// SharePlan handles POST /v1/plans/:id/share.  The first share issues a
// public token; later calls reuse it.  The plan.saved event is published in
// the background so a broker outage never fails the user's save.
func (h *EditorHandler) SharePlan(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	stored, p, ok := h.loadPlan(c, ctx)
	if !ok {
		return nil
	}

	token := ""
	if stored.ShareToken != nil {
		token = *stored.ShareToken
	} else {
		t, err := utils.NewShareToken()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
		}
		if err := h.Plans.SetShareToken(ctx, stored.ID, stored.OwnerID, t); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save token failed"})
		}
		token = t
	}

	event := queue.PlanSavedEvent{
		PlanID:     stored.ID,
		OwnerID:    stored.OwnerID,
		Name:       stored.Name,
		ShareToken: token,
		Seats:      len(layout.EnumerateSeats(p.Deck, p.EmptySpaces)),
		People:     p.Roster.Len(),
		Assigned:   p.Ledger.Len(),
		SavedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pubCancel()
		_ = queue_publisher.PublishPlanSaved(pubCtx, event)
	}()

	return c.JSON(http.StatusOK, echo.Map{
		"plan_id":     stored.ID,
		"share_token": token,
	})
}
