package handler // handler defines http handlers

import (
	"context" // context carries deadlines into repository calls
	"errors"  // errors provides sentinel values used in getUserID
	"net/http"
	"strconv" // strconv converts strings to numeric types
	"time"

	"github.com/labstack/echo/v4" // echo defines request context types

	"github.com/adamovic6666/bus-layout-builder/internal/plan"
	"github.com/adamovic6666/bus-layout-builder/internal/repository" // repository holds data access layer
)

// EditorHandler bundles the dependencies editors need to build plans.
type EditorHandler struct {
	Plans *repository.PlanRepo // PlanRepo provides plan persistence
}

// NewEditorHandler constructs a new EditorHandler and panics if the
// repository is missing.
func NewEditorHandler(planRepo *repository.PlanRepo) *EditorHandler {
	if planRepo == nil {
		panic("nil repository passed to NewEditorHandler")
	}
	return &EditorHandler{Plans: planRepo}
}

// getUserID extracts the user_id from echo.Context and converts it to uint64.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// reqCtx bounds repository calls for one handler invocation.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// loadPlan resolves the :id path param, fetches the owner's stored plan and
// reconstructs the in-memory plan from its document.  On failure it writes
// the error response and returns a nil plan.
func (h *EditorHandler) loadPlan(c echo.Context, ctx context.Context) (*repository.StoredPlan, *plan.Plan, bool) {
	ownerID, err := getUserID(c)
	if err != nil {
		_ = c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		return nil, nil, false
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid plan id"})
		return nil, nil, false
	}
	stored, err := h.Plans.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if err == repository.ErrPlanNotFound {
			_ = c.JSON(http.StatusNotFound, echo.Map{"error": "plan not found"})
		} else {
			_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "load plan failed"})
		}
		return nil, nil, false
	}
	p, err := plan.FromDocument(stored.Document)
	if err != nil {
		_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "corrupt plan document"})
		return nil, nil, false
	}
	return stored, p, true
}

// persist serializes the mutated plan back to the store and answers with the
// freshly derived view.  The in-memory state is only a working copy: a
// failed write leaves the stored document untouched and the client simply
// retries the action.
func (h *EditorHandler) persist(c echo.Context, ctx context.Context, stored *repository.StoredPlan, p *plan.Plan) error {
	doc := p.Snapshot()
	if err := h.Plans.UpdateDocument(ctx, stored.ID, stored.OwnerID, doc); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save plan failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"plan_id": stored.ID,
		"view":    buildPlanView(p),
	})
}
