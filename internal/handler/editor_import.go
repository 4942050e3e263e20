package handler // handler package contains the plan import endpoint

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/adamovic6666/bus-layout-builder/internal/plan"
	"github.com/adamovic6666/bus-layout-builder/internal/repository"
)

// ImportPlan handles POST /v1/plans/import: creates a new plan from a
// serialized document, typically fetched from a share link.  The document is
// validated by reconstructing the plan; invalid assignments are dropped and
// invalid geometry is rejected.
func (h *EditorHandler) ImportPlan(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Name     string        `json:"name"`
		Document plan.Document `json:"document"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	p, err := plan.FromDocument(body.Document)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		name = "Imported bus"
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	stored := &repository.StoredPlan{
		OwnerID:  ownerID,
		Name:     name,
		Document: p.Snapshot(), // store the cleaned, validated form
	}
	if err := h.Plans.Create(ctx, stored); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create plan failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":   stored.ID,
		"name": stored.Name,
		"view": buildPlanView(p),
	})
}
