package handler // handler package contains unauthenticated share-link handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/adamovic6666/bus-layout-builder/internal/plan"
	"github.com/adamovic6666/bus-layout-builder/internal/repository"
)

// PublicHandler exposes read-only access to shared plans.  No JWT or role
// middleware applies: holding the share token is the authorization.
type PublicHandler struct {
	Plans *repository.PlanRepo
}

// NewPublicHandler constructs a PublicHandler.
func NewPublicHandler(planRepo *repository.PlanRepo) *PublicHandler {
	if planRepo == nil {
		panic("nil repository passed to NewPublicHandler")
	}
	return &PublicHandler{Plans: planRepo}
}

// GetSharedPlan handles GET /v1/shared/:token and returns the rendered view
// of a shared plan.  The response is a stable snapshot of derived state, fit
// for viewing and for document/image export.
func (h *PublicHandler) GetSharedPlan(c echo.Context) error {
	token := strings.TrimSpace(c.Param("token"))
	if token == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "token required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	stored, err := h.Plans.GetByShareToken(ctx, token)
	if err != nil {
		if err == repository.ErrPlanNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no plan for this token"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load plan failed"})
	}
	p, err := plan.FromDocument(stored.Document)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "corrupt plan document"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"name": stored.Name,
		"view": buildPlanView(p),
	})
}

// GetSharedDocument handles GET /v1/shared/:token/document and returns the
// raw serialized configuration state, letting another session import the
// plan losslessly.
func (h *PublicHandler) GetSharedDocument(c echo.Context) error {
	token := strings.TrimSpace(c.Param("token"))
	if token == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "token required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	stored, err := h.Plans.GetByShareToken(ctx, token)
	if err != nil {
		if err == repository.ErrPlanNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no plan for this token"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load plan failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"name":     stored.Name,
		"document": stored.Document,
	})
}
