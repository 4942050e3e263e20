package handler // handler package contains roster management handlers

import (
	"encoding/csv"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adamovic6666/bus-layout-builder/internal/roster"
)

// AddPerson handles POST /v1/plans/:id/people.
func (h *EditorHandler) AddPerson(c echo.Context) error {
	var body struct {
		Name      string `json:"name"`
		BirthDate string `json:"birth_date"` // YYYY-MM-DD, optional
		Notes     string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	var birth *time.Time
	if s := strings.TrimSpace(body.BirthDate); s != "" {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "birth_date must be YYYY-MM-DD"})
		}
		birth = &d
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	stored, p, ok := h.loadPlan(c, ctx)
	if !ok {
		return nil
	}
	person, err := p.AddPerson(body.Name, birth, body.Notes)
	if err != nil {
		if err == roster.ErrEmptyName {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	doc := p.Snapshot()
	if err := h.Plans.UpdateDocument(ctx, stored.ID, stored.OwnerID, doc); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save plan failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"person": person,
		"view":   buildPlanView(p),
	})
}

// RemovePerson handles DELETE /v1/plans/:id/people/:person.  Removal
// cascade-unassigns the person's seat so the ledger never dangles.
func (h *EditorHandler) RemovePerson(c echo.Context) error {
	personID := strings.TrimSpace(c.Param("person"))

	ctx, cancel := reqCtx(c)
	defer cancel()

	stored, p, ok := h.loadPlan(c, ctx)
	if !ok {
		return nil
	}
	if !p.RemovePerson(personID) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "person not found"})
	}
	return h.persist(c, ctx, stored, p)
}

// SortRoster handles POST /v1/plans/:id/people/sort and orders the roster by
// birth date, oldest first.
func (h *EditorHandler) SortRoster(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	stored, p, ok := h.loadPlan(c, ctx)
	if !ok {
		return nil
	}
	p.Roster.SortByBirthDate()
	return h.persist(c, ctx, stored, p)
}

// ImportRoster handles POST /v1/plans/:id/people/import with a multipart
// CSV file.  Partial success is fine: rows without a usable name are dropped
// silently and the count of imported people is returned.
func (h *EditorHandler) ImportRoster(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file required"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cannot open file"})
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; the importer checks lengths
	header, err := reader.Read()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file is empty or not a CSV"})
	}
	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Keep what parsed so far; a trailing broken line should not
			// void the valid rows above it.
			break
		}
		rows = append(rows, record)
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	stored, p, ok := h.loadPlan(c, ctx)
	if !ok {
		return nil
	}
	imported := p.Roster.ImportRecords(header, rows)
	if imported == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no usable rows in file"})
	}
	doc := p.Snapshot()
	if err := h.Plans.UpdateDocument(ctx, stored.ID, stored.OwnerID, doc); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save plan failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"imported": imported,
		"view":     buildPlanView(p),
	})
}
