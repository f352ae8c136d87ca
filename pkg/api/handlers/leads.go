package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/crewboard/crewboard-back/pkg/api/errors"
	"github.com/crewboard/crewboard-back/pkg/email"
	"github.com/crewboard/crewboard-back/pkg/export"
	"github.com/crewboard/crewboard-back/pkg/leadimport"
	"github.com/crewboard/crewboard-back/pkg/leads"
	"github.com/crewboard/crewboard-back/pkg/metrics"
	"github.com/crewboard/crewboard-back/pkg/models"
)

// LeadHandler serves the admin lead endpoints: listing, lifecycle edits,
// CSV import and exports.
type LeadHandler struct {
	leads      *leads.Service
	importer   *leadimport.Service
	metrics    *metrics.Metrics
	mailer     *email.Service
	adminEmail string
	validate   *validator.Validate
}

// NewLeadHandler creates the lead handler. metrics and mailer may be nil
// in tests.
func NewLeadHandler(leadSvc *leads.Service, importer *leadimport.Service, m *metrics.Metrics, mailer *email.Service, adminEmail string) *LeadHandler {
	return &LeadHandler{
		leads:      leadSvc,
		importer:   importer,
		metrics:    m,
		mailer:     mailer,
		adminEmail: adminEmail,
		validate:   validator.New(),
	}
}

// List returns a filtered, paginated page of the lead collection.
// GET /api/leads?page=1&limit=50&status=new&q=acme
func (h *LeadHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	status := leads.Status(c.QueryParam("status"))
	if status != "" && !leads.ValidStatus(status) {
		return apierrors.BadRequest(c, "invalid status filter")
	}

	result := h.leads.List(page, limit, status, c.QueryParam("q"))

	tally := make(map[string]int, 4)
	for s, n := range h.leads.StatusCounts() {
		tally[string(s)] = n
	}

	return c.JSON(http.StatusOK, models.LeadListResponse{
		Leads:       result.Data,
		Total:       result.Total,
		Page:        result.Page,
		Limit:       result.Limit,
		StatusTally: tally,
	})
}

// Create adds a single lead by hand.
// POST /api/leads
func (h *LeadHandler) Create(c echo.Context) error {
	var req models.CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequest(c, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return apierrors.BadRequest(c, err.Error())
	}

	created, err := h.leads.Create(c.Request().Context(), leads.Lead{
		Title:      req.Title,
		Phone:      req.Phone,
		Email1:     req.Email1,
		Email2:     req.Email2,
		Website:    req.Website,
		City:       req.City,
		Instagram1: req.Instagram1,
		Facebook1:  req.Facebook1,
		Linkedin1:  req.Linkedin1,
		Notes:      req.Notes,
	})
	if err != nil {
		return apierrors.Internal(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateStatus moves a lead through the pipeline.
// PATCH /api/leads/:id/status
func (h *LeadHandler) UpdateStatus(c echo.Context) error {
	var req models.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequest(c, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return apierrors.BadRequest(c, "status must be one of: new, contacted, priority, rejected")
	}

	err := h.leads.UpdateStatus(c.Request().Context(), c.Param("id"), leads.Status(req.Status))
	if errors.Is(err, leads.ErrNotFound) {
		return apierrors.NotFound(c, "lead not found")
	}
	if err != nil {
		return apierrors.Internal(c, err)
	}
	return c.JSON(http.StatusOK, models.MessageResponse{Message: "status updated"})
}

// UpdateNotes replaces a lead's notes.
// PATCH /api/leads/:id/notes
func (h *LeadHandler) UpdateNotes(c echo.Context) error {
	var req models.UpdateNotesRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequest(c, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return apierrors.BadRequest(c, err.Error())
	}

	err := h.leads.UpdateNotes(c.Request().Context(), c.Param("id"), req.Notes)
	if errors.Is(err, leads.ErrNotFound) {
		return apierrors.NotFound(c, "lead not found")
	}
	if err != nil {
		return apierrors.Internal(c, err)
	}
	return c.JSON(http.StatusOK, models.MessageResponse{Message: "notes updated"})
}

// Delete removes one lead.
// DELETE /api/leads/:id
func (h *LeadHandler) Delete(c echo.Context) error {
	err := h.leads.Delete(c.Request().Context(), c.Param("id"))
	if errors.Is(err, leads.ErrNotFound) {
		return apierrors.NotFound(c, "lead not found")
	}
	if err != nil {
		return apierrors.Internal(c, err)
	}
	return c.JSON(http.StatusOK, models.MessageResponse{Message: "lead deleted"})
}

// BulkDelete removes a set of leads.
// POST /api/leads/bulk-delete
func (h *LeadHandler) BulkDelete(c echo.Context) error {
	var req models.BulkDeleteRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequest(c, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return apierrors.BadRequest(c, "ids must be a non-empty list")
	}

	if err := h.leads.BulkDelete(c.Request().Context(), req.IDs); err != nil {
		return apierrors.Internal(c, err)
	}
	return c.JSON(http.StatusOK, models.MessageResponse{Message: "leads deleted"})
}

// Import ingests an uploaded CSV file.
// POST /api/leads/import (multipart, field "file")
func (h *LeadHandler) Import(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apierrors.BadRequest(c, "Upload failed. Check CSV format.")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apierrors.BadRequest(c, "Upload failed. Check CSV format.")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return apierrors.BadRequest(c, "Upload failed. Check CSV format.")
	}

	summary, err := h.importer.Import(c.Request().Context(), fileHeader.Filename, string(data))
	if errors.Is(err, leadimport.ErrNotCSV) {
		return apierrors.BadRequest(c, "Upload failed. Check CSV format.")
	}
	if err != nil {
		return apierrors.Internal(c, err)
	}

	if h.metrics != nil {
		h.metrics.LeadsImported.Add(float64(summary.Added))
		h.metrics.LeadsImportSkipped.Add(float64(summary.Skipped))
	}

	// The summary email is best effort and must not delay the response.
	if h.mailer != nil && h.adminEmail != "" && summary.Added > 0 {
		filename := fileHeader.Filename
		added, skipped := summary.Added, summary.Skipped
		go func() {
			_ = h.mailer.SendImportSummary(h.adminEmail, filename, added, skipped)
		}()
	}

	rejected := make([]models.RejectedRow, 0, len(summary.Rejected))
	for _, r := range summary.Rejected {
		rejected = append(rejected, models.RejectedRow{
			Row:    r.Row,
			Title:  r.Title,
			Reason: string(r.Reason),
		})
	}

	return c.JSON(http.StatusOK, models.ImportResponse{
		Message:   summary.Message(),
		TotalRows: summary.TotalRows,
		Added:     summary.Added,
		Skipped:   summary.Skipped,
		Rejected:  rejected,
	})
}

// ExportCSV downloads the current filtered view as CSV. The same status
// and q parameters as List apply; no parameters exports everything.
// GET /api/leads/export.csv
func (h *LeadHandler) ExportCSV(c echo.Context) error {
	status := leads.Status(c.QueryParam("status"))
	if status != "" && !leads.ValidStatus(status) {
		return apierrors.BadRequest(c, "invalid status filter")
	}

	body := export.CSV(h.leads.Filtered(status, c.QueryParam("q")))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+export.Filename("csv")+`"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(body))
}

// ExportExcel downloads the current filtered view as an .xlsx workbook.
// GET /api/leads/export.xlsx
func (h *LeadHandler) ExportExcel(c echo.Context) error {
	status := leads.Status(c.QueryParam("status"))
	if status != "" && !leads.ValidStatus(status) {
		return apierrors.BadRequest(c, "invalid status filter")
	}

	body, err := export.Excel(h.leads.Filtered(status, c.QueryParam("q")))
	if err != nil {
		return apierrors.Internal(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+export.Filename("xlsx")+`"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", body)
}
