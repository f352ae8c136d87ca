package handlers

import (
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/crewboard/crewboard-back/pkg/api/errors"
	"github.com/crewboard/crewboard-back/pkg/email"
	"github.com/crewboard/crewboard-back/pkg/jobboard"
	"github.com/crewboard/crewboard-back/pkg/models"
	"github.com/crewboard/crewboard-back/pkg/storage"
)

// JobBoardHandler serves public job listings and applications, plus the
// admin posting CRUD.
type JobBoardHandler struct {
	jobs       *jobboard.Service
	uploader   *storage.Uploader
	mailer     *email.Service
	adminEmail string
	validate   *validator.Validate
}

// NewJobBoardHandler creates the job-board handler. uploader and mailer
// may be nil; CV upload and notification are then skipped.
func NewJobBoardHandler(jobs *jobboard.Service, uploader *storage.Uploader, mailer *email.Service, adminEmail string) *JobBoardHandler {
	return &JobBoardHandler{
		jobs:       jobs,
		uploader:   uploader,
		mailer:     mailer,
		adminEmail: adminEmail,
		validate:   validator.New(),
	}
}

// ListOpen returns postings currently accepting applications.
// GET /api/jobs
func (h *JobBoardHandler) ListOpen(c echo.Context) error {
	jobs, err := h.jobs.OpenJobs(c.Request().Context())
	if err != nil {
		return apierrors.Internal(c, err)
	}
	return c.JSON(http.StatusOK, jobs)
}

// ListAll returns every posting for the admin view.
// GET /api/admin/jobs
func (h *JobBoardHandler) ListAll(c echo.Context) error {
	jobs, err := h.jobs.AllJobs(c.Request().Context())
	if err != nil {
		return apierrors.Internal(c, err)
	}
	return c.JSON(http.StatusOK, jobs)
}

// Create publishes a posting.
// POST /api/admin/jobs
func (h *JobBoardHandler) Create(c echo.Context) error {
	var req models.CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequest(c, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return apierrors.BadRequest(c, err.Error())
	}

	created, err := h.jobs.CreateJob(c.Request().Context(), jobboard.Job{
		Title:       req.Title,
		Location:    req.Location,
		Type:        req.Type,
		Pay:         req.Pay,
		Description: req.Description,
		Open:        req.Open,
	})
	if err != nil {
		return apierrors.Internal(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update edits a posting.
// PUT /api/admin/jobs/:id
func (h *JobBoardHandler) Update(c echo.Context) error {
	var req models.CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequest(c, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return apierrors.BadRequest(c, err.Error())
	}

	err := h.jobs.UpdateJob(c.Request().Context(), jobboard.Job{
		ID:          c.Param("id"),
		Title:       req.Title,
		Location:    req.Location,
		Type:        req.Type,
		Pay:         req.Pay,
		Description: req.Description,
		Open:        req.Open,
	})
	if err != nil {
		return apierrors.Internal(c, err)
	}
	return c.JSON(http.StatusOK, models.MessageResponse{Message: "job updated"})
}

// Delete removes a posting.
// DELETE /api/admin/jobs/:id
func (h *JobBoardHandler) Delete(c echo.Context) error {
	if err := h.jobs.DeleteJob(c.Request().Context(), c.Param("id")); err != nil {
		return apierrors.Internal(c, err)
	}
	return c.JSON(http.StatusOK, models.MessageResponse{Message: "job deleted"})
}

// Apply records a public application, storing the CV when one is attached.
// POST /api/jobs/:id/apply (multipart, optional file field "cv")
func (h *JobBoardHandler) Apply(c echo.Context) error {
	var req models.ApplyRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.BadRequest(c, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return apierrors.BadRequest(c, "name and a valid email are required")
	}

	cvURL := ""
	if fileHeader, err := c.FormFile("cv"); err == nil && h.uploader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			return apierrors.BadRequest(c, "could not read CV file")
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return apierrors.BadRequest(c, "could not read CV file")
		}

		cvURL, err = h.uploader.Upload(c.Request().Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
		if err != nil {
			return apierrors.Internal(c, err)
		}
	}

	app, err := h.jobs.Apply(c.Request().Context(), jobboard.Application{
		JobID:   c.Param("id"),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		CVURL:   cvURL,
	})
	if err != nil {
		return apierrors.Internal(c, err)
	}

	if h.mailer != nil && h.adminEmail != "" {
		jobRef := app.JobID
		if open, err := h.jobs.OpenJobs(c.Request().Context()); err == nil {
			for _, j := range open {
				if j.ID == app.JobID {
					jobRef = j.Title
					break
				}
			}
		}
		if err := h.mailer.SendApplicationNotification(h.adminEmail, jobRef, app.Name, app.Email); err != nil {
			// Notification failure must not fail the application.
			c.Logger().Warnf("application notification failed: %v", err)
		}
	}
	return c.JSON(http.StatusCreated, app)
}

// Applications lists received applications for the admin view.
// GET /api/admin/applications?job_id=...
func (h *JobBoardHandler) Applications(c echo.Context) error {
	apps, err := h.jobs.Applications(c.Request().Context(), c.QueryParam("job_id"))
	if err != nil {
		return apierrors.Internal(c, err)
	}
	return c.JSON(http.StatusOK, apps)
}
