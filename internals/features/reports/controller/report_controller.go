// file: internals/features/reports/controller/report_controller.go
package controller

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"grahafitness_backend/internals/features/reports/render"
	"grahafitness_backend/internals/features/reports/service"
	helper "grahafitness_backend/internals/helpers"
	"grahafitness_backend/internals/helpers/dbtime"
	"grahafitness_backend/internals/helpers/logx"
)

type ReportController struct {
	Service *service.ReportService
	Clock   dbtime.Clock
}

func NewReportController(svc *service.ReportService, clock dbtime.Clock) *ReportController {
	return &ReportController{Service: svc, Clock: clock}
}

type exportQuery struct {
	format render.Format
	start  string
	end    string
}

func parseExportQuery(c *fiber.Ctx) (exportQuery, error) {
	f, err := render.ParseFormat(c.Query("format"))
	if err != nil {
		return exportQuery{}, err
	}
	q := exportQuery{
		format: f,
		start:  strings.TrimSpace(c.Query("start_date")),
		end:    strings.TrimSpace(c.Query("end_date")),
	}
	if q.start != "" && !dbtime.IsDate(q.start) {
		return exportQuery{}, errors.New("start_date must be YYYY-MM-DD")
	}
	if q.end != "" && !dbtime.IsDate(q.end) {
		return exportQuery{}, errors.New("end_date must be YYYY-MM-DD")
	}
	return q, nil
}

func (ctl *ReportController) send(c *fiber.Ctx, name string, r render.Report, f render.Format) error {
	var buf bytes.Buffer
	if err := render.Render(&buf, r, f); err != nil {
		logx.FromCtx(c).WithError(err).Error("[reports] render gagal")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to render report")
	}
	filename := fmt.Sprintf("%s_%s.%s", name, ctl.Clock.Today(), f)
	c.Set(fiber.HeaderContentType, f.ContentType())
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}

// GET /api/reports/finance/export?format=xlsx|pdf&start_date=&end_date=
func (ctl *ReportController) ExportFinance(c *fiber.Ctx) error {
	q, err := parseExportQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	r, err := ctl.Service.Finance(c.UserContext(), q.start, q.end)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return ctl.send(c, "finance_report", r, q.format)
}

// GET /api/reports/attendance/export?format=xlsx|pdf&start_date=&end_date=
func (ctl *ReportController) ExportAttendance(c *fiber.Ctx) error {
	q, err := parseExportQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	r, err := ctl.Service.AttendanceReport(c.UserContext(), q.start, q.end)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return ctl.send(c, "attendance_report", r, q.format)
}
