// file: internals/features/members/controller/member_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "grahafitness_backend/internals/features/members/dto"
	"grahafitness_backend/internals/features/members/service"
	helper "grahafitness_backend/internals/helpers"
	"grahafitness_backend/internals/helpers/dbtime"
	"grahafitness_backend/internals/helpers/logx"
)

/* =========================
   Controller
   ========================= */

type MemberController struct {
	Service   *service.MemberService
	Validator *validator.Validate
}

func NewMemberController(svc *service.MemberService) *MemberController {
	return &MemberController{
		Service:   svc,
		Validator: helper.NewValidator(),
	}
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	param := strings.TrimSpace(c.Params("id"))
	if param == "" {
		return uuid.Nil, errors.New("missing id")
	}
	id, err := uuid.Parse(param)
	if err != nil {
		return uuid.Nil, errors.New("invalid id")
	}
	return id, nil
}

/*
=========================================================

	LIST
	GET /api/members?search=
	=========================================================
*/
func (ctl *MemberController) List(c *fiber.Ctx) error {
	rows, err := ctl.Service.List(c.UserContext(), c.Query("search"))
	if err != nil {
		logx.FromCtx(c).WithError(err).Error("[members] list failed")
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "", dto.FromModels(rows))
}

/*
=========================================================

	CREATE
	POST /api/members
	=========================================================
*/
func (ctl *MemberController) Create(c *fiber.Ctx) error {
	var req dto.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.Service.Create(c.UserContext(), m); err != nil {
		logx.FromCtx(c).WithError(err).Error("[members] create failed")
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Member created", dto.FromModel(*m))
}

/*
=========================================================

	UPDATE (partial)
	PUT /api/members/:id
	=========================================================
*/
func (ctl *MemberController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctl.Service.Update(c.UserContext(), id, req.ToFields()); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Member updated", fiber.Map{"id": id})
}

/*
=========================================================

	DELETE
	DELETE /api/members/:id
	=========================================================
*/
func (ctl *MemberController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Service.Delete(c.UserContext(), id); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "Member deleted", fiber.Map{"id": id})
}

/*
=========================================================

	CHECK-IN
	POST /api/members/:id/checkin
	=========================================================
*/
func (ctl *MemberController) Checkin(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := ctl.Service.Checkin(c.UserContext(), id)
	if err != nil {
		logx.FromCtx(c).WithError(err).WithField("member_id", id).Info("[members] check-in rejected")
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Checked in", dto.FromCheckin(*res))
}

/*
=========================================================

	ATTENDANCE
	GET /api/attendance?target_date=YYYY-MM-DD
	=========================================================
*/
func (ctl *MemberController) Attendance(c *fiber.Ctx) error {
	date := strings.TrimSpace(c.Query("target_date"))
	if date != "" && !dbtime.IsDate(date) {
		return helper.JsonError(c, fiber.StatusBadRequest, "target_date must be YYYY-MM-DD")
	}

	rows, err := ctl.Service.Attendance(c.UserContext(), date)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "", dto.FromAttendance(rows))
}
