// file: internals/features/finance/transactions/controller/transaction_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"grahafitness_backend/internals/features/finance/transactions/dto"
	"grahafitness_backend/internals/features/finance/transactions/model"
	"grahafitness_backend/internals/features/finance/transactions/repository"
	"grahafitness_backend/internals/features/finance/transactions/service"
	helper "grahafitness_backend/internals/helpers"
	"grahafitness_backend/internals/helpers/dbtime"
	"grahafitness_backend/internals/helpers/logx"
)

const (
	defaultPerPage = 50
	maxPerPage     = 200
)

type TransactionController struct {
	Service    *service.TransactionService
	Validator  *validator.Validate
	ItemLinked bool
}

func NewTransactionController(svc *service.TransactionService, itemLinked bool) *TransactionController {
	return &TransactionController{
		Service:    svc,
		Validator:  helper.NewValidator(),
		ItemLinked: itemLinked,
	}
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, errors.New("invalid id")
	}
	return id, nil
}

/*
=========================================================

	LIST
	GET /api/transactions?type_filter=&month=&page=&per_page=
	=========================================================
*/
func (ctl *TransactionController) List(c *fiber.Ctx) error {
	typeFilter := strings.ToLower(strings.TrimSpace(c.Query("type_filter")))
	if typeFilter != "" && !model.TransactionType(typeFilter).Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "type_filter must be income or expense")
	}
	month := strings.TrimSpace(c.Query("month"))
	if month != "" && !dbtime.IsMonth(month) {
		return helper.JsonError(c, fiber.StatusBadRequest, "month must be YYYY-MM")
	}

	p := helper.ResolvePaging(c, defaultPerPage, maxPerPage)
	rows, total, err := ctl.Service.List(c.UserContext(), repository.ListFilter{
		Type:   typeFilter,
		Month:  month,
		Offset: p.Offset,
		Limit:  p.Limit,
	})
	if err != nil {
		logx.FromCtx(c).WithError(err).Error("[transactions] list failed")
		return helper.JsonFromError(c, err)
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "", dto.FromModels(rows), &pg)
}

/*
=========================================================

	SUMMARY
	GET /api/transactions/summary?month=YYYY-MM
	=========================================================
*/
func (ctl *TransactionController) Summary(c *fiber.Ctx) error {
	month := strings.TrimSpace(c.Query("month"))
	if month != "" && !dbtime.IsMonth(month) {
		return helper.JsonError(c, fiber.StatusBadRequest, "month must be YYYY-MM")
	}
	sum, err := ctl.Service.Summary(c.UserContext(), month)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "", sum)
}

/*
=========================================================

	CREATE
	POST /api/transactions
	=========================================================
*/
func (ctl *TransactionController) Create(c *fiber.Ctx) error {
	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator, ctl.ItemLinked); err != nil {
		return helper.ValidationError(c, err)
	}

	t := req.ToModel()
	if err := ctl.Service.Create(c.UserContext(), t); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Transaction created", fiber.Map{"id": t.ID})
}

/*
=========================================================

	UPDATE (partial)
	PUT /api/transactions/:id
	=========================================================
*/
func (ctl *TransactionController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.UpdateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	// "" pada member_id berarti lepas referensi, jangan dianggap uuid invalid
	clearMember := req.MemberID != nil && strings.TrimSpace(*req.MemberID) == ""
	clearItem := req.ItemID != nil && strings.TrimSpace(*req.ItemID) == ""
	if clearMember {
		req.MemberID = nil
	}
	if clearItem {
		req.ItemID = nil
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator, ctl.ItemLinked); err != nil {
		return helper.ValidationError(c, err)
	}

	fields := req.ToFields()
	if clearMember {
		fields["member_id"] = nil
	}
	if clearItem && ctl.ItemLinked {
		fields["item_id"] = nil
	}
	if err := ctl.Service.Update(c.UserContext(), id, fields); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Transaction updated", fiber.Map{"id": id})
}

/*
=========================================================

	DELETE (superadmin)
	DELETE /api/transactions/:id
	=========================================================
*/
func (ctl *TransactionController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Service.Delete(c.UserContext(), id); err != nil {
		return helper.JsonFromError(c, err)
	}
	logx.FromCtx(c).WithField("transaction_id", id).Info("[transactions] deleted")
	return helper.JsonDeleted(c, "Transaction deleted", fiber.Map{"id": id})
}
