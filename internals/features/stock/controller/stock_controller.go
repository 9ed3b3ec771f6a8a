// file: internals/features/stock/controller/stock_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"grahafitness_backend/internals/features/stock/dto"
	"grahafitness_backend/internals/features/stock/model"
	"grahafitness_backend/internals/features/stock/service"
	helper "grahafitness_backend/internals/helpers"
	"grahafitness_backend/internals/helpers/logx"
)

type StockController struct {
	Service   *service.StockService
	Validator *validator.Validate
}

func NewStockController(svc *service.StockService) *StockController {
	return &StockController{Service: svc, Validator: helper.NewValidator()}
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, errors.New("invalid id")
	}
	return id, nil
}

// GET /api/stock?search=
func (ctl *StockController) List(c *fiber.Ctx) error {
	rows, err := ctl.Service.List(c.UserContext(), c.Query("search"))
	if err != nil {
		logx.FromCtx(c).WithError(err).Error("[stock] list failed")
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "", dto.FromItems(rows))
}

// POST /api/stock
func (ctl *StockController) Create(c *fiber.Ctx) error {
	var req dto.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.ValidationError(c, err)
	}
	it := req.ToModel()
	if err := ctl.Service.Create(c.UserContext(), it); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Item created", dto.FromItem(*it))
}

// PUT /api/stock/:id
func (ctl *StockController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.UpdateItemRequest
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
	return helper.JsonUpdated(c, "Item updated", fiber.Map{"id": id})
}

// DELETE /api/stock/:id
func (ctl *StockController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Service.Delete(c.UserContext(), id); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "Item deleted", fiber.Map{"id": id})
}

// POST /api/stock/:id/movement
func (ctl *StockController) Movement(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	var req dto.MovementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := ctl.Service.Move(c.UserContext(), id, model.MovementType(req.Type), req.Quantity, req.Note)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Movement recorded", dto.FromMovementResult(*res))
}

// GET /api/stock/movements
func (ctl *StockController) Movements(c *fiber.Ctx) error {
	rows, err := ctl.Service.LatestMovements(c.UserContext())
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "", dto.FromMovements(rows))
}
