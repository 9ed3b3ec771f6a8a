package controller

import (
	"github.com/gofiber/fiber/v2"

	"grahafitness_backend/internals/features/dashboard/service"
	helper "grahafitness_backend/internals/helpers"
	"grahafitness_backend/internals/helpers/logx"
)

type DashboardController struct {
	Service *service.DashboardService
}

func NewDashboardController(svc *service.DashboardService) *DashboardController {
	return &DashboardController{Service: svc}
}

// GET /api/dashboard
func (ctl *DashboardController) Get(c *fiber.Ctx) error {
	d, err := ctl.Service.Get(c.UserContext())
	if err != nil {
		logx.FromCtx(c).WithError(err).Error("[dashboard] gagal memuat")
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "", d)
}
