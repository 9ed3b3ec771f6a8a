// file: internals/features/members/route/member_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"grahafitness_backend/internals/constants"
	memberCtrl "grahafitness_backend/internals/features/members/controller"
	memberRepo "grahafitness_backend/internals/features/members/repository"
	memberSvc "grahafitness_backend/internals/features/members/service"
	"grahafitness_backend/internals/helpers/dbtime"
	authMw "grahafitness_backend/internals/middlewares/auth"
)

// MemberAdminRoutes dipasang di group yang sudah lewat AuthMiddleware.
// Base: /api
func MemberAdminRoutes(r fiber.Router, db *gorm.DB, clock dbtime.Clock) {
	svc := memberSvc.NewMemberService(memberRepo.NewMemberRepository(db), clock)
	ctl := memberCtrl.NewMemberController(svc)

	members := r.Group("/members", authMw.RequireCapability(constants.CapManageMembers))
	members.Get("/", ctl.List)
	members.Post("/", ctl.Create)
	members.Put("/:id", ctl.Update)
	members.Delete("/:id", ctl.Delete)
	members.Post("/:id/checkin", ctl.Checkin)

	r.Get("/attendance", authMw.RequireCapability(constants.CapManageMembers), ctl.Attendance)
}
