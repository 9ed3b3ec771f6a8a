package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"grahafitness_backend/internals/features/users/auth/dto"
	"grahafitness_backend/internals/features/users/auth/service"
	helper "grahafitness_backend/internals/helpers"
	"grahafitness_backend/internals/helpers/apperr"
	"grahafitness_backend/internals/helpers/logx"
)

type AuthController struct {
	Service   *service.AuthService
	Validator *validator.Validate
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{Service: svc, Validator: helper.NewValidator()}
}

// POST /api/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := ac.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := ac.Service.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, apperr.ErrInvalidCredentials) {
			logx.FromCtx(c).WithError(err).Error("[LOGIN] gagal")
		}
		return helper.JsonFromError(c, err)
	}

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		AccessToken: res.Token,
		TokenType:   "Bearer",
		ExpiresAt:   res.ExpiresAt,
		User:        dto.FromUser(res.User),
	})
}

// GET /api/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	user, err := ac.Service.Me(c.UserContext(), userID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "", dto.FromUser(*user))
}

// POST /api/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	exp, _ := c.Locals(helper.LocTokenExp).(time.Time)

	if err := ac.Service.Logout(c.UserContext(), raw, exp); err != nil {
		// logout tetap dianggap sukses dari sisi client
		logx.FromCtx(c).WithError(err).Warn("[LOGOUT] gagal blacklist token")
	}
	return helper.JsonOK(c, "Logout successful", fiber.Map{"user_id": localUserID(c)})
}

func localUserID(c *fiber.Ctx) string {
	id, err := helper.GetUserIDFromToken(c)
	if err != nil || id == uuid.Nil {
		return ""
	}
	return id.String()
}
