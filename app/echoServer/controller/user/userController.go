package user

import (
	"log/slog"
	"net/http"

	"bookshop/app/echoServer/jwtx"
	"bookshop/model"
	authsvc "bookshop/service/auth"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc authsvc.Service
	Log *slog.Logger
}

// Register a new customer
// @Summary      Register customer
// @Description  Register a new customer with email uniqueness and validation
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body  model.RegisterReq  true  "Register payload"
// @Success      201  {object}  model.Customer
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any "email already registered"
// @Failure      500  {object}  map[string]any
// @Router       /UserController/register [post]
func (ct *Controller) Register(c echo.Context) error {
	var req model.RegisterReq
	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "validation error")
	}

	u, err := ct.Svc.Register(c.Request().Context(), req)
	if err != nil {
		switch authsvc.Code(err) {
		case authsvc.ErrEmailTaken:
			return echo.NewHTTPError(http.StatusConflict, "email already registered")
		case authsvc.ErrBadInput:
			return echo.NewHTTPError(http.StatusBadRequest, "bad input")
		default:
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			ct.Log.Error("register failed", "err", err, "req_id", rid, "path", c.Path())
			return echo.NewHTTPError(http.StatusInternalServerError, "register failed")
		}
	}
	return c.JSON(http.StatusCreated, u)
}

// Login
// @Summary      Login
// @Description  Login with email + password, returns a bearer token and its expiry
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body  model.LoginReq  true  "Login payload"
// @Success      200  {object}  authsvc.Token
// @Failure      400  {object}  map[string]any "invalid password"
// @Failure      404  {object}  map[string]any "login not found"
// @Failure      500  {object}  map[string]any
// @Router       /UserController/login [post]
func (ct *Controller) Login(c echo.Context) error {
	var req model.LoginReq
	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return echo.NewHTTPError(http.StatusBadRequest, "validation error")
	}

	tok, err := ct.Svc.Login(c.Request().Context(), req)
	if err != nil {
		switch authsvc.Code(err) {
		case authsvc.ErrLoginNotFound:
			return echo.NewHTTPError(http.StatusNotFound, "login not found")
		case authsvc.ErrInvalidCreds:
			return echo.NewHTTPError(http.StatusBadRequest, "invalid password")
		default:
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			ct.Log.Error("login failed", "err", err, "req_id", rid, "path", c.Path())
			return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
		}
	}
	return c.JSON(http.StatusOK, tok)
}

// Get current profile
// @Summary      Current customer profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.Customer
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /UserController/get [get]
func (ct *Controller) Get(c echo.Context) error {
	email, err := jwtx.EmailFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	u, err := ct.Svc.Profile(c.Request().Context(), email)
	if err != nil {
		if authsvc.Code(err) == authsvc.ErrLoginNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "customer not found")
		}
		ct.Log.Error("profile failed", "err", err, "path", c.Path())
		return echo.NewHTTPError(http.StatusInternalServerError, "profile failed")
	}
	return c.JSON(http.StatusOK, u)
}
