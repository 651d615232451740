package author

import (
	"log/slog"
	"net/http"
	"strconv"

	"bookshop/model"
	authorsvc "bookshop/service/author"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc authorsvc.Service
	Log *slog.Logger
}

// GET /Authors
func (h *Controller) List(c echo.Context) error {
	authors, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("author list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, authors)
}

// GET /Authors/:id
func (h *Controller) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	a, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		if authorsvc.Code(err) == authorsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "author not found"})
		}
		h.Log.Error("author get error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, a)
}

// POST /Authors  (staff)
func (h *Controller) Create(c echo.Context) error {
	var req CreateAuthorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	a := &model.Author{FirstName: req.FirstName, LastName: req.LastName, Country: req.Country}
	if err := h.Svc.Create(c.Request().Context(), a); err != nil {
		h.Log.Error("author create error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, a)
}

// PUT /Authors  (staff)
func (h *Controller) Update(c echo.Context) error {
	var req UpdateAuthorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	a := &model.Author{ID: req.ID, FirstName: req.FirstName, LastName: req.LastName, Country: req.Country}
	if err := h.Svc.Update(c.Request().Context(), a); err != nil {
		if authorsvc.Code(err) == authorsvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "author not found"})
		}
		h.Log.Error("author update error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, a)
}

// DELETE /Authors/:id  (staff)
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		switch authorsvc.Code(err) {
		case authorsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "author not found"})
		case authorsvc.ErrHasBooks:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "author still has books"})
		default:
			h.Log.Error("author delete error", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "author deleted"})
}
