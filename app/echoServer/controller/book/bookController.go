package book

import (
	"log/slog"
	"net/http"
	"strconv"

	"bookshop/model"
	booksvc "bookshop/service/book"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc booksvc.Service
	Log *slog.Logger
}

// GET /Books?search=&authorId=
func (h *Controller) List(c echo.Context) error {
	search := c.QueryParam("search")
	var authorID *int64
	if raw := c.QueryParam("authorId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid authorId"})
		}
		authorID = &id
	}
	books, err := h.Svc.List(c.Request().Context(), search, authorID)
	if err != nil {
		h.Log.Error("book list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, books)
}

// GET /Books/:id
func (h *Controller) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	b, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		if booksvc.Code(err) == booksvc.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		}
		h.Log.Error("book get error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, b)
}

// POST /Books  (staff)
func (h *Controller) Create(c echo.Context) error {
	var req CreateBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	b := &model.Book{
		Title:         req.Title,
		AuthorID:      req.AuthorID,
		Isbn:          req.Isbn,
		Price:         req.Price,
		Pages:         req.Pages,
		StockQuantity: req.StockQuantity,
		IsAvailable:   true,
	}
	if err := h.Svc.Create(c.Request().Context(), b); err != nil {
		return h.mapError(c, err, "book create error")
	}
	// re-read for the author display name
	created, err := h.Svc.Get(c.Request().Context(), b.ID)
	if err != nil {
		h.Log.Error("book reload error", "err", err)
		return c.JSON(http.StatusCreated, b)
	}
	return c.JSON(http.StatusCreated, created)
}

// PUT /Books  (staff)
func (h *Controller) Update(c echo.Context) error {
	var req UpdateBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	b := &model.Book{
		ID:            req.ID,
		Title:         req.Title,
		AuthorID:      req.AuthorID,
		Isbn:          req.Isbn,
		Price:         req.Price,
		Pages:         req.Pages,
		StockQuantity: req.StockQuantity,
		IsAvailable:   req.IsAvailable,
	}
	if err := h.Svc.Update(c.Request().Context(), b); err != nil {
		return h.mapError(c, err, "book update error")
	}
	return c.JSON(http.StatusOK, b)
}

// DELETE /Books/:id  (staff)
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		switch booksvc.Code(err) {
		case booksvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
		case booksvc.ErrReferenced:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "book is referenced by orders"})
		default:
			h.Log.Error("book delete error", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Controller) mapError(c echo.Context, err error, logMsg string) error {
	switch booksvc.Code(err) {
	case booksvc.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "book not found"})
	case booksvc.ErrAuthorNotFound:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "author does not exist"})
	case booksvc.ErrIsbnTaken:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "a book with this ISBN already exists"})
	case booksvc.ErrBadPrice:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "price must be positive"})
	default:
		h.Log.Error(logMsg, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}
