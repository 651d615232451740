package order

import (
	"log/slog"
	"net/http"
	"strconv"

	"bookshop/app/echoServer/jwtx"
	ordersvc "bookshop/service/order"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc ordersvc.Service
	Log *slog.Logger
}

func identity(c echo.Context) (ordersvc.Identity, error) {
	email, err := jwtx.EmailFromContext(c)
	if err != nil {
		return ordersvc.Identity{}, err
	}
	role, err := jwtx.RoleFromContext(c)
	if err != nil {
		return ordersvc.Identity{}, err
	}
	return ordersvc.Identity{Email: email, Role: role}, nil
}

// Create order
// @Summary      Create an order
// @Description  Validates every line item, locks in unit prices, reserves stock, persists atomically
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body  CreateOrderReq  true  "Order payload"
// @Success      201  {object}  model.Order
// @Failure      400  {object}  map[string]any "book unavailable or not enough stock"
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /OrderController [post]
func (h *Controller) Create(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	var req CreateOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	items := make([]ordersvc.Line, 0, len(req.OrderItems))
	for _, it := range req.OrderItems {
		items = append(items, ordersvc.Line{BookID: it.BookID, Quantity: it.Quantity})
	}

	o, err := h.Svc.Create(c.Request().Context(), ident, req.ShippingAddress, items)
	if err != nil {
		switch ordersvc.Code(err) {
		case ordersvc.ErrCustomerNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "customer not found"})
		case ordersvc.ErrBookNotFound, ordersvc.ErrBookUnavailable, ordersvc.ErrNoStock:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		default:
			h.Log.Error("order create error", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, o)
}

// GET /OrderController
func (h *Controller) List(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	orders, err := h.Svc.List(c.Request().Context(), ident)
	if err != nil {
		if ordersvc.Code(err) == ordersvc.ErrCustomerNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "customer not found"})
		}
		h.Log.Error("order list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, orders)
}

// GET /OrderController/:id
func (h *Controller) Get(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	o, err := h.Svc.Get(c.Request().Context(), id, ident)
	if err != nil {
		switch ordersvc.Code(err) {
		case ordersvc.ErrOrderNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "order not found"})
		case ordersvc.ErrCustomerNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "customer not found"})
		case ordersvc.ErrNotOwner:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "you can only view your own orders"})
		default:
			h.Log.Error("order get error", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, o)
}

// GET /OrderController/customer/:customerId  (staff)
func (h *Controller) ListByCustomer(c echo.Context) error {
	customerID, err := strconv.ParseInt(c.Param("customerId"), 10, 64)
	if err != nil || customerID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid customer id"})
	}
	orders, err := h.Svc.ListByCustomer(c.Request().Context(), customerID)
	if err != nil {
		h.Log.Error("order list by customer error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if len(orders) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "no orders found for this customer"})
	}
	return c.JSON(http.StatusOK, orders)
}

// DELETE /OrderController/:id
func (h *Controller) Delete(c echo.Context) error {
	ident, err := identity(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id, ident); err != nil {
		switch ordersvc.Code(err) {
		case ordersvc.ErrOrderNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "order not found"})
		case ordersvc.ErrCustomerNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "customer not found"})
		case ordersvc.ErrNotOwner:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "you can only delete your own orders"})
		case ordersvc.ErrNotNew:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "you can only delete new orders"})
		default:
			h.Log.Error("order delete error", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "order deleted successfully"})
}

// PUT /OrderController/:id/status  (staff)
func (h *Controller) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req UpdateOrderStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	st, err := h.Svc.UpdateStatus(c.Request().Context(), id, req.StatusID)
	if err != nil {
		switch ordersvc.Code(err) {
		case ordersvc.ErrOrderNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "order not found"})
		case ordersvc.ErrStatusNotFound:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid status id"})
		case ordersvc.ErrTransitionDenied:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		default:
			h.Log.Error("order status error", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":   "order status updated successfully",
		"order_id":  id,
		"newStatus": st.Name,
	})
}
