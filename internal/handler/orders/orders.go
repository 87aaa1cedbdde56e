package orders

import (
	"errors"
	"net/http"
	"strconv"

	"storefront/internal/api"
	"storefront/internal/database"
	"storefront/internal/middleware"
	"storefront/internal/model"
	"storefront/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	createOrder        = store.CreateOrder
	getOrderByID       = store.GetOrderByID
	listOrdersByUser   = store.ListOrdersByUser
	listAllOrders      = store.ListAllOrders
	markOrderDelivered = store.MarkOrderDelivered
)

func toResponse(o *model.Order) api.OrderResponse {
	items := make([]api.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, api.OrderItemResponse{
			Product: it.ProductID,
			Name:    it.Name,
			Image:   it.Image,
			Qty:     it.Qty,
			Price:   it.Price,
		})
	}
	return api.OrderResponse{
		ID: o.ID,
		User: api.OrderUserResponse{
			ID:    o.UserID,
			Name:  o.UserName,
			Email: o.UserEmail,
		},
		OrderItems: items,
		ShippingAddress: api.ShippingAddressResponse{
			Address:    o.Address,
			City:       o.City,
			PostalCode: o.PostalCode,
			Country:    o.Country,
		},
		PaymentMethod: o.PaymentMethod,
		TotalPrice:    o.TotalPrice,
		IsPaid:        o.IsPaid,
		PaidAt:        o.PaidAt,
		IsDelivered:   o.IsDelivered,
		DeliveredAt:   o.DeliveredAt,
		CreatedAt:     o.CreatedAt,
	}
}

// @Summary     Create an order
// @Description The purchaser is always the verified token's user, never the body
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       body body api.CreateOrderRequest true "order payload"
// @Success     201 {object} api.OrderResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /orders [post]
func CreateOrderHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateOrderRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if len(req.OrderItems) == 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "no order items"})
		}

		userID, _ := c.Get(middleware.ContextUserKey).(int)

		items := make([]model.OrderItem, 0, len(req.OrderItems))
		for _, it := range req.OrderItems {
			items = append(items, model.OrderItem{
				ProductID: it.Product,
				Name:      it.Name,
				Image:     it.Image,
				Qty:       it.Qty,
				Price:     it.Price,
			})
		}

		order, err := createOrder(c.Request().Context(), db, &model.Order{
			UserID:        userID,
			Items:         items,
			Address:       req.ShippingAddress.Address,
			City:          req.ShippingAddress.City,
			PostalCode:    req.ShippingAddress.PostalCode,
			Country:       req.ShippingAddress.Country,
			PaymentMethod: req.PaymentMethod,
			TotalPrice:    req.TotalPrice,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error creating order"})
		}

		return c.JSON(http.StatusCreated, toResponse(order))
	}
}

// @Summary     List the requester's orders
// @Tags        orders
// @Produce     json
// @Success     200 {array} api.OrderResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /orders/myorders [get]
func ListMyOrdersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, _ := c.Get(middleware.ContextUserKey).(int)
		orders, err := listOrdersByUser(c.Request().Context(), db, userID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error fetching orders"})
		}
		resp := make([]api.OrderResponse, 0, len(orders))
		for i := range orders {
			resp = append(resp, toResponse(&orders[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get an order by ID
// @Description Returns the order with the purchaser's name and email joined in.
//
// Any authenticated user who knows an order id may read it; there is no
// ownership check here.
// @Tags        orders
// @Produce     json
// @Param       id path int true "order ID"
// @Success     200 {object} api.OrderResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /orders/{id} [get]
func GetOrderHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid order ID"})
		}
		order, err := getOrderByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "order not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error fetching order"})
		}
		return c.JSON(http.StatusOK, toResponse(order))
	}
}

// @Summary     List all orders
// @Description Admin only; purchaser id and name joined in
// @Tags        orders
// @Produce     json
// @Success     200 {array} api.OrderResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /orders [get]
func ListAllOrdersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		orders, err := listAllOrders(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error fetching orders"})
		}
		resp := make([]api.OrderResponse, 0, len(orders))
		for i := range orders {
			resp = append(resp, toResponse(&orders[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Mark an order delivered
// @Description Admin only. Safe to call twice: the second call re-stamps the time.
// @Tags        orders
// @Produce     json
// @Param       id path int true "order ID"
// @Success     200 {object} api.OrderResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /orders/{id}/deliver [put]
func DeliverOrderHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid order ID"})
		}
		order, err := markOrderDelivered(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "order not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error updating order"})
		}
		return c.JSON(http.StatusOK, toResponse(order))
	}
}
