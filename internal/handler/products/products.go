package products

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/api"
	"storefront/internal/cache"
	"storefront/internal/database"
	"storefront/internal/middleware"
	"storefront/internal/model"
	"storefront/internal/store"
	"storefront/internal/worker"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// catalogCacheKey holds the serialized full-catalog response in redis.
const catalogCacheKey = "catalog:products"

// defaultImageURL backs products created without an image reference.
const defaultImageURL = "https://placehold.co/600x400/000000/FFFFFF/png?text=Placeholder"

var (
	listProducts   = store.ListProducts
	getProductByID = store.GetProductByID
	createProduct  = store.CreateProduct
	updateProduct  = store.UpdateProduct
	deleteProduct  = store.DeleteProduct
)

func toResponse(p *model.Product) api.ProductResponse {
	return api.ProductResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.Category,
		Price:        p.Price,
		CountInStock: p.CountInStock,
		ImageURL:     p.ImageURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// invalidateCatalog drops the cached listing off the request path.
func invalidateCatalog(wp worker.Pool, rdb cache.Cache) {
	wp.Submit(func() {
		rdb.Del(context.Background(), catalogCacheKey)
	})
}

// @Summary     List all products
// @Description Returns the whole catalog, served read-through from redis
// @Tags        products
// @Produce     json
// @Success     200 {array} api.ProductResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /products [get]
func ListProductsHandler(db database.DB, rdb cache.Cache, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		if cached, err := rdb.Get(c.Request().Context(), catalogCacheKey).Bytes(); err == nil {
			return c.JSONBlob(http.StatusOK, cached)
		}

		products, err := listProducts(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error fetching products"})
		}
		resp := make([]api.ProductResponse, 0, len(products))
		for i := range products {
			resp = append(resp, toResponse(&products[i]))
		}

		if body, err := json.Marshal(resp); err == nil {
			// Best effort: a failed Set only costs the next request a query.
			rdb.Set(c.Request().Context(), catalogCacheKey, body, ttl)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a product by ID
// @Tags        products
// @Produce     json
// @Param       id path int true "product ID"
// @Success     200 {object} api.ProductResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /products/{id} [get]
func GetProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid product ID"})
		}
		product, err := getProductByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error fetching product"})
		}
		return c.JSON(http.StatusOK, toResponse(product))
	}
}

// @Summary     Create a product
// @Description Admin only; the owner is taken from the verified token
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       body body api.CreateProductRequest true "product payload"
// @Success     201 {object} api.ProductResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /products [post]
func CreateProductHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		userID, _ := c.Get(middleware.ContextUserKey).(int)
		imageURL := req.ImageURL
		if imageURL == "" {
			imageURL = defaultImageURL
		}

		product, err := createProduct(c.Request().Context(), db, &model.Product{
			UserID:       userID,
			Name:         req.Name,
			Description:  req.Description,
			Category:     req.Category,
			Price:        req.Price,
			CountInStock: req.CountInStock,
			ImageURL:     imageURL,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error creating product"})
		}

		invalidateCatalog(wp, rdb)
		return c.JSON(http.StatusCreated, toResponse(product))
	}
}

// @Summary     Update a product
// @Description Admin only. A zero-valued field keeps the stored value, price 0 included.
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id path int true "product ID"
// @Param       body body api.UpdateProductRequest true "fields to update"
// @Success     200 {object} api.ProductResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /products/{id} [put]
func UpdateProductHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid product ID"})
		}

		var req api.UpdateProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		product, err := getProductByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error updating product"})
		}

		// Zero values keep the stored field. This means price and stock can
		// never be set to 0 through this endpoint; kept as observed.
		if req.Name != "" {
			product.Name = req.Name
		}
		if req.Description != "" {
			product.Description = req.Description
		}
		if req.Category != "" {
			product.Category = req.Category
		}
		if req.Price != 0 {
			product.Price = req.Price
		}
		if req.CountInStock != 0 {
			product.CountInStock = req.CountInStock
		}
		if req.ImageURL != "" {
			product.ImageURL = req.ImageURL
		}

		if err := updateProduct(c.Request().Context(), db, product); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error updating product"})
		}

		invalidateCatalog(wp, rdb)
		return c.JSON(http.StatusOK, toResponse(product))
	}
}

// @Summary     Delete a product
// @Description Admin only
// @Tags        products
// @Produce     json
// @Param       id path int true "product ID"
// @Success     200 {object} api.ErrorResponse "removal confirmation message"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /products/{id} [delete]
func DeleteProductHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid product ID"})
		}

		product, err := getProductByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "product not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error deleting product"})
		}

		if err := deleteProduct(c.Request().Context(), db, product.ID); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error deleting product"})
		}

		invalidateCatalog(wp, rdb)
		return c.JSON(http.StatusOK, api.ErrorResponse{Message: "product removed successfully"})
	}
}
