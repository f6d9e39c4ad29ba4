package controllers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/inventory/internal/adapters/http/handlers"
	"github.com/rafaelleal24/inventory/internal/adapters/record"
	"github.com/rafaelleal24/inventory/internal/core/domain"
	"github.com/rafaelleal24/inventory/internal/core/dto"
	"github.com/rafaelleal24/inventory/internal/core/service"
	"github.com/rafaelleal24/inventory/internal/core/serviceerrors"
)

type InventoryController struct {
	inventoryService *service.InventoryService
}

func NewInventoryController(inventoryService *service.InventoryService) *InventoryController {
	return &InventoryController{inventoryService: inventoryService}
}

type ProductResponse struct {
	record.ProductRecord
	Description string `json:"description"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TotalValueResponse struct {
	TotalValue float64 `json:"total_value"`
}

type SweepResponse struct {
	Removed int `json:"removed"`
}

func NewProductResponse(product domain.Product) ProductResponse {
	return ProductResponse{
		ProductRecord: record.Encode(product),
		Description:   product.Describe(),
	}
}

func newProductListResponse(products []domain.Product) []ProductResponse {
	response := make([]ProductResponse, len(products))
	for i, product := range products {
		response[i] = NewProductResponse(product)
	}
	sort.Slice(response, func(i, j int) bool { return response[i].ProductID < response[j].ProductID })
	return response
}

// CreateProduct godoc
// @Summary     Add a product
// @Description Adds a product of the given kind to the inventory
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key header   string                false "Idempotency key"
// @Param       request         body     dto.AddProductRequest  true  "Product data"
// @Success     201             {object} ProductResponse
// @Failure     400             {object} handlers.ErrorResponse
// @Failure     409             {object} handlers.ErrorResponse
// @Failure     429             {object} handlers.ErrorResponse
// @Failure     500             {object} handlers.ErrorResponse
// @Router      /api/v1/products [post]
func (ic *InventoryController) CreateProduct(c *gin.Context) {
	var request dto.AddProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidArgumentError(err.Error()))
		return
	}
	idempotencyKey := c.GetHeader("Idempotency-Key")
	product, err := ic.inventoryService.AddProduct(c.Request.Context(), &request, idempotencyKey)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewProductResponse(product))
}

// GetProductByID godoc
// @Summary     Get product by ID
// @Description Returns a single product by its ID
// @Tags        products
// @Produce     json
// @Param       id  path     string true "Product ID"
// @Success     200 {object} ProductResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [get]
func (ic *InventoryController) GetProductByID(c *gin.Context) {
	product, err := ic.inventoryService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product))
}

// DeleteProduct godoc
// @Summary     Remove a product
// @Description Removes a product from the inventory
// @Tags        products
// @Produce     json
// @Param       id  path     string true "Product ID"
// @Success     200 {object} MessageResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [delete]
func (ic *InventoryController) DeleteProduct(c *gin.Context) {
	if err := ic.inventoryService.Remove(c.Request.Context(), c.Param("id")); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Product removed successfully"})
}

// ListProducts godoc
// @Summary     List products
// @Description Lists all products, optionally filtered by name substring or kind
// @Tags        products
// @Produce     json
// @Param       name query    string false "Name substring filter (case-insensitive)"
// @Param       kind query    string false "Kind filter (Electronics, Grocery, Clothing)"
// @Success     200  {array}  ProductResponse
// @Failure     400  {object} handlers.ErrorResponse
// @Router      /api/v1/products [get]
func (ic *InventoryController) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	var products []domain.Product
	switch {
	case c.Query("kind") != "":
		kind, err := domain.ParseKind(c.Query("kind"))
		if err != nil {
			handlers.HandleError(c, serviceerrors.NewInvalidArgumentError("unknown product kind "+c.Query("kind")))
			return
		}
		products = ic.inventoryService.SearchByKind(ctx, kind)
	case c.Query("name") != "":
		products = ic.inventoryService.SearchByName(ctx, c.Query("name"))
	default:
		products = ic.inventoryService.ListAll(ctx)
	}

	c.JSON(http.StatusOK, newProductListResponse(products))
}

// SellProduct godoc
// @Summary     Sell a product
// @Description Deducts the given quantity from the product's stock
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id      path     string              true "Product ID"
// @Param       request body     dto.QuantityRequest true "Quantity to sell"
// @Success     200     {object} MessageResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     422     {object} handlers.ErrorResponse
// @Failure     429     {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id}/sell [post]
func (ic *InventoryController) SellProduct(c *gin.Context) {
	var request dto.QuantityRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidArgumentError(err.Error()))
		return
	}
	if err := ic.inventoryService.Sell(c.Request.Context(), c.Param("id"), request.Quantity); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Product sold successfully"})
}

// RestockProduct godoc
// @Summary     Restock a product
// @Description Adds the given quantity to the product's stock
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id      path     string              true "Product ID"
// @Param       request body     dto.QuantityRequest true "Quantity to add"
// @Success     200     {object} MessageResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     429     {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id}/restock [post]
func (ic *InventoryController) RestockProduct(c *gin.Context) {
	var request dto.QuantityRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidArgumentError(err.Error()))
		return
	}
	if err := ic.inventoryService.Restock(c.Request.Context(), c.Param("id"), request.Quantity); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Product restocked successfully"})
}

// TotalValue godoc
// @Summary     Total inventory value
// @Description Returns the sum of price times stock across all products
// @Tags        inventory
// @Produce     json
// @Success     200 {object} TotalValueResponse
// @Router      /api/v1/inventory/value [get]
func (ic *InventoryController) TotalValue(c *gin.Context) {
	total := ic.inventoryService.TotalValue(c.Request.Context())
	c.JSON(http.StatusOK, TotalValueResponse{TotalValue: total.Dollars()})
}

// SweepExpired godoc
// @Summary     Remove expired groceries
// @Description Removes every grocery whose expiry date has passed
// @Tags        inventory
// @Produce     json
// @Success     200 {object} SweepResponse
// @Router      /api/v1/inventory/sweep [post]
func (ic *InventoryController) SweepExpired(c *gin.Context) {
	removed := ic.inventoryService.SweepExpired(c.Request.Context())
	c.JSON(http.StatusOK, SweepResponse{Removed: removed})
}

// SaveInventory godoc
// @Summary     Save a snapshot
// @Description Writes the full inventory to the named snapshot, overwriting it
// @Tags        inventory
// @Accept      json
// @Produce     json
// @Param       request body     dto.SnapshotRequest true "Snapshot destination"
// @Success     200     {object} MessageResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/save [post]
func (ic *InventoryController) SaveInventory(c *gin.Context) {
	var request dto.SnapshotRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidArgumentError(err.Error()))
		return
	}
	if err := ic.inventoryService.Save(c.Request.Context(), request.File); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Inventory saved successfully"})
}

// LoadInventory godoc
// @Summary     Load a snapshot
// @Description Replaces the inventory contents with the named snapshot
// @Tags        inventory
// @Accept      json
// @Produce     json
// @Param       request body     dto.SnapshotRequest true "Snapshot source"
// @Success     200     {object} MessageResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     422     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/inventory/load [post]
func (ic *InventoryController) LoadInventory(c *gin.Context) {
	var request dto.SnapshotRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidArgumentError(err.Error()))
		return
	}
	if err := ic.inventoryService.Load(c.Request.Context(), request.File); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Inventory loaded successfully"})
}
