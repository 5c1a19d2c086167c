package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkpress-io/inkpress/internal/application/catalog/usecases"
	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
	"github.com/inkpress-io/inkpress/internal/shared/utils"
)

type ProductHandler struct {
	createProductUC *usecases.CreateProductUseCase
	updateProductUC *usecases.UpdateProductUseCase
	getProductUC    *usecases.GetProductUseCase
	listProductsUC  *usecases.ListProductsUseCase
	createVariantUC *usecases.CreateVariantUseCase
	updateVariantUC *usecases.UpdateVariantUseCase
	syncProductUC   *usecases.SyncProductUseCase
	logger          logger.Interface
}

func NewProductHandler(
	createProductUC *usecases.CreateProductUseCase,
	updateProductUC *usecases.UpdateProductUseCase,
	getProductUC *usecases.GetProductUseCase,
	listProductsUC *usecases.ListProductsUseCase,
	createVariantUC *usecases.CreateVariantUseCase,
	updateVariantUC *usecases.UpdateVariantUseCase,
	syncProductUC *usecases.SyncProductUseCase,
	logger logger.Interface,
) *ProductHandler {
	return &ProductHandler{
		createProductUC: createProductUC,
		updateProductUC: updateProductUC,
		getProductUC:    getProductUC,
		listProductsUC:  listProductsUC,
		createVariantUC: createVariantUC,
		updateVariantUC: updateVariantUC,
		syncProductUC:   syncProductUC,
		logger:          logger,
	}
}

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	ProductType string   `json:"product_type" binding:"required"`
	WorkRef     string   `json:"work_ref"`
	Scopes      []string `json:"scopes"`
	ImageURLs   []string `json:"image_urls"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Scopes      []string `json:"scopes"`
	ImageURLs   []string `json:"image_urls"`
	Active      *bool    `json:"active"`
}

type CreateVariantRequest struct {
	Name            string  `json:"name" binding:"required"`
	SKU             string  `json:"sku" binding:"required"`
	PriceAmount     int64   `json:"price_amount" binding:"required,gt=0"`
	Currency        string  `json:"currency" binding:"required,len=3"`
	Region          string  `json:"region"`
	BillingInterval *string `json:"billing_interval"`
	InventoryQty    *int    `json:"inventory_quantity"`
}

type UpdateVariantRequest struct {
	PriceAmount  *int64 `json:"price_amount"`
	Currency     string `json:"currency"`
	Region       string `json:"region"`
	InventoryQty *int   `json:"inventory_quantity"`
	Active       *bool  `json:"active"`
}

// ListProducts is the public catalog listing. Admins can pass active=false
// to see deactivated entries; the storefront defaults to active only.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	page, pageSize := parsePagination(c)

	cmd := usecases.ListProductsCommand{Page: page, PageSize: pageSize}

	if raw := c.Query("type"); raw != "" {
		productType := catalog.ProductType(raw)
		cmd.Type = &productType
	}
	if raw := c.Query("work_ref"); raw != "" {
		cmd.WorkRef = &raw
	}
	switch c.Query("active") {
	case "false":
		active := false
		cmd.Active = &active
	case "all":
	default:
		active := true
		cmd.Active = &active
	}

	result, err := h.listProductsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toProductResponses(result.Products), result.Total, result.Page, result.PageSize)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, ok := paramUint(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid product ID")
		return
	}

	result, err := h.getProductUC.Execute(c.Request.Context(), usecases.GetProductCommand{ProductID: productID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := toProductResponse(result.Product)
	resp.DescriptionHTML = result.DescriptionHTML
	resp.Variants = make([]VariantResponse, 0, len(result.Variants))
	for _, v := range result.Variants {
		resp.Variants = append(resp.Variants, toVariantResponse(v))
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create product", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	grants := make([]catalog.ContentGrant, 0, len(req.Scopes))
	for _, scope := range req.Scopes {
		grants = append(grants, catalog.ContentGrant{Scope: scope})
	}

	cmd := usecases.CreateProductCommand{
		Name:        req.Name,
		Description: req.Description,
		ProductType: catalog.ProductType(req.ProductType),
		WorkRef:     req.WorkRef,
		Grants:      grants,
		ImageURLs:   req.ImageURLs,
	}

	result, err := h.createProductUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toProductResponse(result.Product), "Product created successfully")
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	productID, ok := paramUint(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid product ID")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update product", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateProductCommand{
		ProductID:   productID,
		Name:        req.Name,
		Description: req.Description,
		ImageURLs:   req.ImageURLs,
		Active:      req.Active,
	}
	if req.Scopes != nil {
		cmd.Grants = make([]catalog.ContentGrant, 0, len(req.Scopes))
		for _, scope := range req.Scopes {
			cmd.Grants = append(cmd.Grants, catalog.ContentGrant{Scope: scope})
		}
	}

	result, err := h.updateProductUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product updated successfully", toProductResponse(result.Product))
}

func (h *ProductHandler) CreateVariant(c *gin.Context) {
	productID, ok := paramUint(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid product ID")
		return
	}

	var req CreateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create variant", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateVariantCommand{
		ProductID:       productID,
		Name:            req.Name,
		SKU:             req.SKU,
		PriceAmount:     req.PriceAmount,
		Currency:        req.Currency,
		Region:          req.Region,
		BillingInterval: req.BillingInterval,
		InventoryQty:    req.InventoryQty,
	}

	result, err := h.createVariantUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toVariantResponse(result.Variant), "Variant created successfully")
}

func (h *ProductHandler) UpdateVariant(c *gin.Context) {
	variantID, ok := paramUint(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid variant ID")
		return
	}

	var req UpdateVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update variant", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateVariantCommand{
		VariantID:    variantID,
		PriceAmount:  req.PriceAmount,
		Currency:     req.Currency,
		Region:       req.Region,
		InventoryQty: req.InventoryQty,
		Active:       req.Active,
	}

	result, err := h.updateVariantUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Variant updated successfully", toVariantResponse(result.Variant))
}

// SyncProduct mirrors the product and its prices at the payment provider.
func (h *ProductHandler) SyncProduct(c *gin.Context) {
	productID, ok := paramUint(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid product ID")
		return
	}

	result, err := h.syncProductUC.Execute(c.Request.Context(), usecases.SyncProductCommand{ProductID: productID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product synced successfully", gin.H{
		"provider_product_id": result.ProviderProductID,
		"synced_price_ids":    result.SyncedPriceIDs,
	})
}
