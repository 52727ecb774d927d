package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akothari/campus-registry/internal/app/models"
	"github.com/akothari/campus-registry/internal/app/models/dto"
	"github.com/akothari/campus-registry/internal/app/services"
	"github.com/akothari/campus-registry/internal/middleware"
)

// AddressController handles address-related operations
type AddressController struct {
	addressService *services.AddressService
}

// NewAddressController creates a new AddressController
func NewAddressController(addressService *services.AddressService) *AddressController {
	return &AddressController{addressService: addressService}
}

// CreateAddress handles address creation
// @Summary Create a new address
// @Description Creates a new address under the client-supplied UUID
// @Tags addresses
// @Accept json
// @Produce json
// @Param request body dto.CreateAddressRequest true "Address information"
// @Success 201 {object} models.Address "Address created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or ID already exists"
// @Router /addresses [post]
func (c *AddressController) CreateAddress(ctx *gin.Context) {
	var req dto.CreateAddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, bindError("address", err))
		return
	}

	address, err := c.addressService.CreateAddress(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, address)
}

// ListAddresses retrieves all addresses with optional filtering
// @Summary List addresses
// @Description Retrieves all addresses matching the supplied exact-match filters
// @Tags addresses
// @Produce json
// @Param street query string false "Filter by street"
// @Param city query string false "Filter by city"
// @Param state query string false "Filter by state/region"
// @Param postal_code query string false "Filter by postal code"
// @Param country query string false "Filter by country"
// @Success 200 {array} models.Address "Addresses retrieved successfully"
// @Router /addresses [get]
func (c *AddressController) ListAddresses(ctx *gin.Context) {
	filter := models.AddressFilter{
		Street:     queryValue(ctx, "street"),
		City:       queryValue(ctx, "city"),
		State:      queryValue(ctx, "state"),
		PostalCode: queryValue(ctx, "postal_code"),
		Country:    queryValue(ctx, "country"),
	}
	ctx.JSON(http.StatusOK, c.addressService.ListAddresses(ctx, filter))
}

// GetAddressByID retrieves an address by ID
// @Summary Get address by ID
// @Tags addresses
// @Produce json
// @Param id path string true "Address UUID"
// @Success 200 {object} models.Address "Address retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid address ID"
// @Failure 404 {object} dto.ErrorResponse "Address not found"
// @Router /addresses/{id} [get]
func (c *AddressController) GetAddressByID(ctx *gin.Context) {
	id, ok := parsePathID(ctx, "address")
	if !ok {
		return
	}

	address, err := c.addressService.GetAddressByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, address)
}

// UpdateAddress applies a partial update to an address
// @Summary Update an address
// @Description Applies the supplied fields to the stored address; absent fields are left untouched
// @Tags addresses
// @Accept json
// @Produce json
// @Param id path string true "Address UUID"
// @Param request body dto.UpdateAddressRequest true "Fields to update"
// @Success 200 {object} models.Address "Address updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Address not found"
// @Router /addresses/{id} [patch]
func (c *AddressController) UpdateAddress(ctx *gin.Context) {
	id, ok := parsePathID(ctx, "address")
	if !ok {
		return
	}

	var req dto.UpdateAddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, bindError("address", err))
		return
	}

	address, err := c.addressService.UpdateAddress(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, address)
}
