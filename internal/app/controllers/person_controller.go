package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akothari/campus-registry/internal/app/models"
	"github.com/akothari/campus-registry/internal/app/models/dto"
	"github.com/akothari/campus-registry/internal/app/services"
	"github.com/akothari/campus-registry/internal/middleware"
)

// PersonController handles person-related operations
type PersonController struct {
	personService *services.PersonService
}

// NewPersonController creates a new PersonController
func NewPersonController(personService *services.PersonService) *PersonController {
	return &PersonController{personService: personService}
}

// CreatePerson handles person creation
// @Summary Create a new person
// @Description Creates a new person; the server assigns the UUID
// @Tags persons
// @Accept json
// @Produce json
// @Param request body dto.CreatePersonRequest true "Person information"
// @Success 201 {object} models.Person "Person created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /persons [post]
func (c *PersonController) CreatePerson(ctx *gin.Context) {
	var req dto.CreatePersonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, bindError("person", err))
		return
	}

	ctx.JSON(http.StatusCreated, c.personService.CreatePerson(ctx, req))
}

// ListPersons retrieves all persons with optional filtering
// @Summary List persons
// @Description Retrieves all persons matching the supplied filters; city and country match against any embedded address
// @Tags persons
// @Produce json
// @Param uni query string false "Filter by UNI"
// @Param first_name query string false "Filter by first name"
// @Param last_name query string false "Filter by last name"
// @Param email query string false "Filter by email"
// @Param phone query string false "Filter by phone number"
// @Param birth_date query string false "Filter by date of birth (YYYY-MM-DD)"
// @Param city query string false "Filter by city of at least one address"
// @Param country query string false "Filter by country of at least one address"
// @Success 200 {array} models.Person "Persons retrieved successfully"
// @Router /persons [get]
func (c *PersonController) ListPersons(ctx *gin.Context) {
	filter := models.PersonFilter{
		Uni:       queryValue(ctx, "uni"),
		FirstName: queryValue(ctx, "first_name"),
		LastName:  queryValue(ctx, "last_name"),
		Email:     queryValue(ctx, "email"),
		Phone:     queryValue(ctx, "phone"),
		BirthDate: queryValue(ctx, "birth_date"),
		City:      queryValue(ctx, "city"),
		Country:   queryValue(ctx, "country"),
	}
	ctx.JSON(http.StatusOK, c.personService.ListPersons(ctx, filter))
}

// GetPersonByID retrieves a person by ID
// @Summary Get person by ID
// @Tags persons
// @Produce json
// @Param id path string true "Person UUID"
// @Success 200 {object} models.Person "Person retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid person ID"
// @Failure 404 {object} dto.ErrorResponse "Person not found"
// @Router /persons/{id} [get]
func (c *PersonController) GetPersonByID(ctx *gin.Context) {
	id, ok := parsePathID(ctx, "person")
	if !ok {
		return
	}

	person, err := c.personService.GetPersonByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, person)
}

// UpdatePerson applies a partial update to a person
// @Summary Update a person
// @Description Applies the supplied fields to the stored person; absent fields are left untouched
// @Tags persons
// @Accept json
// @Produce json
// @Param id path string true "Person UUID"
// @Param request body dto.UpdatePersonRequest true "Fields to update"
// @Success 200 {object} models.Person "Person updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Person not found"
// @Router /persons/{id} [patch]
func (c *PersonController) UpdatePerson(ctx *gin.Context) {
	id, ok := parsePathID(ctx, "person")
	if !ok {
		return
	}

	var req dto.UpdatePersonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, bindError("person", err))
		return
	}

	person, err := c.personService.UpdatePerson(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, person)
}
