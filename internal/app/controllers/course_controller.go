package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/akothari/campus-registry/internal/app/models"
	"github.com/akothari/campus-registry/internal/app/models/dto"
	"github.com/akothari/campus-registry/internal/app/services"
	"github.com/akothari/campus-registry/internal/middleware"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Creates a new course; the server assigns the UUID and both timestamps
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} models.Course "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, bindError("course", err))
		return
	}

	ctx.JSON(http.StatusCreated, c.courseService.CreateCourse(ctx, req))
}

// ListCourses retrieves all courses with optional filtering
// @Summary List courses
// @Description Retrieves all courses; code, level, term and year filter exactly, title, instructor and department on case-insensitive substring
// @Tags courses
// @Produce json
// @Param code query string false "Filter by course code"
// @Param title query string false "Filter by course title"
// @Param instructor query string false "Filter by instructor name"
// @Param department query string false "Filter by department"
// @Param level query string false "Filter by course level"
// @Param term query string false "Filter by term"
// @Param year query int false "Filter by year"
// @Success 200 {array} models.Course "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid year filter"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	filter := models.CourseFilter{
		Code:       queryValue(ctx, "code"),
		Title:      queryValue(ctx, "title"),
		Instructor: queryValue(ctx, "instructor"),
		Department: queryValue(ctx, "department"),
		Level:      queryValue(ctx, "level"),
		Term:       queryValue(ctx, "term"),
	}
	if yearStr := queryValue(ctx, "year"); yearStr != nil {
		year, err := strconv.Atoi(*yearStr)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid year filter").
				WithField("year").
				WithDetailsf("year must be an integer, got %q", *yearStr)
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.Year = &year
	}

	ctx.JSON(http.StatusOK, c.courseService.ListCourses(ctx, filter))
}

// GetCourseByID retrieves a course by ID
// @Summary Get a specific course
// @Tags courses
// @Produce json
// @Param id path string true "Course UUID"
// @Success 200 {object} models.Course "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parsePathID(ctx, "course")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// UpdateCourse updates a course. The route uses PUT, but only supplied fields
// are applied; this mirrors the published behavior of the endpoint rather
// than full-replacement semantics.
// @Summary Update a course
// @Description Applies the supplied fields to the stored course; absent fields are left untouched and an empty body is a no-op
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course UUID"
// @Param request body dto.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} models.Course "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parsePathID(ctx, "course")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, bindError("course", err))
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// DeleteCourse deletes a course
// @Summary Delete a course
// @Tags courses
// @Param id path string true "Course UUID"
// @Success 204 "Course deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parsePathID(ctx, "course")
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
