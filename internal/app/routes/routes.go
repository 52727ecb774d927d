package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/akothari/campus-registry/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	healthController *controllers.HealthController,
	addressController *controllers.AddressController,
	personController *controllers.PersonController,
	courseController *controllers.CourseController,
) {
	// Root welcome message
	router.GET("/", healthController.Root)

	// Health routes
	health := router.Group("/health")
	{
		health.GET("", healthController.GetHealth)
		health.GET("/:path_echo", healthController.GetHealthWithPath)
	}

	// Address routes
	addresses := router.Group("/addresses")
	{
		addresses.POST("", addressController.CreateAddress)
		addresses.GET("", addressController.ListAddresses)
		addresses.GET("/:id", addressController.GetAddressByID)
		addresses.PATCH("/:id", addressController.UpdateAddress)
	}

	// Person routes
	persons := router.Group("/persons")
	{
		persons.POST("", personController.CreatePerson)
		persons.GET("", personController.ListPersons)
		persons.GET("/:id", personController.GetPersonByID)
		persons.PATCH("/:id", personController.UpdatePerson)
	}

	// Course routes
	courses := router.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}
}
