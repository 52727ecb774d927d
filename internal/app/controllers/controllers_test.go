package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/akothari/campus-registry/internal/app/controllers"
	"github.com/akothari/campus-registry/internal/app/repositories"
	"github.com/akothari/campus-registry/internal/app/routes"
	"github.com/akothari/campus-registry/internal/app/services"
	"github.com/akothari/campus-registry/internal/pkg/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.RegisterCustomRules(v); err != nil {
			panic(err)
		}
	}
	os.Exit(m.Run())
}

// newTestRouter builds a router over fresh repositories so every test starts
// from an empty state.
func newTestRouter() *gin.Engine {
	addressService := services.NewAddressService(repositories.NewAddressRepository())
	personService := services.NewPersonService(repositories.NewPersonRepository())
	courseService := services.NewCourseService(repositories.NewCourseRepository())

	router := gin.New()
	routes.SetupRouter(
		router,
		controllers.NewHealthController(),
		controllers.NewAddressController(addressService),
		controllers.NewPersonController(personService),
		controllers.NewCourseController(courseService),
	)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
