package controllers_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akothari/campus-registry/internal/app/models"
	"github.com/akothari/campus-registry/internal/app/models/dto"
)

func addressBody(id uuid.UUID, street, city string) map[string]interface{} {
	return map[string]interface{}{
		"id":          id.String(),
		"street":      street,
		"city":        city,
		"state":       "NY",
		"postal_code": "10027",
		"country":     "USA",
	}
}

func TestCreateAddress(t *testing.T) {
	router := newTestRouter()
	id := uuid.New()

	w := doRequest(t, router, http.MethodPost, "/addresses", addressBody(id, "Main St", "New York"))
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Address
	decodeJSON(t, w, &created)
	assert.Equal(t, id, created.ID)
	assert.Equal(t, "Main St", created.Street)
	assert.Equal(t, "New York", created.City)
}

func TestCreateAddressDuplicateID(t *testing.T) {
	router := newTestRouter()
	id := uuid.New()

	w := doRequest(t, router, http.MethodPost, "/addresses", addressBody(id, "Main St", "New York"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, http.MethodPost, "/addresses", addressBody(id, "Other St", "Boston"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errResp dto.ErrorResponse
	decodeJSON(t, w, &errResp)
	require.NotNil(t, errResp.Error)
	assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, errResp.Error.Code)
	assert.Contains(t, errResp.Error.Message, id.String(), "the rejection names the conflicting ID")

	// The original record is untouched by the rejected create
	w = doRequest(t, router, http.MethodGet, "/addresses/"+id.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stored models.Address
	decodeJSON(t, w, &stored)
	assert.Equal(t, "Main St", stored.Street)
}

func TestCreateAddressMissingFields(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodPost, "/addresses", map[string]interface{}{
		"id":   uuid.New().String(),
		"city": "New York",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAddressNotFound(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/addresses/"+uuid.New().String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAddressMalformedID(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodGet, "/addresses/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResp dto.ErrorResponse
	decodeJSON(t, w, &errResp)
	require.NotNil(t, errResp.Error)
	assert.Equal(t, dto.ErrorCodeResourceInvalid, errResp.Error.Code)
}

func TestListAddressesWithFilters(t *testing.T) {
	router := newTestRouter()
	doRequest(t, router, http.MethodPost, "/addresses", addressBody(uuid.New(), "First St", "New York"))
	doRequest(t, router, http.MethodPost, "/addresses", addressBody(uuid.New(), "Second St", "Boston"))

	w := doRequest(t, router, http.MethodGet, "/addresses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []models.Address
	decodeJSON(t, w, &all)
	assert.Len(t, all, 2)

	w = doRequest(t, router, http.MethodGet, "/addresses?city=Boston", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var filtered []models.Address
	decodeJSON(t, w, &filtered)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Second St", filtered[0].Street)

	// No match yields an empty list, not an error
	w = doRequest(t, router, http.MethodGet, "/addresses?city=Chicago", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var empty []models.Address
	decodeJSON(t, w, &empty)
	assert.Empty(t, empty)
}

func TestUpdateAddressPartialMerge(t *testing.T) {
	router := newTestRouter()
	id := uuid.New()
	doRequest(t, router, http.MethodPost, "/addresses", addressBody(id, "Main St", "New York"))

	w := doRequest(t, router, http.MethodPatch, "/addresses/"+id.String(), map[string]interface{}{
		"city": "Boston",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Address
	decodeJSON(t, w, &updated)
	assert.Equal(t, "Boston", updated.City)
	assert.Equal(t, "Main St", updated.Street, "omitted fields keep their stored values")
	assert.Equal(t, "10027", updated.PostalCode)
}

func TestUpdateAddressNotFound(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodPatch, "/addresses/"+uuid.New().String(), map[string]interface{}{
		"city": "Boston",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
