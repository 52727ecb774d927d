package controllers_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akothari/campus-registry/internal/app/models"
)

func personBody(uni string, cities ...string) map[string]interface{} {
	addresses := make([]map[string]interface{}, 0, len(cities))
	for _, city := range cities {
		addresses = append(addresses, map[string]interface{}{
			"street":      "1 Test St",
			"city":        city,
			"postal_code": "00000",
			"country":     "USA",
		})
	}
	return map[string]interface{}{
		"uni":        uni,
		"first_name": "Ada",
		"last_name":  "Byron",
		"email":      uni + "@columbia.edu",
		"phone":      "+1-212-555-0142",
		"birth_date": "2001-12-10",
		"addresses":  addresses,
	}
}

func TestCreatePersonAssignsServerID(t *testing.T) {
	router := newTestRouter()

	body := personBody("ab1234", "New York")
	// A client-supplied id is not part of the create shape and is ignored
	body["id"] = uuid.New().String()

	w := doRequest(t, router, http.MethodPost, "/persons", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Person
	decodeJSON(t, w, &created)
	assert.NotEqual(t, body["id"], created.ID.String())
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "ab1234", created.Uni)
	require.Len(t, created.Addresses, 1)

	// A second save gets a distinct identifier
	w = doRequest(t, router, http.MethodPost, "/persons", personBody("cd5678"))
	require.Equal(t, http.StatusCreated, w.Code)
	var second models.Person
	decodeJSON(t, w, &second)
	assert.NotEqual(t, created.ID, second.ID)
}

func TestCreatePersonValidation(t *testing.T) {
	router := newTestRouter()

	body := personBody("ab1234")
	body["email"] = "not-an-email"
	w := doRequest(t, router, http.MethodPost, "/persons", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = personBody("ab1234")
	body["birth_date"] = "12/10/2001"
	w = doRequest(t, router, http.MethodPost, "/persons", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = personBody("ab1234")
	delete(body, "first_name")
	w = doRequest(t, router, http.MethodPost, "/persons", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPersonsCityFilter(t *testing.T) {
	router := newTestRouter()
	doRequest(t, router, http.MethodPost, "/persons", personBody("aa1111", "Boston"))
	doRequest(t, router, http.MethodPost, "/persons", personBody("bb2222", "New York", "Boston"))
	doRequest(t, router, http.MethodPost, "/persons", personBody("cc3333", "Chicago"))

	w := doRequest(t, router, http.MethodGet, "/persons?city=Boston", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var matched []models.Person
	decodeJSON(t, w, &matched)
	require.Len(t, matched, 2, "persons match when at least one embedded address matches")
	assert.Equal(t, "aa1111", matched[0].Uni)
	assert.Equal(t, "bb2222", matched[1].Uni)
}

func TestListPersonsConjunction(t *testing.T) {
	router := newTestRouter()
	doRequest(t, router, http.MethodPost, "/persons", personBody("aa1111", "Boston"))
	doRequest(t, router, http.MethodPost, "/persons", personBody("bb2222", "Boston"))

	w := doRequest(t, router, http.MethodGet, "/persons?city=Boston&uni=bb2222", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var matched []models.Person
	decodeJSON(t, w, &matched)
	require.Len(t, matched, 1)
	assert.Equal(t, "bb2222", matched[0].Uni)
}

func TestGetPersonByID(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodPost, "/persons", personBody("ab1234"))
	var created models.Person
	decodeJSON(t, w, &created)

	w = doRequest(t, router, http.MethodGet, "/persons/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got models.Person
	decodeJSON(t, w, &got)
	assert.Equal(t, created.ID, got.ID)

	w = doRequest(t, router, http.MethodGet, "/persons/"+uuid.New().String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdatePersonPartialMerge(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodPost, "/persons", personBody("ab1234", "New York"))
	var created models.Person
	decodeJSON(t, w, &created)

	// An explicitly supplied empty value is applied, omitted fields are kept
	w = doRequest(t, router, http.MethodPatch, "/persons/"+created.ID.String(), map[string]interface{}{
		"last_name": "Lovelace",
		"phone":     "",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Person
	decodeJSON(t, w, &updated)
	assert.Equal(t, "Lovelace", updated.LastName)
	assert.Equal(t, "", updated.Phone)
	assert.Equal(t, "Ada", updated.FirstName)
	assert.Len(t, updated.Addresses, 1)
}

func TestUpdatePersonNotFound(t *testing.T) {
	router := newTestRouter()

	w := doRequest(t, router, http.MethodPatch, "/persons/"+uuid.New().String(), map[string]interface{}{
		"first_name": "Grace",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
