package address_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vbasilioo/workly-web/internal/address"
	addresserrors "github.com/vbasilioo/workly-web/internal/address/errors"
	addressMock "github.com/vbasilioo/workly-web/internal/address/mock"
	"github.com/vbasilioo/workly-web/internal/shared/apperror"
	"github.com/vbasilioo/workly-web/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"
)

func setupHandlerTest(t *testing.T) (*gin.Engine, *addressMock.MockService) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	ctrl := gomock.NewController(t)

	svc := addressMock.NewMockService(ctrl)
	provider := addressMock.NewMockProvider(ctrl)
	provider.EXPECT().Addresses(gomock.Any()).Return(svc, nil).AnyTimes()

	h := address.NewHandler(provider, language.BrazilianPortuguese)
	r := gin.New()
	r.GET("/addresses", h.GetAll)
	r.GET("/addresses/export", h.Export)
	r.GET("/addresses/employee/:employeeId", h.GetByEmployeeID)
	r.GET("/addresses/:id", h.GetByID)
	r.POST("/addresses/with-employee", h.CreateWithEmployee)
	return r, svc
}

func TestAddressHandler_GetAll_SortedByCity(t *testing.T) {
	r, svc := setupHandlerTest(t)
	svc.EXPECT().List(gomock.Any()).Return([]address.Address{
		{ID: "1", City: "Salvador", Type: "residential", IsActive: true},
		{ID: "2", City: "Belém", Type: "commercial", IsActive: true},
		{ID: "3", City: "Aracaju", Type: "residential", IsActive: true},
	}, nil)
	svc.EXPECT().State().Return(store.State{})

	req := httptest.NewRequest(http.MethodGet, "/addresses?order=asc&type=residential", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Less(t, strings.Index(body, "Aracaju"), strings.Index(body, "Salvador"))
	assert.NotContains(t, body, `"id":"2"`)
}

func TestAddressHandler_GetByEmployeeID(t *testing.T) {
	r, svc := setupHandlerTest(t)
	svc.EXPECT().GetByEmployeeID(gomock.Any(), employeeID).Return(address.Address{}, addresserrors.ErrAddressNotFound)

	req := httptest.NewRequest(http.MethodGet, "/addresses/employee/"+employeeID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddressHandler_CreateWithEmployee_MissingEmployee(t *testing.T) {
	r, _ := setupHandlerTest(t)

	body := `{"street":"Rua A","neighborhood":"Centro","city":"Recife","state":"PE","zipCode":"50000000"}`
	req := httptest.NewRequest(http.MethodPost, "/addresses/with-employee", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Employee Id is required")
}

func TestAddressHandler_Export_PDF(t *testing.T) {
	r, svc := setupHandlerTest(t)
	svc.EXPECT().List(gomock.Any()).Return([]address.Address{{ID: "1", City: "São Paulo", IsActive: true}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/addresses/export?format=pdf", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}
