package employee_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vbasilioo/workly-web/internal/employee"
	employeeerrors "github.com/vbasilioo/workly-web/internal/employee/errors"
	employeeMock "github.com/vbasilioo/workly-web/internal/employee/mock"
	"github.com/vbasilioo/workly-web/internal/shared/apperror"
	"github.com/vbasilioo/workly-web/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

type handlerDeps struct {
	router  *gin.Engine
	service *employeeMock.MockService
}

func setupHandlerTest(t *testing.T) *handlerDeps {
	ctrl := gomock.NewController(t)

	svc := employeeMock.NewMockService(ctrl)
	provider := employeeMock.NewMockProvider(ctrl)
	provider.EXPECT().Employees(gomock.Any()).Return(svc, nil).AnyTimes()

	h := employee.NewHandler(provider, language.BrazilianPortuguese)
	r := setupRouter()
	r.GET("/employees", h.GetAll)
	r.GET("/employees/export", h.Export)
	r.GET("/employees/:id", h.GetByID)
	r.POST("/employees", h.Create)
	r.PUT("/employees/:id", h.Update)
	r.DELETE("/employees/:id", h.Deactivate)
	r.PATCH("/employees/:id/restore", h.Restore)

	return &handlerDeps{router: r, service: svc}
}

type listBody struct {
	Ok   bool `json:"ok"`
	Data struct {
		Items  []employee.Employee `json:"items"`
		Counts struct {
			All      int `json:"all"`
			Active   int `json:"active"`
			Inactive int `json:"inactive"`
		} `json:"counts"`
		Categories []string `json:"categories"`
		Warning    string   `json:"warning"`
	} `json:"data"`
}

func sampleEmployees() []employee.Employee {
	return []employee.Employee{
		{ID: "1", Name: "Ana Lima", Email: "ana@x.com", Department: "TI", IsActive: true},
		{ID: "2", Name: "Bruno Costa", Email: "bruno@x.com", Department: "RH", IsActive: true},
		{ID: "3", Name: "Carla Dias", Email: "carla@x.com", Department: "TI", IsActive: false},
	}
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	t.Run("active tab with search", func(t *testing.T) {
		deps := setupHandlerTest(t)
		deps.service.EXPECT().List(gomock.Any()).Return(sampleEmployees(), nil)
		deps.service.EXPECT().State().Return(store.State{})

		req := httptest.NewRequest(http.MethodGet, "/employees?q=ana", nil)
		w := httptest.NewRecorder()
		deps.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body listBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Data.Items, 1)
		assert.Equal(t, "1", body.Data.Items[0].ID)
		assert.Equal(t, 3, body.Data.Counts.All)
		assert.Equal(t, 2, body.Data.Counts.Active)
		assert.Equal(t, 1, body.Data.Counts.Inactive)
	})

	t.Run("inactive tab", func(t *testing.T) {
		deps := setupHandlerTest(t)
		deps.service.EXPECT().List(gomock.Any()).Return(sampleEmployees(), nil)
		deps.service.EXPECT().State().Return(store.State{})

		req := httptest.NewRequest(http.MethodGet, "/employees?tab=inactive", nil)
		w := httptest.NewRecorder()
		deps.router.ServeHTTP(w, req)

		var body listBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Data.Items, 1)
		assert.Equal(t, "Carla Dias", body.Data.Items[0].Name)
	})

	t.Run("stale list answers with warning", func(t *testing.T) {
		deps := setupHandlerTest(t)
		deps.service.EXPECT().List(gomock.Any()).Return(sampleEmployees(), apperror.ErrNetwork)
		deps.service.EXPECT().State().Return(store.State{Stale: true})

		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		w := httptest.NewRecorder()
		deps.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body listBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, apperror.ErrNetwork.Message, body.Data.Warning)
	})

	t.Run("load failure without list", func(t *testing.T) {
		deps := setupHandlerTest(t)
		deps.service.EXPECT().List(gomock.Any()).Return(nil, apperror.ErrNetwork)
		deps.service.EXPECT().State().Return(store.State{Stale: true})

		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		w := httptest.NewRecorder()
		deps.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestEmployeeHandler_Export(t *testing.T) {
	deps := setupHandlerTest(t)
	deps.service.EXPECT().List(gomock.Any()).Return(sampleEmployees(), nil)

	req := httptest.NewRequest(http.MethodGet, "/employees/export?tab=all&format=csv", nil)
	w := httptest.NewRecorder()
	deps.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "employees")
	assert.Contains(t, w.Body.String(), "Ana Lima")
	assert.Contains(t, w.Body.String(), "Carla Dias")
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deps := setupHandlerTest(t)
		deps.service.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req employee.CreateEmployeeRequest) (employee.Employee, error) {
				assert.Equal(t, "Ana Lima", req.Name)
				assert.Equal(t, "5000", req.Salary.String())
				return employee.Employee{ID: "1", Name: req.Name, IsActive: true}, nil
			})

		body := `{"name":"Ana Lima","email":"ana@x.com","position":"Dev","department":"TI","hireDate":"2024-01-10","salary":5000}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		deps.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"1"`)
	})

	t.Run("invalid body", func(t *testing.T) {
		deps := setupHandlerTest(t)

		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{"name":"A"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		deps.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
	})

	t.Run("conflict", func(t *testing.T) {
		deps := setupHandlerTest(t)
		deps.service.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(employee.Employee{}, employeeerrors.ErrEmployeeAlreadyExists)

		body := `{"name":"Ana Lima","email":"ana@x.com","position":"Dev","department":"TI","hireDate":"2024-01-10","salary":5000}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		deps.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		deps := setupHandlerTest(t)
		deps.service.EXPECT().GetByID(gomock.Any(), "9").Return(employee.Employee{}, employeeerrors.ErrEmployeeNotFound)

		req := httptest.NewRequest(http.MethodGet, "/employees/9", nil)
		w := httptest.NewRecorder()
		deps.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unexpected error is masked", func(t *testing.T) {
		deps := setupHandlerTest(t)
		deps.service.EXPECT().GetByID(gomock.Any(), "1").Return(employee.Employee{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/employees/1", nil)
		w := httptest.NewRecorder()
		deps.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "boom")
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	deps := setupHandlerTest(t)
	deps.service.EXPECT().Update(gomock.Any(), "1", gomock.Any()).
		DoAndReturn(func(_ any, _ string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
			require.NotNil(t, req.Position)
			assert.Equal(t, "Lead", *req.Position)
			return employee.Employee{ID: "1", Position: "Lead"}, nil
		})

	req := httptest.NewRequest(http.MethodPut, "/employees/1", strings.NewReader(`{"position":"Lead"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	deps.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEmployeeHandler_Lifecycle(t *testing.T) {
	t.Run("deactivate", func(t *testing.T) {
		deps := setupHandlerTest(t)
		deps.service.EXPECT().Deactivate(gomock.Any(), "1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/employees/1", nil)
		w := httptest.NewRecorder()
		deps.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"isActive":false`)
	})

	t.Run("restore", func(t *testing.T) {
		deps := setupHandlerTest(t)
		deps.service.EXPECT().Restore(gomock.Any(), "1").Return(nil)

		req := httptest.NewRequest(http.MethodPatch, "/employees/1/restore", nil)
		w := httptest.NewRecorder()
		deps.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"isActive":true`)
	})
}
