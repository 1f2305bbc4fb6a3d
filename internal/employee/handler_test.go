package employee_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/frahmantamala/company-management/internal/core/datamodel"
	departmentPostgres "github.com/frahmantamala/company-management/internal/department/postgres"
	"github.com/frahmantamala/company-management/internal/employee"
	employeePostgres "github.com/frahmantamala/company-management/internal/employee/postgres"
	"github.com/frahmantamala/company-management/internal/transport"
)

var _ = Describe("Employee Handler Integration", func() {
	var (
		db           *gorm.DB
		handler      *employee.Handler
		departmentID string
	)

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(
			&datamodel.Department{},
			&datamodel.Employee{},
			&datamodel.Project{},
		)
		Expect(err).NotTo(HaveOccurred())

		repo := employeePostgres.NewEmployeeRepository(db)
		departmentRepo := departmentPostgres.NewDepartmentRepository(db)
		service := employee.NewService(repo, departmentRepo, slogger)
		handler = employee.NewHandler(&transport.BaseHandler{Logger: slogger}, service)

		dept := &datamodel.Department{Name: "IT"}
		Expect(db.Create(dept).Error).NotTo(HaveOccurred())
		departmentID = dept.ID
	})

	createEmployee := func() string {
		body := `{"email":"dev@mail.com","name":"Dev One","position":"Developer","department_id":"` + departmentID + `"}`
		req := httptest.NewRequest(http.MethodPost, "/api/employees", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		handler.CreateEmployee(w, req)
		Expect(w.Code).To(Equal(http.StatusOK))

		var response transport.WebResponse
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response.Message).To(Equal("Employee created"))
		return response.Data.(map[string]interface{})["id"].(string)
	}

	It("should answer the list with the found message", func() {
		createEmployee()

		req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
		w := httptest.NewRecorder()
		handler.GetEmployees(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var response transport.WebResponse
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response.Status).To(Equal("success"))
		Expect(response.Message).To(Equal("Employees found"))
	})

	It("should answer a single lookup with the found message and nested department", func() {
		id := createEmployee()

		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		req := httptest.NewRequest(http.MethodGet, "/api/employees/"+id, nil)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
		w := httptest.NewRecorder()
		handler.GetEmployee(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var response transport.WebResponse
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response.Message).To(Equal("Employee found"))

		data := response.Data.(map[string]interface{})
		department := data["department"].(map[string]interface{})
		Expect(department["id"]).To(Equal(departmentID))
		Expect(department["name"]).To(Equal("IT"))
	})
})
