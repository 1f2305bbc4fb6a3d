package department_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/frahmantamala/company-management/internal/core/datamodel"
	"github.com/frahmantamala/company-management/internal/department"
	departmentPostgres "github.com/frahmantamala/company-management/internal/department/postgres"
	"github.com/frahmantamala/company-management/internal/transport"
)

var _ = Describe("Department Handler Integration", func() {
	var (
		db      *gorm.DB
		service *department.Service
		handler *department.Handler
		slogger *slog.Logger
	)

	BeforeEach(func() {
		var err error
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

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

		repo := departmentPostgres.NewDepartmentRepository(db)
		service = department.NewService(repo, slogger)
		baseHandler := &transport.BaseHandler{Logger: slogger}
		handler = department.NewHandler(baseHandler, service)
	})

	createRequest := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/departments", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		handler.CreateDepartment(w, req)
		return w
	}

	It("should answer creation with the success envelope", func() {
		w := createRequest(`{"name":"IT","description":"tech"}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var response transport.WebResponse
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response.Status).To(Equal("success"))
		Expect(response.Message).To(Equal("Department created"))

		data := response.Data.(map[string]interface{})
		Expect(data["id"]).NotTo(BeEmpty())
		Expect(data["name"]).To(Equal("IT"))
		Expect(data["employees"]).To(Equal([]interface{}{}))
	})

	It("should answer a duplicate name with the error envelope", func() {
		Expect(createRequest(`{"name":"IT"}`).Code).To(Equal(http.StatusOK))

		w := createRequest(`{"name":"IT"}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var response transport.ErrorResponse
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response.StatusCode).To(Equal(http.StatusBadRequest))
		Expect(response.Error).To(Equal("Department name already exists"))
	})

	It("should answer a malformed body with a 400", func() {
		w := createRequest(`{"name":`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should list departments as an empty array when none exist", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/departments", nil)
		w := httptest.NewRecorder()
		handler.GetDepartments(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var response transport.WebResponse
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response.Message).To(Equal("Departments retrieved"))
		Expect(response.Data).To(Equal([]interface{}{}))
	})
})
