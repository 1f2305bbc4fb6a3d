package project_test

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
	"github.com/frahmantamala/company-management/internal/project"
	projectPostgres "github.com/frahmantamala/company-management/internal/project/postgres"
	"github.com/frahmantamala/company-management/internal/transport"
)

var _ = Describe("Project Handler Integration", func() {
	var handler *project.Handler

	BeforeEach(func() {
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(
			&datamodel.Department{},
			&datamodel.Employee{},
			&datamodel.Project{},
		)
		Expect(err).NotTo(HaveOccurred())

		repo := projectPostgres.NewProjectRepository(db)
		service := project.NewService(repo, slogger)
		handler = project.NewHandler(&transport.BaseHandler{Logger: slogger}, service)
	})

	createProject := func() string {
		req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewBufferString(`{"name":"Platform Migration"}`))
		w := httptest.NewRecorder()
		handler.CreateProject(w, req)
		Expect(w.Code).To(Equal(http.StatusOK))

		var response transport.WebResponse
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response.Message).To(Equal("Project created"))
		return response.Data.(map[string]interface{})["id"].(string)
	}

	It("should answer the list with the found message", func() {
		createProject()

		req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
		w := httptest.NewRecorder()
		handler.GetProjects(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var response transport.WebResponse
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response.Status).To(Equal("success"))
		Expect(response.Message).To(Equal("Projects found"))
	})

	It("should answer a single lookup with the found message", func() {
		id := createProject()

		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		req := httptest.NewRequest(http.MethodGet, "/api/projects/"+id, nil)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
		w := httptest.NewRecorder()
		handler.GetProject(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))

		var response transport.WebResponse
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response.Message).To(Equal("Project found"))

		data := response.Data.(map[string]interface{})
		Expect(data["name"]).To(Equal("Platform Migration"))
	})
})
