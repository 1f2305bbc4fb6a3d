package department_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internal "github.com/frahmantamala/company-management/internal"
	"github.com/frahmantamala/company-management/internal/core/datamodel"
	"github.com/frahmantamala/company-management/internal/department"
)

func TestDepartmentService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Department Service Suite")
}

// MockRepository implements department.Repository for testing
type MockRepository struct {
	departments map[string]*datamodel.Department
	shouldFail  bool
	failError   error

	lastConnected []string
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		departments: make(map[string]*datamodel.Department),
	}
}

func (m *MockRepository) GetAll() ([]*datamodel.Department, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	var result []*datamodel.Department
	for _, d := range m.departments {
		result = append(result, d)
	}
	return result, nil
}

func (m *MockRepository) GetByID(id string) (*datamodel.Department, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	d, exists := m.departments[id]
	if !exists {
		return nil, internal.ErrDepartmentNotFound
	}
	return d, nil
}

func (m *MockRepository) ExistsByName(name string) (bool, error) {
	if m.shouldFail {
		return false, m.failError
	}
	for _, d := range m.departments {
		if d.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockRepository) Create(dept *datamodel.Department, employeeIDs []string) error {
	if m.shouldFail {
		return m.failError
	}
	if dept.ID == "" {
		dept.ID = uuid.NewString()
	}
	for _, id := range employeeIDs {
		dept.Employees = append(dept.Employees, datamodel.Employee{ID: id})
	}
	m.lastConnected = employeeIDs
	m.departments[dept.ID] = dept
	return nil
}

func (m *MockRepository) Update(id string, fields map[string]interface{}, employeeIDs []string) (*datamodel.Department, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	d, exists := m.departments[id]
	if !exists {
		return nil, internal.ErrDepartmentNotFound
	}
	if name, ok := fields["name"].(string); ok {
		d.Name = name
	}
	if desc, ok := fields["description"].(string); ok {
		d.Description = &desc
	}
	for _, eid := range employeeIDs {
		d.Employees = append(d.Employees, datamodel.Employee{ID: eid})
	}
	m.lastConnected = employeeIDs
	return d, nil
}

func (m *MockRepository) Delete(id string) error {
	if m.shouldFail {
		return m.failError
	}
	delete(m.departments, id)
	return nil
}

func (m *MockRepository) SetShouldFail(shouldFail bool, err error) {
	m.shouldFail = shouldFail
	m.failError = err
}

func (m *MockRepository) AddDepartment(d *datamodel.Department) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	m.departments[d.ID] = d
}

var _ = Describe("Department Service", func() {
	var (
		mockRepo *MockRepository
		service  *department.Service
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = department.NewService(mockRepo, logger)
	})

	Describe("CreateDepartment", func() {
		Context("with a valid request", func() {
			It("should create the department and return its projection", func() {
				desc := "Information technology"
				result, err := service.CreateDepartment(department.CreateDepartmentDTO{
					Name:        "IT",
					Description: &desc,
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).NotTo(BeEmpty())
				Expect(result.Name).To(Equal("IT"))
				Expect(*result.Description).To(Equal("Information technology"))
				Expect(result.Employees).NotTo(BeNil())
				Expect(result.Employees).To(HaveLen(0))
			})

			It("should pass the employees connect list through verbatim", func() {
				a := uuid.NewString()
				result, err := service.CreateDepartment(department.CreateDepartmentDTO{
					Name:      "HR",
					Employees: []string{a, a},
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(mockRepo.lastConnected).To(Equal([]string{a, a}))
				Expect(result.Employees).To(HaveLen(2))
			})
		})

		Context("when the name is already taken", func() {
			BeforeEach(func() {
				mockRepo.AddDepartment(&datamodel.Department{Name: "IT"})
			})

			It("should return a conflict error with status 400", func() {
				result, err := service.CreateDepartment(department.CreateDepartmentDTO{Name: "IT"})
				Expect(err).To(MatchError(internal.ErrDepartmentNameExists))
				Expect(result).To(BeNil())

				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.StatusCode).To(Equal(400))
				Expect(appErr.Message).To(Equal("Department name already exists"))
			})
		})

		Context("when the name is not an accepted category", func() {
			It("should return a validation error", func() {
				result, err := service.CreateDepartment(department.CreateDepartmentDTO{Name: "Engineering"})
				Expect(err).To(HaveOccurred())
				Expect(result).To(BeNil())

				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.StatusCode).To(Equal(400))
			})
		})

		Context("when an employee ID is not a UUID", func() {
			It("should return a validation error", func() {
				_, err := service.CreateDepartment(department.CreateDepartmentDTO{
					Name:      "IT",
					Employees: []string{"not-a-uuid"},
				})
				Expect(err).To(HaveOccurred())
			})
		})

		Context("when the repository fails", func() {
			BeforeEach(func() {
				mockRepo.SetShouldFail(true, errors.New("database error"))
			})

			It("should return the error", func() {
				result, err := service.CreateDepartment(department.CreateDepartmentDTO{Name: "IT"})
				Expect(err).To(HaveOccurred())
				Expect(result).To(BeNil())
			})
		})
	})

	Describe("GetDepartments", func() {
		Context("when no departments exist", func() {
			It("should return an empty non-nil slice", func() {
				result, err := service.GetDepartments()
				Expect(err).NotTo(HaveOccurred())
				Expect(result).NotTo(BeNil())
				Expect(result).To(HaveLen(0))
			})
		})

		Context("when departments exist", func() {
			BeforeEach(func() {
				mockRepo.AddDepartment(&datamodel.Department{Name: "IT"})
				mockRepo.AddDepartment(&datamodel.Department{Name: "HR"})
			})

			It("should return every department", func() {
				result, err := service.GetDepartments()
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(HaveLen(2))

				names := make([]string, len(result))
				for i, d := range result {
					names[i] = d.Name
				}
				Expect(names).To(ConsistOf("IT", "HR"))
			})
		})
	})

	Describe("GetDepartmentByID", func() {
		Context("when the department exists", func() {
			var id string

			BeforeEach(func() {
				d := &datamodel.Department{Name: "Sales"}
				mockRepo.AddDepartment(d)
				id = d.ID
			})

			It("should return its projection", func() {
				result, err := service.GetDepartmentByID(id)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Name).To(Equal("Sales"))
			})
		})

		Context("when the department does not exist", func() {
			It("should return a not found error", func() {
				result, err := service.GetDepartmentByID(uuid.NewString())
				Expect(err).To(MatchError(internal.ErrDepartmentNotFound))
				Expect(result).To(BeNil())

				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.StatusCode).To(Equal(404))
				Expect(appErr.Message).To(Equal("Department not found"))
			})
		})

		Context("when the id is not a UUID", func() {
			It("should return a validation error", func() {
				_, err := service.GetDepartmentByID("42")
				Expect(err).To(HaveOccurred())

				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.StatusCode).To(Equal(400))
			})
		})
	})

	Describe("UpdateDepartment", func() {
		var id string

		BeforeEach(func() {
			d := &datamodel.Department{Name: "IT"}
			mockRepo.AddDepartment(d)
			id = d.ID
		})

		Context("when only the description changes", func() {
			It("should not re-check name uniqueness", func() {
				desc := "updated"
				result, err := service.UpdateDepartment(department.UpdateDepartmentDTO{
					ID:          id,
					Description: &desc,
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Name).To(Equal("IT"))
				Expect(*result.Description).To(Equal("updated"))
			})
		})

		Context("when the new name is already taken", func() {
			BeforeEach(func() {
				mockRepo.AddDepartment(&datamodel.Department{Name: "HR"})
			})

			It("should return a conflict error", func() {
				name := "HR"
				_, err := service.UpdateDepartment(department.UpdateDepartmentDTO{ID: id, Name: &name})
				Expect(err).To(MatchError(internal.ErrDepartmentNameExists))
			})
		})

		Context("when the target does not exist", func() {
			It("should return not found before any uniqueness check", func() {
				name := "IT"
				_, err := service.UpdateDepartment(department.UpdateDepartmentDTO{
					ID:   uuid.NewString(),
					Name: &name,
				})
				Expect(err).To(MatchError(internal.ErrDepartmentNotFound))
			})
		})
	})

	Describe("DeleteDepartment", func() {
		var id string

		BeforeEach(func() {
			d := &datamodel.Department{Name: "Marketing"}
			mockRepo.AddDepartment(d)
			id = d.ID
		})

		It("should remove the department and return its last projection", func() {
			result, err := service.DeleteDepartment(id)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Name).To(Equal("Marketing"))

			_, err = service.GetDepartmentByID(id)
			Expect(err).To(MatchError(internal.ErrDepartmentNotFound))
		})

		Context("when the department does not exist", func() {
			It("should return a not found error", func() {
				_, err := service.DeleteDepartment(uuid.NewString())
				Expect(err).To(MatchError(internal.ErrDepartmentNotFound))
			})
		})
	})
})
