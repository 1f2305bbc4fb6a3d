package postgres

import (
	"errors"

	"gorm.io/gorm"

	internal "github.com/frahmantamala/company-management/internal"
	"github.com/frahmantamala/company-management/internal/core/datamodel"
	"github.com/frahmantamala/company-management/internal/department"
)

// DepartmentRepository implements department.Repository using GORM
type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) department.Repository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) GetAll() ([]*datamodel.Department, error) {
	var depts []*datamodel.Department
	err := r.db.Preload("Employees").Find(&depts).Error
	return depts, err
}

func (r *DepartmentRepository) GetByID(id string) (*datamodel.Department, error) {
	var dept datamodel.Department
	err := r.db.Preload("Employees").Where("id = ?", id).First(&dept).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &dept, nil
}

func (r *DepartmentRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&datamodel.Department{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// Create persists the department and connects the listed employees by
// re-pointing their department_id. The connect list is applied as given;
// an ID that resolves to nothing is the caller's error.
func (r *DepartmentRepository) Create(dept *datamodel.Department, employeeIDs []string) error {
	if err := r.db.Create(dept).Error; err != nil {
		return err
	}

	if err := r.connectEmployees(dept, employeeIDs); err != nil {
		return err
	}

	return r.db.Preload("Employees").Where("id = ?", dept.ID).First(dept).Error
}

func (r *DepartmentRepository) Update(id string, fields map[string]interface{}, employeeIDs []string) (*datamodel.Department, error) {
	dept := &datamodel.Department{ID: id}

	if len(fields) > 0 {
		if err := r.db.Model(dept).Updates(fields).Error; err != nil {
			return nil, err
		}
	}

	if err := r.connectEmployees(dept, employeeIDs); err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

func (r *DepartmentRepository) Delete(id string) error {
	return r.db.Delete(&datamodel.Department{}, "id = ?", id).Error
}

func (r *DepartmentRepository) connectEmployees(dept *datamodel.Department, employeeIDs []string) error {
	if len(employeeIDs) == 0 {
		return nil
	}

	employees := make([]datamodel.Employee, 0, len(employeeIDs))
	for _, employeeID := range employeeIDs {
		employees = append(employees, datamodel.Employee{ID: employeeID})
	}
	return r.db.Model(dept).Association("Employees").Append(&employees)
}
