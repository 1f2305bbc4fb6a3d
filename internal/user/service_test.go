package user_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	internal "github.com/frahmantamala/company-management/internal"
	"github.com/frahmantamala/company-management/internal/core/datamodel"
	"github.com/frahmantamala/company-management/internal/user"
)

func TestUserService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Service Suite")
}

// MockRepository implements user.Repository for testing
type MockRepository struct {
	users      map[string]*datamodel.User
	shouldFail bool
	failError  error

	uniquenessChecks []string
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		users: make(map[string]*datamodel.User),
	}
}

func (m *MockRepository) GetByID(id string) (*datamodel.User, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	u, exists := m.users[id]
	if !exists {
		return nil, internal.ErrUserNotFound
	}
	return u, nil
}

func (m *MockRepository) GetByUsername(username string) (*datamodel.User, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, internal.ErrUserNotFound
}

func (m *MockRepository) ExistsByUsername(username string) (bool, error) {
	if m.shouldFail {
		return false, m.failError
	}
	m.uniquenessChecks = append(m.uniquenessChecks, "username")
	for _, u := range m.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockRepository) ExistsByEmail(email string) (bool, error) {
	if m.shouldFail {
		return false, m.failError
	}
	m.uniquenessChecks = append(m.uniquenessChecks, "email")
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockRepository) Create(u *datamodel.User) error {
	if m.shouldFail {
		return m.failError
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	m.users[u.ID] = u
	return nil
}

func (m *MockRepository) Update(id string, fields map[string]interface{}) (*datamodel.User, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	u, exists := m.users[id]
	if !exists {
		return nil, internal.ErrUserNotFound
	}
	if username, ok := fields["username"].(string); ok {
		u.Username = username
	}
	if email, ok := fields["email"].(string); ok {
		u.Email = email
	}
	if name, ok := fields["name"].(string); ok {
		u.Name = name
	}
	if role, ok := fields["role"].(string); ok {
		u.Role = role
	}
	if password, ok := fields["password"].(string); ok {
		u.PasswordHash = password
	}
	return u, nil
}

func (m *MockRepository) SetShouldFail(shouldFail bool, err error) {
	m.shouldFail = shouldFail
	m.failError = err
}

var _ = Describe("User Service", func() {
	var (
		mockRepo *MockRepository
		service  *user.Service
		logger   *slog.Logger
	)

	validCreate := func() user.CreateUserDTO {
		return user.CreateUserDTO{
			Username: "fadhil",
			Password: "secret123",
			Name:     "Fadhil",
			Email:    "fadhil@mail.com",
			Role:     "Admin",
		}
	}

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = user.NewService(mockRepo, bcrypt.MinCost, logger)
	})

	Describe("CreateUser", func() {
		Context("with a valid request", func() {
			It("should create the user and never expose the password", func() {
				result, err := service.CreateUser(validCreate())
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).NotTo(BeEmpty())
				Expect(result.Username).To(Equal("fadhil"))
				Expect(result.Role).To(Equal("Admin"))
			})

			It("should store a bcrypt hash, not the plain password", func() {
				result, err := service.CreateUser(validCreate())
				Expect(err).NotTo(HaveOccurred())

				stored := mockRepo.users[result.ID]
				Expect(stored.PasswordHash).NotTo(Equal("secret123"))
				Expect(bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123"))).To(Succeed())
			})
		})

		Context("when the username is taken", func() {
			BeforeEach(func() {
				_, err := service.CreateUser(validCreate())
				Expect(err).NotTo(HaveOccurred())
				mockRepo.uniquenessChecks = nil
			})

			It("should report the username conflict and skip the email check", func() {
				dto := validCreate()
				dto.Email = "other@mail.com"
				_, err := service.CreateUser(dto)
				Expect(err).To(MatchError(internal.ErrUsernameExists))
				Expect(mockRepo.uniquenessChecks).To(Equal([]string{"username"}))

				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.StatusCode).To(Equal(400))
				Expect(appErr.Message).To(Equal("User username already exists"))
			})
		})

		Context("when the email is taken", func() {
			BeforeEach(func() {
				_, err := service.CreateUser(validCreate())
				Expect(err).NotTo(HaveOccurred())
			})

			It("should report the email conflict", func() {
				dto := validCreate()
				dto.Username = "someone"
				_, err := service.CreateUser(dto)
				Expect(err).To(MatchError(internal.ErrUserEmailExists))

				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.Message).To(Equal("User email already exists"))
			})
		})

		Context("when the password is too short", func() {
			It("should return a validation error", func() {
				dto := validCreate()
				dto.Password = "short"
				_, err := service.CreateUser(dto)
				Expect(err).To(HaveOccurred())

				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.StatusCode).To(Equal(400))
			})
		})

		Context("when the role is not accepted", func() {
			It("should return a validation error", func() {
				dto := validCreate()
				dto.Role = "Root"
				_, err := service.CreateUser(dto)
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("GetUserByID", func() {
		Context("when the user does not exist", func() {
			It("should return a not found error", func() {
				_, err := service.GetUserByID(uuid.NewString())
				Expect(err).To(MatchError(internal.ErrUserNotFound))

				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.StatusCode).To(Equal(404))
				Expect(appErr.Message).To(Equal("User not found"))
			})
		})

		Context("when the user exists", func() {
			It("should return its projection", func() {
				created, err := service.CreateUser(validCreate())
				Expect(err).NotTo(HaveOccurred())

				result, err := service.GetUserByID(created.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Username).To(Equal("fadhil"))
			})
		})
	})

	Describe("UpdateUser", func() {
		var id string

		BeforeEach(func() {
			created, err := service.CreateUser(validCreate())
			Expect(err).NotTo(HaveOccurred())
			id = created.ID
		})

		Context("when the target does not exist", func() {
			It("should return not found before any uniqueness check", func() {
				username := "fadhil"
				mockRepo.uniquenessChecks = nil
				_, err := service.UpdateUser(user.UpdateUserDTO{ID: uuid.NewString(), Username: &username})
				Expect(err).To(MatchError(internal.ErrUserNotFound))
				Expect(mockRepo.uniquenessChecks).To(BeEmpty())
			})
		})

		Context("when changing the password", func() {
			It("should store a new bcrypt hash", func() {
				password := "newsecret"
				_, err := service.UpdateUser(user.UpdateUserDTO{ID: id, Password: &password})
				Expect(err).NotTo(HaveOccurred())

				stored := mockRepo.users[id]
				Expect(bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newsecret"))).To(Succeed())
			})
		})

		Context("when only the name changes", func() {
			It("should not run any uniqueness check", func() {
				name := "Renamed"
				mockRepo.uniquenessChecks = nil
				result, err := service.UpdateUser(user.UpdateUserDTO{ID: id, Name: &name})
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Name).To(Equal("Renamed"))
				Expect(mockRepo.uniquenessChecks).To(BeEmpty())
			})
		})
	})
})
