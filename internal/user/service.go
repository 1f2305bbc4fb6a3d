package user

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	internal "github.com/frahmantamala/company-management/internal"
	"github.com/frahmantamala/company-management/internal/core/common/validation"
	"github.com/frahmantamala/company-management/internal/core/datamodel"
)

type Repository interface {
	GetByID(id string) (*datamodel.User, error)
	GetByUsername(username string) (*datamodel.User, error)
	ExistsByUsername(username string) (bool, error)
	ExistsByEmail(email string) (bool, error)
	Create(u *datamodel.User) error
	Update(id string, fields map[string]interface{}) (*datamodel.User, error)
}

type Service struct {
	repo       Repository
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo Repository, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// CreateUser registers a user. Username is checked before email; the
// first conflict wins and the second check never runs.
func (s *Service) CreateUser(dto CreateUserDTO) (*UserResponse, error) {
	s.logger.Debug("createUser", "request", dto)

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if err := s.mustBeFree("username", dto.Username); err != nil {
		return nil, err
	}
	if err := s.mustBeFree("email", dto.Email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	u := &datamodel.User{
		Username:     dto.Username,
		Email:        dto.Email,
		Name:         dto.Name,
		PasswordHash: string(hash),
		Role:         dto.Role,
	}

	if err := s.repo.Create(u); err != nil {
		s.logger.Error("failed to create user", "error", err, "username", dto.Username)
		return nil, err
	}

	return FromDataModel(u), nil
}

func (s *Service) GetUserByID(id string) (*UserResponse, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return FromDataModel(u), nil
}

func (s *Service) UpdateUser(dto UpdateUserDTO) (*UserResponse, error) {
	s.logger.Debug("updateUser", "request", dto)

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	// existence of the target precedes any uniqueness check
	if _, err := s.repo.GetByID(dto.ID); err != nil {
		return nil, err
	}

	if dto.Username != nil {
		if err := s.mustBeFree("username", *dto.Username); err != nil {
			return nil, err
		}
	}
	if dto.Email != nil {
		if err := s.mustBeFree("email", *dto.Email); err != nil {
			return nil, err
		}
	}

	fields := map[string]interface{}{}
	if dto.Username != nil {
		fields["username"] = *dto.Username
	}
	if dto.Email != nil {
		fields["email"] = *dto.Email
	}
	if dto.Name != nil {
		fields["name"] = *dto.Name
	}
	if dto.Role != nil {
		fields["role"] = *dto.Role
	}
	if dto.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*dto.Password), s.bcryptCost)
		if err != nil {
			s.logger.Error("failed to hash password", "error", err)
			return nil, internal.NewInternalError("failed to hash password", err)
		}
		fields["password"] = string(hash)
	}

	u, err := s.repo.Update(dto.ID, fields)
	if err != nil {
		s.logger.Error("failed to update user", "error", err, "id", dto.ID)
		return nil, err
	}

	return FromDataModel(u), nil
}

func (s *Service) mustBeFree(property, value string) error {
	var (
		taken bool
		err   error
	)
	switch property {
	case "username":
		taken, err = s.repo.ExistsByUsername(value)
	case "email":
		taken, err = s.repo.ExistsByEmail(value)
	}
	if err != nil {
		s.logger.Error("failed to check user uniqueness", "error", err, "property", property)
		return err
	}
	if taken {
		if property == "username" {
			return internal.ErrUsernameExists
		}
		return internal.ErrUserEmailExists
	}
	return nil
}

func validateID(id string) *internal.AppError {
	v := validation.NewValidator()
	v.Field("id", id).Required().UUID()
	return v.Validate()
}
