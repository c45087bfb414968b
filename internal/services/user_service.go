// internal/services/user_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/m-sowraj/alkarahm-admin/internal/models"
	"github.com/m-sowraj/alkarahm-admin/internal/utils"
)

type UserService struct {
	db *gorm.DB
}

type CreateUserRequest struct {
	Name         string              `json:"name" validate:"required,min=2,max=255"`
	Email        string              `json:"email" validate:"required,email"`
	Password     string              `json:"password,omitempty" validate:"omitempty,strong_password"`
	Role         models.UserRole     `json:"role,omitempty"`
	MobileNumber string              `json:"mobile_number,omitempty" validate:"omitempty,max=50"`
	SignInMethod models.SignInMethod `json:"sign_in_method,omitempty"`
}

type UpdateUserRequest struct {
	Name                  string              `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Role                  models.UserRole     `json:"role,omitempty"`
	MobileNumber          string              `json:"mobile_number,omitempty" validate:"omitempty,max=50"`
	SignInMethod          models.SignInMethod `json:"sign_in_method,omitempty"`
	IsNotificationEnabled *bool               `json:"is_notification_enabled,omitempty"`
}

type UserSearchParams struct {
	utils.PaginationParams
	Role         *models.UserRole     `json:"role,omitempty"`
	SignInMethod *models.SignInMethod `json:"sign_in_method,omitempty"`
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) CreateUser(req *CreateUserRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.Role != "" && !req.Role.Valid() {
		return nil, errors.New("invalid role")
	}
	if req.SignInMethod != "" && !req.SignInMethod.Valid() {
		return nil, errors.New("invalid sign-in method")
	}

	var existing int64
	s.db.Model(&models.User{}).Where("email = ?", req.Email).Count(&existing)
	if existing > 0 {
		return nil, errors.New("a user with this email already exists")
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Role:         models.RoleUser,
		MobileNumber: req.MobileNumber,
		SignInMethod: models.SignInMethodEmail,
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.SignInMethod != "" {
		user.SignInMethod = req.SignInMethod
	}

	// Staff-created accounts get a temporary password; federated sign-ins
	// never carry one at all.
	password := req.Password
	if password == "" && user.SignInMethod == models.SignInMethodEmail {
		generated, err := utils.GenerateTemporaryPassword()
		if err != nil {
			return nil, fmt.Errorf("failed to generate temporary password: %w", err)
		}
		password = generated
	}
	if password != "" {
		if err := user.SetPassword(password); err != nil {
			return nil, fmt.Errorf("failed to set password: %w", err)
		}
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &user, nil
}

func (s *UserService) UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Role != "" {
		if !req.Role.Valid() {
			return nil, errors.New("invalid role")
		}
		updates["role"] = req.Role
	}
	if req.MobileNumber != "" {
		updates["mobile_number"] = req.MobileNumber
	}
	if req.SignInMethod != "" {
		if !req.SignInMethod.Valid() {
			return nil, errors.New("invalid sign-in method")
		}
		updates["sign_in_method"] = req.SignInMethod
	}
	if req.IsNotificationEnabled != nil {
		updates["is_notification_enabled"] = *req.IsNotificationEnabled
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	s.db.First(&user, id)
	return &user, nil
}

// SetNotificationEnabled is the single-field toggle from the user list view.
func (s *UserService) SetNotificationEnabled(id uuid.UUID, enabled bool) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Model(&user).Update("is_notification_enabled", enabled).Error; err != nil {
		return nil, fmt.Errorf("failed to update notification flag: %w", err)
	}

	user.IsNotificationEnabled = enabled
	return &user, nil
}

func (s *UserService) DeleteUser(id uuid.UUID) error {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("user not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if user.Role == models.RoleSuperAdmin {
		return errors.New("super admin accounts cannot be deleted")
	}

	if err := s.db.Delete(&user).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

func (s *UserService) SearchUsers(params UserSearchParams) ([]models.User, int64, error) {
	query := s.db.Model(&models.User{})

	if params.Role != nil {
		query = query.Where("role = ?", *params.Role)
	}

	if params.SignInMethod != nil {
		query = query.Where("sign_in_method = ?", *params.SignInMethod)
	}

	query = utils.ApplySearch(query, params.Search, "name", "email", "sign_in_method")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	params.Page = utils.ClampPage(params.Page, total, params.Limit)

	allowedSortFields := []string{"created_at", "updated_at", "name", "email", "role"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch users: %w", err)
	}

	return users, total, nil
}
