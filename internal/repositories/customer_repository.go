package repositories

import (
	"context"
	"errors"
	"fmt"

	"accounts-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrCustomerExists   = errors.New("customer already exists")
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepositoryInterface {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCustomerExists
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).Where("customer_id = ?", id).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}

func (r *customerRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Customer{}).
		Where("customer_id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check customer existence: %w", err)
	}
	return count > 0, nil
}

// Search filters customers by case-insensitive name fragments and returns one
// page ordered by last name then first name. Fragments of MinSearchTermLength
// characters or fewer are ignored.
func (r *customerRepository) Search(ctx context.Context, filters models.CustomerFilters, page, pageSize int) (models.PaginatedResult[models.Customer], error) {
	if err := validatePage(page, pageSize); err != nil {
		return models.PaginatedResult[models.Customer]{}, err
	}

	query := r.db.WithContext(ctx).Model(&models.Customer{})
	like := caseInsensitiveLike(r.db)

	if term, ok := searchTerm(filters.FirstName); ok {
		query = query.Where("first_name "+like+` ? ESCAPE '\'`, containsPattern(term))
	}
	if term, ok := searchTerm(filters.LastName); ok {
		query = query.Where("last_name "+like+` ? ESCAPE '\'`, containsPattern(term))
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return models.PaginatedResult[models.Customer]{}, fmt.Errorf("failed to count customers: %w", err)
	}

	if models.PastLastPage(page, pageSize, total) {
		return models.NewPaginatedResult[models.Customer](page, pageSize, total, nil), nil
	}

	var customers []models.Customer
	if err := query.Session(&gorm.Session{}).
		Order("last_name ASC").Order("first_name ASC").Order("customer_id ASC").
		Offset(models.Offset(page, pageSize)).Limit(pageSize).
		Find(&customers).Error; err != nil {
		return models.PaginatedResult[models.Customer]{}, fmt.Errorf("failed to search customers: %w", err)
	}

	return models.NewPaginatedResult(page, pageSize, total, customers), nil
}
