package services

import (
	"errors"
	"fmt"

	"github.com/canteen-ops/meal-tracker/models"
	"gorm.io/gorm"
)

// CustomerAlternate is one row of the structured listing: a customer and
// their alternate's name, empty when no alternate is assigned.
type CustomerAlternate struct {
	CustomerName  string `json:"customer_name"`
	AlternateName string `json:"alternate_name,omitempty"`
}

// AlternateService manages substitute pairings between employees.
type AlternateService struct {
	DB *gorm.DB
}

func NewAlternateService(db *gorm.DB) *AlternateService {
	return &AlternateService{DB: db}
}

// AddAlternate pairs a customer with a substitute. Both codes must resolve
// to existing employees; an unresolved endpoint rejects with
// ErrUnknownAlternateEndpoint rather than silently inserting nothing. A
// customer who already has an alternate, or a substitute already backing
// someone up, rejects with ErrAlternateTaken.
func (as *AlternateService) AddAlternate(customerCode, alternateCode string) (*models.Alternate, error) {
	customerID, err := as.resolveEndpoint(customerCode)
	if err != nil {
		return nil, err
	}
	alternateID, err := as.resolveEndpoint(alternateCode)
	if err != nil {
		return nil, err
	}

	var count int64
	err = as.DB.Model(&models.Alternate{}).
		Where("customer_id = ? OR alternate_customer_id = ?", customerID, alternateID).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("check existing pairings: %w", err)
	}
	if count > 0 {
		return nil, ErrAlternateTaken
	}

	alternate := models.Alternate{
		CustomerID:          customerID,
		AlternateCustomerID: alternateID,
	}
	if err := as.DB.Create(&alternate).Error; err != nil {
		return nil, fmt.Errorf("insert alternate pairing: %w", err)
	}
	return &alternate, nil
}

// ListCustomersWithAlternates returns every customer with their alternate's
// name where one is assigned, ordered by customer name. This is a direct
// structured query; nothing is reconstructed from display text.
func (as *AlternateService) ListCustomersWithAlternates() ([]CustomerAlternate, error) {
	var rows []CustomerAlternate
	err := as.DB.Model(&models.Customer{}).
		Select("customers.name AS customer_name, COALESCE(subs.name, '') AS alternate_name").
		Joins("LEFT JOIN alternates ON alternates.customer_id = customers.id").
		Joins("LEFT JOIN customers AS subs ON subs.id = alternates.alternate_customer_id").
		Order("customers.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list customers with alternates: %w", err)
	}
	return rows, nil
}

func (as *AlternateService) resolveEndpoint(code string) (uint, error) {
	var customer models.Customer
	err := as.DB.Select("id").Where("code = ?", code).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: %s", ErrUnknownAlternateEndpoint, code)
	}
	if err != nil {
		return 0, fmt.Errorf("resolve alternate endpoint %s: %w", code, err)
	}
	return customer.ID, nil
}
