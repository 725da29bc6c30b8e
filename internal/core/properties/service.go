package properties

import (
	"context"
	"fmt"
	"strings"
)

type propertyService struct {
	propertyRepo PropertyRepository
}

// NewPropertyService creates a new property service
func NewPropertyService(propertyRepo PropertyRepository) PropertyService {
	return &propertyService{propertyRepo: propertyRepo}
}

// GetOrCreate returns the property at the given address, creating it on first use.
// Two concurrent first reviews of the same address may race and create two rows;
// the address is intentionally not unique and later lookups return the oldest.
func (s *propertyService) GetOrCreate(ctx context.Context, address, city, propertyType string) (*Property, error) {
	address = strings.TrimSpace(address)
	city = strings.TrimSpace(city)

	if address == "" {
		return nil, fmt.Errorf("address is required")
	}
	if !ValidType(propertyType) {
		return nil, &InvalidPropertyTypeError{PropertyType: propertyType}
	}

	existing, err := s.propertyRepo.GetByAddress(ctx, address)
	if err == nil {
		return existing, nil
	}
	if err != ErrPropertyNotFound {
		return nil, err
	}

	return s.propertyRepo.Create(ctx, &Property{
		Address:      address,
		City:         city,
		PropertyType: propertyType,
	})
}

func (s *propertyService) ListProperties(ctx context.Context) ([]*PropertySummary, error) {
	return s.propertyRepo.List(ctx)
}

func (s *propertyService) GetProperty(ctx context.Context, id int64) (*PropertySummary, error) {
	if id <= 0 {
		return nil, ErrPropertyNotFound
	}
	return s.propertyRepo.GetSummary(ctx, id)
}
