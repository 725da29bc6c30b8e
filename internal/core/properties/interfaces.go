package properties

import "context"

// PropertyRepository defines the interface for property data persistence
type PropertyRepository interface {
	Create(ctx context.Context, property *Property) (*Property, error)
	GetByID(ctx context.Context, id int64) (*Property, error)

	// GetByAddress performs an exact address match.
	// Returns ErrPropertyNotFound when no property has that address.
	GetByAddress(ctx context.Context, address string) (*Property, error)

	// List returns all properties, newest first, with review aggregates.
	List(ctx context.Context) ([]*PropertySummary, error)

	// GetSummary returns one property with its review aggregates.
	GetSummary(ctx context.Context, id int64) (*PropertySummary, error)
}

// PropertyService defines the interface for property business logic
type PropertyService interface {
	// GetOrCreate returns the property with the given address, creating it
	// first if no review has mentioned that address before.
	GetOrCreate(ctx context.Context, address, city, propertyType string) (*Property, error)

	ListProperties(ctx context.Context) ([]*PropertySummary, error)
	GetProperty(ctx context.Context, id int64) (*PropertySummary, error)
}
