package properties

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPropertyRepository is a mock implementation of PropertyRepository
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Create(ctx context.Context, property *Property) (*Property, error) {
	args := m.Called(ctx, property)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Property), args.Error(1)
}

func (m *MockPropertyRepository) GetByID(ctx context.Context, id int64) (*Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Property), args.Error(1)
}

func (m *MockPropertyRepository) GetByAddress(ctx context.Context, address string) (*Property, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Property), args.Error(1)
}

func (m *MockPropertyRepository) List(ctx context.Context) ([]*PropertySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*PropertySummary), args.Error(1)
}

func (m *MockPropertyRepository) GetSummary(ctx context.Context, id int64) (*PropertySummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PropertySummary), args.Error(1)
}

func TestGetOrCreate(t *testing.T) {
	t.Run("returns the existing property on an address match", func(t *testing.T) {
		repo := new(MockPropertyRepository)
		existing := &Property{ID: 3, Address: "123 Main Street", City: "Springfield", PropertyType: TypeApartment}
		repo.On("GetByAddress", mock.Anything, "123 Main Street").Return(existing, nil)

		svc := NewPropertyService(repo)
		property, err := svc.GetOrCreate(context.Background(), " 123 Main Street ", "Springfield", TypeApartment)

		require.NoError(t, err)
		assert.Equal(t, existing, property)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("creates a property on first review of an address", func(t *testing.T) {
		repo := new(MockPropertyRepository)
		repo.On("GetByAddress", mock.Anything, "9 New Road").Return(nil, ErrPropertyNotFound)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(p *Property) bool {
			return p.Address == "9 New Road" && p.City == "Springfield" && p.PropertyType == TypeHouse
		})).Return(&Property{ID: 8, Address: "9 New Road"}, nil)

		svc := NewPropertyService(repo)
		property, err := svc.GetOrCreate(context.Background(), "9 New Road", "Springfield", TypeHouse)

		require.NoError(t, err)
		assert.Equal(t, int64(8), property.ID)
		repo.AssertExpectations(t)
	})

	t.Run("rejects unknown property types", func(t *testing.T) {
		svc := NewPropertyService(new(MockPropertyRepository))

		_, err := svc.GetOrCreate(context.Background(), "123 Main Street", "Springfield", "castle")
		var invalid *InvalidPropertyTypeError
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("rejects a blank address", func(t *testing.T) {
		svc := NewPropertyService(new(MockPropertyRepository))

		_, err := svc.GetOrCreate(context.Background(), "   ", "Springfield", TypeRoom)
		assert.Error(t, err)
	})
}

func TestGetProperty(t *testing.T) {
	t.Run("invalid id short-circuits to not found", func(t *testing.T) {
		svc := NewPropertyService(new(MockPropertyRepository))

		_, err := svc.GetProperty(context.Background(), 0)
		assert.ErrorIs(t, err, ErrPropertyNotFound)
	})
}
