package svaddress

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etaddress"
	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etuser"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/errorx"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/logger"
)

// mockAddressRepo 函数字段式地址仓储打桩
type mockAddressRepo struct {
	createFn         func(ctx context.Context, address *etaddress.Address) error
	getByIDFn        func(ctx context.Context, addressID string) (*etaddress.Address, error)
	getByIDAndUserFn func(ctx context.Context, addressID, userID string) (*etaddress.Address, error)
	listByUserFn     func(ctx context.Context, userID string) ([]*etaddress.Address, error)
	updateFn         func(ctx context.Context, addressID string, updates map[string]interface{}) (*etaddress.Address, error)
	unsetDefaultsFn  func(ctx context.Context, userID, exceptID string) error
}

func (m *mockAddressRepo) Create(ctx context.Context, address *etaddress.Address) error {
	if m.createFn != nil {
		return m.createFn(ctx, address)
	}
	return nil
}

func (m *mockAddressRepo) GetByID(ctx context.Context, addressID string) (*etaddress.Address, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, addressID)
	}
	return nil, errorx.ErrAddressNotFound
}

func (m *mockAddressRepo) GetByIDAndUser(ctx context.Context, addressID, userID string) (*etaddress.Address, error) {
	if m.getByIDAndUserFn != nil {
		return m.getByIDAndUserFn(ctx, addressID, userID)
	}
	return nil, errorx.ErrAddressNotFound
}

func (m *mockAddressRepo) ListByUser(ctx context.Context, userID string) ([]*etaddress.Address, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockAddressRepo) Update(ctx context.Context, addressID string, updates map[string]interface{}) (*etaddress.Address, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, addressID, updates)
	}
	return nil, errorx.ErrAddressNotFound
}

func (m *mockAddressRepo) UnsetDefaults(ctx context.Context, userID, exceptID string) error {
	if m.unsetDefaultsFn != nil {
		return m.unsetDefaultsFn(ctx, userID, exceptID)
	}
	return nil
}

// mockUserRepo 函数字段式用户仓储打桩
type mockUserRepo struct {
	existsFn func(ctx context.Context, userID string) (bool, error)
}

func (m *mockUserRepo) Create(context.Context, *etuser.User) error { return nil }

func (m *mockUserRepo) GetByID(context.Context, string) (*etuser.User, error) {
	return nil, errorx.ErrUserNotFound
}

func (m *mockUserRepo) GetByMobile(context.Context, string) (*etuser.User, error) {
	return nil, errorx.ErrUserNotFound
}

func (m *mockUserRepo) Exists(ctx context.Context, userID string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, userID)
	}
	return false, nil
}

func (m *mockUserRepo) Update(context.Context, string, string, string) (*etuser.User, error) {
	return nil, errorx.ErrUserNotFound
}

func newTestAddressService(addressRepo *mockAddressRepo, userRepo *mockUserRepo) *AddressService {
	return NewAddressService(addressRepo, userRepo, logger.NewNopLogger())
}

func TestCreateAddressUnknownUser(t *testing.T) {
	created := false
	addressRepo := &mockAddressRepo{
		createFn: func(_ context.Context, _ *etaddress.Address) error {
			created = true
			return nil
		},
	}
	userRepo := &mockUserRepo{
		existsFn: func(_ context.Context, _ string) (bool, error) {
			return false, nil
		},
	}
	svc := newTestAddressService(addressRepo, userRepo)

	_, err := svc.CreateAddress(context.Background(), &CreateAddressParams{
		UserID:       "no-such-user",
		AddressLine1: "12 MG Road",
		City:         "Jaipur",
		State:        "Rajasthan",
		PostalCode:   "302001",
	})
	assert.ErrorIs(t, err, errorx.ErrUserNotFound)
	assert.False(t, created, "不存在的用户不应落库地址")
}

func TestCreateAddressPersists(t *testing.T) {
	var saved *etaddress.Address
	unsetCalled := false
	addressRepo := &mockAddressRepo{
		createFn: func(_ context.Context, address *etaddress.Address) error {
			saved = address
			return nil
		},
		unsetDefaultsFn: func(_ context.Context, _, _ string) error {
			unsetCalled = true
			return nil
		},
	}
	userRepo := &mockUserRepo{
		existsFn: func(_ context.Context, userID string) (bool, error) {
			assert.Equal(t, "user-1", userID)
			return true, nil
		},
	}
	svc := newTestAddressService(addressRepo, userRepo)

	addr, err := svc.CreateAddress(context.Background(), &CreateAddressParams{
		UserID:       "user-1",
		AddressLine1: "12 MG Road",
		City:         "Jaipur",
		State:        "Rajasthan",
		PostalCode:   "302001",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "user-1", saved.UserID)
	assert.Equal(t, saved.ID, addr.ID)
	assert.False(t, unsetCalled, "非默认地址不应触碰其它默认地址")
}

func TestCreateDefaultAddressUnsetsOthers(t *testing.T) {
	var unsetUserID, unsetExceptID string
	addressRepo := &mockAddressRepo{
		unsetDefaultsFn: func(_ context.Context, userID, exceptID string) error {
			unsetUserID = userID
			unsetExceptID = exceptID
			return nil
		},
	}
	userRepo := &mockUserRepo{
		existsFn: func(_ context.Context, _ string) (bool, error) {
			return true, nil
		},
	}
	svc := newTestAddressService(addressRepo, userRepo)

	addr, err := svc.CreateAddress(context.Background(), &CreateAddressParams{
		UserID:       "user-1",
		AddressLine1: "12 MG Road",
		City:         "Jaipur",
		State:        "Rajasthan",
		PostalCode:   "302001",
		IsDefault:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", unsetUserID)
	assert.Equal(t, addr.ID, unsetExceptID)
	assert.True(t, addr.IsDefault)
}

func TestUpdateAddressDefaultUnsetsOthers(t *testing.T) {
	existing := &etaddress.Address{ID: "addr-1", UserID: "user-1"}
	unsetCalled := false
	addressRepo := &mockAddressRepo{
		getByIDFn: func(_ context.Context, addressID string) (*etaddress.Address, error) {
			assert.Equal(t, "addr-1", addressID)
			return existing, nil
		},
		unsetDefaultsFn: func(_ context.Context, userID, exceptID string) error {
			unsetCalled = true
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, "addr-1", exceptID)
			return nil
		},
		updateFn: func(_ context.Context, addressID string, updates map[string]interface{}) (*etaddress.Address, error) {
			existing.IsDefault = true
			return existing, nil
		},
	}
	svc := newTestAddressService(addressRepo, &mockUserRepo{})

	addr, err := svc.UpdateAddress(context.Background(), "addr-1", map[string]interface{}{"is_default": true})
	require.NoError(t, err)
	assert.True(t, unsetCalled)
	assert.True(t, addr.IsDefault)
}
