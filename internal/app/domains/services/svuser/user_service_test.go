package svuser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwikyankit/qwiky-backend/internal/app/domains/entity/etuser"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/errorx"
	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/logger"
)

// mockModule 函数字段式用户模块打桩
type mockModule struct {
	createUserFn      func(ctx context.Context, user *etuser.User) error
	getUserFn         func(ctx context.Context, userID string) (*etuser.User, error)
	getUserByMobileFn func(ctx context.Context, mobile string) (*etuser.User, error)
	updateUserFn      func(ctx context.Context, userID, name, email string) (*etuser.User, error)
}

func (m *mockModule) CreateUser(ctx context.Context, user *etuser.User) error {
	return m.createUserFn(ctx, user)
}

func (m *mockModule) GetUser(ctx context.Context, userID string) (*etuser.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockModule) GetUserByMobile(ctx context.Context, mobile string) (*etuser.User, error) {
	return m.getUserByMobileFn(ctx, mobile)
}

func (m *mockModule) UpdateUser(ctx context.Context, userID, name, email string) (*etuser.User, error) {
	return m.updateUserFn(ctx, userID, name, email)
}

func TestSignupCreatesNewUser(t *testing.T) {
	var created *etuser.User
	module := &mockModule{
		getUserByMobileFn: func(_ context.Context, _ string) (*etuser.User, error) {
			return nil, errorx.ErrUserNotFound
		},
		createUserFn: func(_ context.Context, user *etuser.User) error {
			created = user
			return nil
		},
	}
	svc := NewUserService(module, logger.NewNopLogger())

	result, err := svc.Signup(context.Background(), "9876543210", "Ankit", "ankit@example.com")
	require.NoError(t, err)
	assert.False(t, result.IsExisting)
	require.NotNil(t, created)
	assert.Equal(t, "9876543210", created.Mobile)
	assert.NotEmpty(t, created.ID)
}

// 手机号重复注册返回既有用户而非报错
func TestSignupReturnsExistingUser(t *testing.T) {
	existing := &etuser.User{ID: "user-1", Mobile: "9876543210", Name: "Ankit"}
	module := &mockModule{
		getUserByMobileFn: func(_ context.Context, mobile string) (*etuser.User, error) {
			assert.Equal(t, "9876543210", mobile)
			return existing, nil
		},
		createUserFn: func(_ context.Context, _ *etuser.User) error {
			t.Fatal("create should not be called for existing mobile")
			return nil
		},
	}
	svc := NewUserService(module, logger.NewNopLogger())

	result, err := svc.Signup(context.Background(), "9876543210", "Other Name", "")
	require.NoError(t, err)
	assert.True(t, result.IsExisting)
	assert.Equal(t, "user-1", result.User.ID)
	assert.Equal(t, "Ankit", result.User.Name)
}

func TestSignupEmptyMobile(t *testing.T) {
	module := &mockModule{
		getUserByMobileFn: func(_ context.Context, _ string) (*etuser.User, error) {
			return nil, errorx.ErrUserNotFound
		},
	}
	svc := NewUserService(module, logger.NewNopLogger())

	_, err := svc.Signup(context.Background(), "", "Ankit", "")
	assert.Error(t, err)
}
