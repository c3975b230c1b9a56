package action

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"backoffice-api/apperr"
	"backoffice-api/models"
	"backoffice-api/policy"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	return NewRegistry(zerolog.Nop())
}

func actorWith(role models.Role) *models.Actor {
	return &models.Actor{ID: 1, Role: role, Active: true}
}

func okHandler(called *bool) HandlerFunc {
	return func(ctx context.Context, actor *models.Actor, input any) (any, error) {
		*called = true
		return "done", nil
	}
}

func TestRoleClassMatrix(t *testing.T) {
	reg := newTestRegistry()

	classes := []policy.Class{policy.ClassRead, policy.ClassWrite, policy.ClassDelete, policy.ClassAdmin, policy.ClassSuperAdmin}
	allowed := map[models.Role]map[policy.Class]bool{
		models.RoleViewer:     {policy.ClassRead: true},
		models.RoleEditor:     {policy.ClassRead: true, policy.ClassWrite: true},
		models.RoleAdmin:      {policy.ClassRead: true, policy.ClassWrite: true, policy.ClassDelete: true, policy.ClassAdmin: true},
		models.RoleSuperAdmin: {policy.ClassRead: true, policy.ClassWrite: true, policy.ClassDelete: true, policy.ClassAdmin: true, policy.ClassSuperAdmin: true},
	}

	for role, permitted := range allowed {
		for _, class := range classes {
			called := false
			act := reg.Register(Config{Class: class, Handler: okHandler(&called)})
			res := act.Invoke(context.Background(), actorWith(role), nil)

			if permitted[class] {
				assert.True(t, res.OK(), "role=%s class=%s should pass", role, class)
				assert.True(t, called, "role=%s class=%s handler should run", role, class)
			} else {
				assert.False(t, res.OK(), "role=%s class=%s should be rejected", role, class)
				assert.Equal(t, apperr.KindForbidden, res.Kind())
				assert.False(t, called, "role=%s class=%s handler must not run", role, class)
			}
		}
	}
}

func TestAnonymousRejectedBeforeHandler(t *testing.T) {
	reg := newTestRegistry()

	for _, class := range []policy.Class{policy.ClassRead, policy.ClassWrite, policy.ClassDelete, policy.ClassAdmin, policy.ClassSuperAdmin} {
		called := false
		act := reg.Register(Config{Class: class, Handler: okHandler(&called)})
		res := act.Invoke(context.Background(), nil, nil)

		assert.False(t, res.OK(), "class=%s", class)
		assert.Equal(t, apperr.KindAuthRequired, res.Kind(), "class=%s", class)
		assert.False(t, called, "class=%s handler must not run for anonymous caller", class)
	}
}

func TestPublicActionAllowsAnonymous(t *testing.T) {
	reg := newTestRegistry()
	called := false
	act := reg.Public(nil, okHandler(&called))

	res := act.Invoke(context.Background(), nil, nil)
	require.True(t, res.OK())
	assert.True(t, called)
	assert.Equal(t, "done", res.Data)
}

func TestAuthCheckedBeforeInput(t *testing.T) {
	reg := newTestRegistry()
	bound := false
	act := reg.Write(func() any { return new(models.CreateTagRequest) }, okHandler(new(bool)))

	// The bind func records whether the payload was ever examined.
	res := act.Invoke(context.Background(), actorWith(models.RoleViewer), func(dst any) error {
		bound = true
		return nil
	})

	assert.Equal(t, apperr.KindForbidden, res.Kind())
	assert.False(t, bound, "input must not be touched when the role check fails")
}

func TestValidationFailureShortCircuits(t *testing.T) {
	reg := newTestRegistry()
	called := false
	act := reg.Write(func() any { return new(models.CreateTagRequest) },
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			called = true
			return nil, nil
		})

	res := act.Invoke(context.Background(), actorWith(models.RoleEditor), func(dst any) error {
		return json.Unmarshal([]byte(`{"name":""}`), dst)
	})

	assert.False(t, res.OK())
	assert.Equal(t, apperr.KindValidation, res.Kind())
	assert.False(t, called, "handler must not run on validation failure")
	assert.Contains(t, res.ValidationErrors, "name")
}

func TestBindFailureIsValidationError(t *testing.T) {
	reg := newTestRegistry()
	act := reg.Write(func() any { return new(models.CreateTagRequest) }, okHandler(new(bool)))

	res := act.Invoke(context.Background(), actorWith(models.RoleEditor), func(dst any) error {
		return errors.New("unexpected EOF")
	})

	assert.Equal(t, apperr.KindValidation, res.Kind())
	assert.Contains(t, res.ValidationErrors, "_body")
}

func TestValidInputReachesHandler(t *testing.T) {
	reg := newTestRegistry()
	var got *models.CreateTagRequest
	act := reg.Write(func() any { return new(models.CreateTagRequest) },
		func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			got = input.(*models.CreateTagRequest)
			return got.Name, nil
		})

	res := act.Invoke(context.Background(), actorWith(models.RoleEditor), func(dst any) error {
		return json.Unmarshal([]byte(`{"name":"innovation"}`), dst)
	})

	require.True(t, res.OK())
	require.NotNil(t, got)
	assert.Equal(t, "innovation", got.Name)
	assert.Equal(t, "innovation", res.Data)
}

func TestExpectedErrorsKeepTheirMessage(t *testing.T) {
	reg := newTestRegistry()

	cases := []struct {
		err  error
		kind apperr.Kind
		msg  string
	}{
		{apperr.Conflict("slug already exists"), apperr.KindConflict, "slug already exists"},
		{apperr.NotFound("post not found"), apperr.KindNotFound, "post not found"},
		{apperr.Forbidden("access denied"), apperr.KindForbidden, "access denied"},
	}

	for _, tc := range cases {
		act := reg.Write(nil, func(ctx context.Context, actor *models.Actor, input any) (any, error) {
			return nil, tc.err
		})
		res := act.Invoke(context.Background(), actorWith(models.RoleEditor), nil)
		assert.Equal(t, tc.kind, res.Kind())
		assert.Equal(t, tc.msg, res.ServerError)
	}
}

func TestUnexpectedErrorIsMasked(t *testing.T) {
	reg := newTestRegistry()
	act := reg.Write(nil, func(ctx context.Context, actor *models.Actor, input any) (any, error) {
		return nil, errors.New(`pq: duplicate key value violates unique constraint "posts_slug_key"`)
	})

	res := act.Invoke(context.Background(), actorWith(models.RoleAdmin), nil)
	assert.Equal(t, apperr.KindUnexpected, res.Kind())
	assert.NotContains(t, res.ServerError, "pq:", "internal details must not leak")
	assert.NotContains(t, res.ServerError, "constraint")
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	reg := newTestRegistry()
	act := reg.Write(nil, func(ctx context.Context, actor *models.Actor, input any) (any, error) {
		panic("nil map write")
	})

	res := act.Invoke(context.Background(), actorWith(models.RoleAdmin), nil)
	assert.False(t, res.OK())
	assert.Equal(t, apperr.KindUnexpected, res.Kind())
	assert.NotContains(t, res.ServerError, "nil map")
}
