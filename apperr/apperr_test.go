package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConflict, KindOf(Conflict("slug %q is taken", "innovation")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("post not found")))
	assert.Equal(t, KindForbidden, KindOf(Forbidden("access denied")))
	assert.Equal(t, KindAuthRequired, KindOf(AuthRequired("authentication required")))
	assert.Equal(t, KindUnexpected, KindOf(errors.New("boom")))
	assert.Equal(t, KindUnexpected, KindOf(nil))
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("updating post: %w", Conflict("slug already exists"))
	assert.Equal(t, KindConflict, KindOf(err))
	assert.True(t, IsExpected(err))
	assert.False(t, IsExpected(errors.New("boom")))
}

func TestFromDB(t *testing.T) {
	assert.NoError(t, FromDB(nil, "post"))

	err := FromDB(gorm.ErrRecordNotFound, "post")
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.EqualError(t, err, "post not found")

	err = FromDB(gorm.ErrDuplicatedKey, "category")
	assert.Equal(t, KindConflict, KindOf(err))

	err = FromDB(gorm.ErrForeignKeyViolated, "category")
	assert.Equal(t, KindConflict, KindOf(err))

	cause := errors.New("connection reset")
	err = FromDB(cause, "post")
	assert.Equal(t, KindUnexpected, KindOf(err))
	assert.ErrorIs(t, err, cause)
}
