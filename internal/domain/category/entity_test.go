package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	c, err := NewCategory("  Fiction ", "novels")
	require.NoError(t, err)
	assert.Equal(t, "Fiction", c.Name)

	_, err = NewCategory("   ", "")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestCategoryUpdate_KeepsNameWhenBlank(t *testing.T) {
	c, err := NewCategory("Fiction", "novels")
	require.NoError(t, err)

	c.Update("", "long-form prose")
	assert.Equal(t, "Fiction", c.Name)
	assert.Equal(t, "long-form prose", c.Description)
}
