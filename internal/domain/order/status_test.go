package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"PAID", StatusPaid},
		{"paid", StatusPaid},
		{" Processing ", StatusProcessing},
		{"cancelled", StatusCancelled},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseStatus("not_a_status")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Contains(t, err.Error(), "not_a_status")
}

func TestStatusMachine_PermissiveAcceptsAnything(t *testing.T) {
	m := NewStatusMachine(false)
	o := &Order{Status: StatusDelivered}

	require.NoError(t, m.Apply(o, StatusNew))
	assert.Equal(t, StatusNew, o.Status)
}

func TestStatusMachine_Strict(t *testing.T) {
	m := NewStatusMachine(true)

	tests := []struct {
		from, to Status
		ok       bool
	}{
		{StatusNew, StatusPaid, true},
		{StatusPaid, StatusProcessing, true},
		{StatusProcessing, StatusDelivered, true},
		{StatusNew, StatusCancelled, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusPaid, StatusPaid, true},
		{StatusDelivered, StatusDelivered, true},
		{StatusNew, StatusDelivered, false},
		{StatusDelivered, StatusNew, false},
		{StatusCancelled, StatusPaid, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusPaid, StatusNew, false},
	}
	for _, tt := range tests {
		o := &Order{Status: tt.from}
		err := m.Apply(o, tt.to)
		if tt.ok {
			assert.NoError(t, err, "%s -> %s", tt.from, tt.to)
			assert.Equal(t, tt.to, o.Status)
		} else {
			assert.ErrorIs(t, err, ErrInvalidStatusTransition, "%s -> %s", tt.from, tt.to)
			assert.Equal(t, tt.from, o.Status)
		}
	}
}
