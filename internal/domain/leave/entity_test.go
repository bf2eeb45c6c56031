package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusPending, false},
		{StatusPending, Status("ARCHIVED"), false},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusCancelled, false},
		{StatusRejected, StatusApproved, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusApproved, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}
