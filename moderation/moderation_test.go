package moderation

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResource struct {
	owner    uint
	approved bool
}

func (f fakeResource) OwnerID() uint  { return f.owner }
func (f fakeResource) Approved() bool { return f.approved }

func TestNextApproval(t *testing.T) {
	assert.True(t, NextApproval(false))
	assert.False(t, NextApproval(true))
}

func TestCancelCheckOwnerPending(t *testing.T) {
	err := CancelCheck("Track", fakeResource{owner: 1, approved: false}, 1)
	assert.Nil(t, err)
}

func TestCancelCheckNonOwner(t *testing.T) {
	err := CancelCheck("Track", fakeResource{owner: 1, approved: false}, 2)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusForbidden, err.Status())
	assert.Equal(t, "Only track owner can cancel request", err.Message)
}

func TestCancelCheckApprovedOwner(t *testing.T) {
	err := CancelCheck("Tutorial", fakeResource{owner: 1, approved: true}, 1)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusForbidden, err.Status())
	assert.Equal(t, "Tutorial is approved and cannot be deleted. Contact Admin.", err.Message)
}

// A non-owner on an approved record must see the ownership error, not
// the approval error.
func TestCancelCheckOrdering(t *testing.T) {
	err := CancelCheck("Track", fakeResource{owner: 1, approved: true}, 2)
	require.NotNil(t, err)
	assert.Equal(t, "Only track owner can cancel request", err.Message)
}
