// Package moderation implements the approval lifecycle shared by tags,
// tutorials and tracks: records are submitted pending, an admin toggles
// approval, and the submitter may withdraw a record only while it is
// still pending. The three entities delegate here instead of each
// re-deriving the rules.
package moderation

import "github.com/codetrail/codetrail/apperr"

// Resource is the view of a record the workflow needs.
type Resource interface {
	// OwnerID is the submitter's user id, set at creation and immutable.
	OwnerID() uint
	// Approved reports the current approval flag.
	Approved() bool
}

// NextApproval returns the approval flag after an admin toggle. The
// caller must pass a freshly read value; the toggle always inverts
// current state rather than setting a target.
func NextApproval(current bool) bool {
	return !current
}

// CancelCheck decides whether requester may withdraw the record.
// The checks run in a fixed order: ownership before approval state, so
// a non-owner acting on an approved record sees the ownership error.
// Not-found is the caller's responsibility and precedes both.
func CancelCheck(kind string, r Resource, requesterID uint) *apperr.Error {
	if r.OwnerID() != requesterID {
		return apperr.Forbidden("Only " + lower(kind) + " owner can cancel request")
	}
	if r.Approved() {
		return apperr.Forbidden(kind + " is approved and cannot be deleted. Contact Admin.")
	}
	return nil
}

func lower(kind string) string {
	if kind == "" {
		return kind
	}
	b := []byte(kind)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
