// Package statusref resolves quote/order statuses against reference data
// fetched from the backend. No status id is compiled in: the default and
// converted statuses are found by name, and an empty list is reported as
// unresolved rather than papered over with a sentinel id.
package statusref

import (
	"strings"

	"fabshop-backend/internal/models"
)

const (
	defaultStatusName   = "new"
	convertedStatusName = "converted"
)

type Resolver struct {
	statuses []models.StatusRef
}

func NewResolver(statuses []models.StatusRef) *Resolver {
	return &Resolver{statuses: statuses}
}

// DefaultStatusID returns the id for new records: the status named "new" if
// present, otherwise the first entry. ok is false when no reference data has
// loaded, in which case nothing may be submitted.
func (r *Resolver) DefaultStatusID() (int64, bool) {
	for _, s := range r.statuses {
		if strings.EqualFold(s.Name, defaultStatusName) {
			return s.ID, true
		}
	}
	if len(r.statuses) > 0 {
		return r.statuses[0].ID, true
	}
	return 0, false
}

// ConvertedStatusID returns the id of the "converted" status. ok is false
// when reference data lacks it, in which case conversion is unavailable.
func (r *Resolver) ConvertedStatusID() (int64, bool) {
	for _, s := range r.statuses {
		if strings.EqualFold(s.Name, convertedStatusName) {
			return s.ID, true
		}
	}
	return 0, false
}

// IsReadOnly reports whether a quote in the given status is locked. Converted
// quotes are immutable; edit submissions against them are dropped as no-ops.
func (r *Resolver) IsReadOnly(statusID int64) bool {
	converted, ok := r.ConvertedStatusID()
	return ok && statusID == converted
}

// Selectable returns the statuses a user may assign directly. Conversion is a
// system transition, so the converted status never appears in the edit form.
func (r *Resolver) Selectable() []models.StatusRef {
	selectable := make([]models.StatusRef, 0, len(r.statuses))
	for _, s := range r.statuses {
		if strings.EqualFold(s.Name, convertedStatusName) {
			continue
		}
		selectable = append(selectable, s)
	}
	return selectable
}

// Contains reports whether the given id exists in the reference list.
func (r *Resolver) Contains(statusID int64) bool {
	for _, s := range r.statuses {
		if s.ID == statusID {
			return true
		}
	}
	return false
}

// Name returns the display name for a status id, or "Unknown" when the id is
// not in the reference list.
func (r *Resolver) Name(statusID int64) string {
	for _, s := range r.statuses {
		if s.ID == statusID {
			return s.Name
		}
	}
	return "Unknown"
}
