package filter

import (
	"strings"
	"unicode/utf16"

	"github.com/phrazzld/coursedir-api/internal/domain"
)

// The catalog has no authoritative ownership or location data for colleges.
// The functions below approximate both from free text and are kept
// deliberately simple so their errors are predictable:
//
//   - A name containing "Institute" is treated as government and autonomous.
//     Private institutes with "Institute" in the name are misreported as
//     government (false positive), and government colleges named "College"
//     are reported as private (false negative).
//   - A name containing "University" is treated as autonomous, and as private
//     unless it also contains "Institute".
//   - Anything else is private and non-autonomous.
//   - Location matching is a case-sensitive substring test, so "Delhi"
//     matches "New Delhi" and "North Delhi", and a district that shares a
//     name with another state's city matches both.

const (
	instituteMarker  = "Institute"
	universityMarker = "University"
)

// InferStatuses returns every status the heuristic considers name eligible
// for, in domain.CollegeStatuses order.
func InferStatuses(name string) []domain.CollegeStatus {
	statuses := make([]domain.CollegeStatus, 0, 2)
	for _, s := range domain.CollegeStatuses {
		if MatchesStatus(name, s) {
			statuses = append(statuses, s)
		}
	}
	return statuses
}

// MatchesStatus reports whether a college called name satisfies status
// under the name heuristic. The sentinel matches everything.
func MatchesStatus(name string, status domain.CollegeStatus) bool {
	institute := strings.Contains(name, instituteMarker)
	university := strings.Contains(name, universityMarker)

	switch status {
	case domain.StatusGovernment:
		return institute
	case domain.StatusPrivate:
		return !institute
	case domain.StatusAutonomous:
		return university || institute
	case domain.StatusNonAutonomous:
		return !university && !institute
	default:
		return true
	}
}

// LocationContains reports whether a free-text location mentions place.
// The sentinel matches everything.
func LocationContains(location, place string) bool {
	if domain.IsAll(place) {
		return true
	}
	return strings.Contains(location, place)
}

// CollegeRating derives a stable 3.0 to 4.9 rating from the college name: the
// UTF-16 code units of the name are summed and the remainder modulo 20 is
// added as tenths.
func CollegeRating(name string) float64 {
	sum := 0
	for _, unit := range utf16.Encode([]rune(name)) {
		sum += int(unit)
	}
	return 3 + float64(sum%20)/10
}
