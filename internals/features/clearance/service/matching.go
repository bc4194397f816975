package service

import (
	"strings"

	facultyModel "nodues_backend/internals/features/faculties/model"
)

// ClassKey identifies one (semester, section) pair a faculty teaches.
type ClassKey struct {
	Semester int    `json:"semester"`
	Section  string `json:"section"`
}

// NormalizeSection makes section values comparable regardless of stored
// casing or stray whitespace.
func NormalizeSection(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func matches(d facultyModel.TeachingDetailModel, semester int, section string) bool {
	return d.Semester == semester && NormalizeSection(d.Section) == NormalizeSection(section)
}

// SubjectsFor returns the de-duplicated subjects a faculty teaches to the
// class identified by (semester, section). Semester is compared as an
// integer on both sides.
func SubjectsFor(details []facultyModel.TeachingDetailModel, semester int, section string) []string {
	seen := make(map[string]struct{})
	var subjects []string
	for _, d := range details {
		if !matches(d, semester, section) {
			continue
		}
		subject := strings.TrimSpace(d.Subject)
		if subject == "" {
			continue
		}
		if _, dup := seen[subject]; dup {
			continue
		}
		seen[subject] = struct{}{}
		subjects = append(subjects, subject)
	}
	return subjects
}

// TeachesSubject reports whether (semester, section, subject) appears in
// the faculty's teaching details.
func TeachesSubject(details []facultyModel.TeachingDetailModel, semester int, section, subject string) bool {
	subject = strings.TrimSpace(subject)
	for _, d := range details {
		if matches(d, semester, section) && strings.TrimSpace(d.Subject) == subject {
			return true
		}
	}
	return false
}

// EligiblePairs returns the distinct (semester, section) pairs across the
// faculty's teaching details, in first-seen order.
func EligiblePairs(details []facultyModel.TeachingDetailModel) []ClassKey {
	seen := make(map[ClassKey]struct{})
	var pairs []ClassKey
	for _, d := range details {
		key := ClassKey{Semester: d.Semester, Section: NormalizeSection(d.Section)}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		pairs = append(pairs, key)
	}
	return pairs
}
