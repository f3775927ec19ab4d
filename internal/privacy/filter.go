// Package privacy strips identity-revealing fields from student profiles
// before anything leaves the process. SanitizedProfile deliberately has no
// fields for the removed keys, so the "never leak PII" invariant is checkable
// at the type level rather than by runtime key deletion.
package privacy

import (
	"fmt"

	"github.com/fairwork-za/wilmatch/internal/demographics"
	"github.com/fairwork-za/wilmatch/internal/records"
)

// BlindHeadline replaces a student's self-written headline when blind-match
// mode is enforced.
const BlindHeadline = "Blind profile enabled"

// RemovedFields lists the profile keys stripped unconditionally, independent
// of blind-match mode.
var RemovedFields = []string{
	"subject_id",
	"national_id",
	"profile_links",
	"cv_link",
	"date_of_birth",
	"race",
	"nationality",
}

// SanitizedProfile is the only profile shape allowed to reach external
// collaborators. It carries none of the keys in RemovedFields.
type SanitizedProfile struct {
	FieldOfStudy  string   `json:"field_of_study,omitempty"`
	Qualification string   `json:"qualification,omitempty"`
	Institution   string   `json:"institution,omitempty"`
	Location      string   `json:"location,omitempty"`
	Languages     string   `json:"languages,omitempty"`
	Gender        string   `json:"gender,omitempty"`
	Skills        []string `json:"skills,omitempty"`
	Experience    string   `json:"experience,omitempty"`
	Headline      string   `json:"headline,omitempty"`
	YearOfStudy   int      `json:"year_of_study,omitempty"`
}

// Filter performs PII stripping and blind-match redaction. It needs a
// normalizer to coarsen exact locations to province granularity in blind
// mode.
type Filter struct {
	normalizer *demographics.Normalizer
}

// NewFilter creates a filter backed by the given normalizer. A nil
// normalizer falls back to the default tables.
func NewFilter(normalizer *demographics.Normalizer) *Filter {
	if normalizer == nil {
		normalizer = demographics.NewNormalizer(nil, nil)
	}

	return &Filter{normalizer: normalizer}
}

// StripPII returns the sanitized copy of the profile together with the list
// of removed field names and human-readable notes for each redaction
// decision. When blindMatch is true the exact location is coarsened to its
// province and a non-empty headline is replaced with BlindHeadline.
func (f *Filter) StripPII(profile *records.StudentProfile, blindMatch bool) (*SanitizedProfile, []string, []string) {
	if profile == nil {
		profile = &records.StudentProfile{}
	}

	removed := make([]string, len(RemovedFields))
	copy(removed, RemovedFields)

	notes := []string{"Removed direct identifiers from profile"}

	sanitized := &SanitizedProfile{
		FieldOfStudy:  profile.FieldOfStudy,
		Qualification: profile.Qualification,
		Institution:   profile.Institution,
		Location:      profile.Location,
		Languages:     profile.Languages,
		Gender:        profile.Gender,
		Skills:        profile.Skills,
		Experience:    profile.Experience,
		Headline:      profile.Headline,
		YearOfStudy:   profile.YearOfStudy,
	}

	if blindMatch {
		// Only a canonical province may survive blind mode. A free-text
		// address that did not resolve would re-identify the student, so it
		// is withheld entirely.
		province := f.normalizer.Province(profile.Location)
		if !demographics.IsCanonicalProvince(province) {
			province = ""
		}

		if province == "" && profile.Location != "" {
			notes = append(notes, "Withheld location; no canonical province resolved")
		} else if province != profile.Location {
			notes = append(notes, fmt.Sprintf("Coarsened location to province %q", province))
		}
		sanitized.Location = province

		if sanitized.Headline != "" {
			sanitized.Headline = BlindHeadline
			notes = append(notes, "Replaced headline with blind-profile sentinel")
		}
	}

	return sanitized, removed, notes
}
