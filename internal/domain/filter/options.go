package filter

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/phrazzld/coursedir-api/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Option is a selectable value with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

const (
	// SuggestionMinLength is the shortest search term that produces course
	// suggestions, counted in characters.
	SuggestionMinLength = 2

	// SuggestionLimit caps the number of course suggestions returned.
	SuggestionLimit = 5
)

var allFieldsOption = Option{Value: domain.All, Label: "All Fields"}

// LevelOptions lists the course level picker entries, "all" first.
var LevelOptions = []Option{
	{Value: domain.All, Label: "All Levels"},
	{Value: string(domain.LevelUndergraduate), Label: "Undergraduate Degrees (Bachelor's Degrees)"},
	{Value: string(domain.LevelPostgraduate), Label: "Postgraduate Degrees (Master's Degrees)"},
	{Value: string(domain.LevelDoctoral), Label: "Doctoral Degrees (Ph.D.)"},
	{Value: string(domain.LevelDiploma), Label: "Diploma and Certificate Programs"},
	{Value: string(domain.LevelIntegrated), Label: "Integrated Programs"},
	{Value: string(domain.LevelProfessional), Label: "Professional Degrees"},
}

// defaultFields is offered when no level is selected.
var defaultFields = []Option{
	{Value: "arts", Label: "Arts/Humanities"},
	{Value: "science", Label: "Science"},
	{Value: "management", Label: "Commerce/Management"},
	{Value: "engineering", Label: "Engineering/Technology"},
	{Value: "medicine", Label: "Medicine/Allied Health Sciences"},
	{Value: "law", Label: "Law"},
	{Value: "computer-applications", Label: "Computer Applications"},
	{Value: "design", Label: "Design/Architecture"},
	{Value: "others", Label: "Others"},
}

// levelFields holds the field of study options valid for each level.
var levelFields = map[domain.Level][]Option{
	domain.LevelUndergraduate: {
		{Value: "arts", Label: "Arts/Humanities"},
		{Value: "science", Label: "Science"},
		{Value: "commerce", Label: "Commerce"},
		{Value: "engineering", Label: "Engineering/Technology"},
		{Value: "medicine", Label: "Medicine/Allied Health Sciences"},
		{Value: "law", Label: "Law"},
		{Value: "design", Label: "Design/Architecture"},
		{Value: "computer-applications", Label: "Computer Applications"},
		{Value: "hotel-management", Label: "Hotel Management"},
		{Value: "others", Label: "Others"},
	},
	domain.LevelPostgraduate: {
		{Value: "arts", Label: "Arts/Humanities"},
		{Value: "science", Label: "Science"},
		{Value: "management", Label: "Commerce/Management"},
		{Value: "engineering", Label: "Engineering/Technology"},
		{Value: "medicine", Label: "Medicine/Allied Health Sciences"},
		{Value: "law", Label: "Law"},
		{Value: "computer-applications", Label: "Computer Applications"},
		{Value: "design", Label: "Design/Architecture"},
		{Value: "others", Label: "Others"},
	},
	domain.LevelDoctoral: {
		{Value: "arts", Label: "Arts/Humanities"},
		{Value: "science", Label: "Science"},
		{Value: "social-sciences", Label: "Social Sciences"},
		{Value: "engineering", Label: "Engineering/Technology"},
		{Value: "medicine", Label: "Medicine/Allied Health Sciences"},
		{Value: "law", Label: "Law"},
		{Value: "management", Label: "Management"},
		{Value: "architecture", Label: "Architecture/Design"},
		{Value: "others", Label: "Others"},
	},
	domain.LevelDiploma: {
		{Value: "engineering", Label: "Engineering/Technology"},
		{Value: "information-technology", Label: "Computer Applications/IT"},
		{Value: "paramedical", Label: "Healthcare/Paramedical"},
		{Value: "business", Label: "Business/Management"},
		{Value: "hospitality", Label: "Hospitality/Tourism"},
		{Value: "fashion", Label: "Design/Fashion"},
		{Value: "vocational", Label: "Vocational Trades"},
		{Value: "agriculture", Label: "Agriculture"},
		{Value: "education", Label: "Education"},
		{Value: "media", Label: "Media/Communication"},
		{Value: "others", Label: "Others"},
	},
	domain.LevelIntegrated: {
		{Value: "integrated-law", Label: "Integrated Law"},
		{Value: "integrated-science", Label: "Integrated Science"},
		{Value: "integrated-management", Label: "Integrated Management"},
		{Value: "integrated-technology", Label: "Integrated Technology"},
		{Value: "integrated-education", Label: "Integrated Teacher Education"},
		{Value: "others", Label: "Others"},
	},
	domain.LevelProfessional: {
		{Value: "medicine", Label: "Medicine"},
		{Value: "law", Label: "Law"},
		{Value: "architecture", Label: "Architecture"},
		{Value: "pharmacy", Label: "Pharmacy"},
		{Value: "education", Label: "Education"},
		{Value: "business", Label: "Business Administration"},
		{Value: "accountancy", Label: "Accountancy"},
		{Value: "veterinary", Label: "Veterinary Science"},
		{Value: "others", Label: "Others"},
	},
}

// SubjectAreaOptions is the unrestricted field picker used by the career
// listing, "all" first.
var SubjectAreaOptions = []Option{
	allFieldsOption,
	{Value: "arts", Label: "Arts/Humanities"},
	{Value: "science", Label: "Science"},
	{Value: "commerce", Label: "Commerce"},
	{Value: "engineering", Label: "Engineering/Technology"},
	{Value: "medicine", Label: "Medicine/Allied Health Sciences"},
	{Value: "law", Label: "Law"},
	{Value: "design", Label: "Design/Architecture"},
	{Value: "computer-applications", Label: "Computer Applications"},
	{Value: "hotel-management", Label: "Hotel Management"},
	{Value: "management", Label: "Management"},
	{Value: "social-sciences", Label: "Social Sciences"},
	{Value: "architecture", Label: "Architecture"},
	{Value: "pharmacy", Label: "Pharmacy"},
	{Value: "education", Label: "Education"},
	{Value: "information-technology", Label: "Information Technology"},
	{Value: "paramedical", Label: "Paramedical"},
	{Value: "vocational", Label: "Vocational"},
	{Value: "agriculture", Label: "Agriculture"},
	{Value: "hospitality", Label: "Hospitality"},
	{Value: "media", Label: "Media"},
	{Value: "fashion", Label: "Fashion"},
	{Value: "others", Label: "Others"},
}

// FieldOptions returns the field of study options valid for level, with
// "All Fields" first. Unknown levels and the sentinel get the default set.
func FieldOptions(level domain.Level) []Option {
	fields, ok := levelFields[level]
	if !ok {
		fields = defaultFields
	}
	opts := make([]Option, 0, len(fields)+1)
	opts = append(opts, allFieldsOption)
	return append(opts, fields...)
}

// FieldAllowed reports whether field may be combined with level. The
// sentinel is always allowed. With no level selected any stored course
// field is allowed.
func FieldAllowed(level domain.Level, field domain.Field) bool {
	if domain.IsAll(string(field)) {
		return true
	}
	if !field.Valid() {
		return false
	}
	fields, ok := levelFields[level]
	if !ok {
		return true
	}
	for _, opt := range fields {
		if opt.Value == string(field) {
			return true
		}
	}
	return false
}

// CareerOptions returns every distinct career prospect across courses,
// sorted by label using English collation.
func CareerOptions(courses []domain.Course) []Option {
	seen := make(map[string]bool)
	opts := make([]Option, 0)
	for _, course := range courses {
		for _, career := range course.CareerProspects {
			if seen[career] {
				continue
			}
			seen[career] = true
			opts = append(opts, Option{Value: career, Label: career})
		}
	}

	col := collate.New(language.English)
	sort.SliceStable(opts, func(i, j int) bool {
		return col.CompareString(opts[i].Label, opts[j].Label) < 0
	})
	return opts
}

// CourseOptions returns the courses in field as picker entries keyed by
// course ID, in catalog order.
func CourseOptions(courses []domain.Course, field domain.Field) []Option {
	opts := make([]Option, 0, len(courses))
	for _, course := range courses {
		if !domain.IsAll(string(field)) && course.Field != field {
			continue
		}
		opts = append(opts, Option{Value: course.ID, Label: course.Name})
	}
	return opts
}

// CollegeTypeOptions returns the distinct course fields, sorted, used as
// college type choices.
func CollegeTypeOptions(courses []domain.Course) []Option {
	seen := make(map[domain.Field]bool)
	fields := make([]string, 0)
	for _, course := range courses {
		if seen[course.Field] {
			continue
		}
		seen[course.Field] = true
		fields = append(fields, string(course.Field))
	}
	sort.Strings(fields)

	opts := make([]Option, 0, len(fields))
	for _, f := range fields {
		opts = append(opts, Option{Value: f, Label: titleCase(f)})
	}
	return opts
}

// CourseSuggestions returns up to SuggestionLimit course names whose name or
// description contains term, ignoring case. Terms shorter than
// SuggestionMinLength produce no suggestions.
func CourseSuggestions(courses []domain.Course, term string) []string {
	suggestions := make([]string, 0, SuggestionLimit)
	if utf8.RuneCountInString(term) < SuggestionMinLength {
		return suggestions
	}
	for _, course := range courses {
		if !matchesText(course, strings.ToLower(term)) {
			continue
		}
		suggestions = append(suggestions, course.Name)
		if len(suggestions) == SuggestionLimit {
			break
		}
	}
	return suggestions
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r)) + s[size:]
}
