package domain

import "slices"

// Level classifies a course by degree type.
type Level string

// Canonical course levels. LevelAll is the criteria sentinel and never
// appears on a stored course.
const (
	LevelAll           Level = All
	LevelUndergraduate Level = "undergraduate"
	LevelPostgraduate  Level = "postgraduate"
	LevelDoctoral      Level = "doctoral"
	LevelDiploma       Level = "diploma"
	LevelIntegrated    Level = "integrated"
	LevelProfessional  Level = "professional"
)

// Levels is the full set of stored course levels in display order.
var Levels = []Level{
	LevelUndergraduate,
	LevelPostgraduate,
	LevelDoctoral,
	LevelDiploma,
	LevelIntegrated,
	LevelProfessional,
}

// Valid reports whether l is one of the stored course levels.
func (l Level) Valid() bool {
	for _, known := range Levels {
		if l == known {
			return true
		}
	}
	return false
}

// Field is the subject area a course belongs to.
type Field string

// Canonical subject areas. Values are stable keys; labels live with the
// option sets in the filter package.
const (
	FieldAll                  Field = All
	FieldArts                 Field = "arts"
	FieldScience              Field = "science"
	FieldCommerce             Field = "commerce"
	FieldEngineering          Field = "engineering"
	FieldMedicine             Field = "medicine"
	FieldLaw                  Field = "law"
	FieldDesign               Field = "design"
	FieldComputerApplications Field = "computer-applications"
	FieldHotelManagement      Field = "hotel-management"
	FieldManagement           Field = "management"
	FieldSocialSciences       Field = "social-sciences"
	FieldArchitecture         Field = "architecture"
	FieldPharmacy             Field = "pharmacy"
	FieldEducation            Field = "education"
	FieldInformationTech      Field = "information-technology"
	FieldParamedical          Field = "paramedical"
	FieldVocational           Field = "vocational"
	FieldAgriculture          Field = "agriculture"
	FieldHospitality          Field = "hospitality"
	FieldMedia                Field = "media"
	FieldFashion              Field = "fashion"
	FieldBusiness             Field = "business"
	FieldAccountancy          Field = "accountancy"
	FieldVeterinary           Field = "veterinary"
	FieldIntegratedLaw        Field = "integrated-law"
	FieldIntegratedScience    Field = "integrated-science"
	FieldIntegratedManagement Field = "integrated-management"
	FieldIntegratedTechnology Field = "integrated-technology"
	FieldIntegratedEducation  Field = "integrated-education"
	FieldOthers               Field = "others"
)

// Fields is the full set of stored course fields.
var Fields = []Field{
	FieldArts, FieldScience, FieldCommerce, FieldEngineering, FieldMedicine,
	FieldLaw, FieldDesign, FieldComputerApplications, FieldHotelManagement,
	FieldManagement, FieldSocialSciences, FieldArchitecture, FieldPharmacy,
	FieldEducation, FieldInformationTech, FieldParamedical, FieldVocational,
	FieldAgriculture, FieldHospitality, FieldMedia, FieldFashion, FieldBusiness,
	FieldAccountancy, FieldVeterinary, FieldIntegratedLaw, FieldIntegratedScience,
	FieldIntegratedManagement, FieldIntegratedTechnology, FieldIntegratedEducation,
	FieldOthers,
}

// Valid reports whether f is one of the stored course fields.
func (f Field) Valid() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

// Course is a single program of study in the catalog.
type Course struct {
	ID              string    `json:"id"                yaml:"id"               validate:"required"`
	Name            string    `json:"name"              yaml:"name"             validate:"required"`
	Field           Field     `json:"field"             yaml:"field"            validate:"required"`
	Level           Level     `json:"level"             yaml:"level"            validate:"required,oneof=undergraduate postgraduate doctoral diploma integrated professional"`
	Description     string    `json:"description"       yaml:"description"`
	Duration        string    `json:"duration"          yaml:"duration"`
	DurationType    string    `json:"duration_type"     yaml:"duration_type"`
	Qualification   string    `json:"qualification"     yaml:"qualification"`
	Colleges        []College `json:"colleges"          yaml:"colleges"         validate:"dive"`
	CareerProspects []string  `json:"career_prospects"  yaml:"career_prospects" validate:"dive,required"`
}

// CollegeIDs returns the identifiers of the colleges offering this course,
// in the order the catalog lists them. A college is identified by its name.
func (c Course) CollegeIDs() []string {
	ids := make([]string, 0, len(c.Colleges))
	for _, college := range c.Colleges {
		ids = append(ids, college.ID())
	}
	return ids
}

// OffersCareer reports whether name appears in the course's career
// prospects. Matching is exact and case-sensitive.
func (c Course) OffersCareer(name string) bool {
	for _, prospect := range c.CareerProspects {
		if prospect == name {
			return true
		}
	}
	return false
}

// Validate checks the invariants a course must hold before it can be
// indexed.
func (c Course) Validate() error {
	if c.ID == "" {
		return NewValidationError("id", "is required", ErrEmptyID)
	}
	if c.Name == "" {
		return NewValidationError("name", "is required", ErrEmptyName)
	}
	if !c.Level.Valid() {
		return NewValidationError("level", "must be a known course level", ErrInvalidLevel)
	}
	if !c.Field.Valid() {
		return NewValidationError("field", "must be a known course field", ErrInvalidField)
	}
	for _, college := range c.Colleges {
		if college.Name == "" {
			return NewValidationError("colleges.name", "is required", ErrEmptyName)
		}
	}
	return nil
}

// Clone returns a copy of c that shares no slices with it.
func (c Course) Clone() Course {
	c.Colleges = slices.Clone(c.Colleges)
	c.CareerProspects = slices.Clone(c.CareerProspects)
	return c
}
