package faker

import "github.com/getmockd/fakerhelper/pkg/engine"

// Gender selects names and titles. AnyGender draws one at random.
type Gender string

const (
	AnyGender    Gender = ""
	GenderMale   Gender = engine.GenderMale
	GenderFemale Gender = engine.GenderFemale
)

// Name returns a full name, e.g. "Dr. Zane Stroman".
func (g *Generator) Name(gender Gender) (string, error) {
	return call[string](g, "name", string(gender))
}

// FirstName returns a given name, e.g. "Maynard".
func (g *Generator) FirstName(gender Gender) (string, error) {
	return call[string](g, "firstName", string(gender))
}

// FirstNameMale returns a male given name.
func (g *Generator) FirstNameMale() (string, error) {
	return call[string](g, "firstNameMale")
}

// FirstNameFemale returns a female given name.
func (g *Generator) FirstNameFemale() (string, error) {
	return call[string](g, "firstNameFemale")
}

// LastName returns a family name, e.g. "Zulauf".
func (g *Generator) LastName() (string, error) {
	return call[string](g, "lastName")
}

// Title returns an honorific, e.g. "Ms.".
func (g *Generator) Title(gender Gender) (string, error) {
	return call[string](g, "title", string(gender))
}

// TitleMale returns a male honorific, e.g. "Mr.".
func (g *Generator) TitleMale() (string, error) {
	return call[string](g, "titleMale")
}

// TitleFemale returns a female honorific, e.g. "Mrs.".
func (g *Generator) TitleFemale() (string, error) {
	return call[string](g, "titleFemale")
}
