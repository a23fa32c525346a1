package engine

// Genders accepted by the name, firstName and title formatters.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

func init() {
	register("person", map[string]Formatter{
		"name": func(e *Engine, a Args) (any, error) {
			male, err := e.gender(a)
			if err != nil {
				return nil, err
			}
			if male {
				return e.parseOne("male name", e.data().Person.NameFormatsMale)
			}
			return e.parseOne("female name", e.data().Person.NameFormatsFemale)
		},
		"firstName": func(e *Engine, a Args) (any, error) {
			male, err := e.gender(a)
			if err != nil {
				return nil, err
			}
			if male {
				return e.pick("male first name", e.data().Person.FirstNamesMale)
			}
			return e.pick("female first name", e.data().Person.FirstNamesFemale)
		},
		"firstNameMale": func(e *Engine, _ Args) (any, error) {
			return e.pick("male first name", e.data().Person.FirstNamesMale)
		},
		"firstNameFemale": func(e *Engine, _ Args) (any, error) {
			return e.pick("female first name", e.data().Person.FirstNamesFemale)
		},
		"lastName": func(e *Engine, _ Args) (any, error) {
			return e.pick("last name", e.data().Person.LastNames)
		},
		"title": func(e *Engine, a Args) (any, error) {
			male, err := e.gender(a)
			if err != nil {
				return nil, err
			}
			if male {
				return e.pick("male title", e.data().Person.TitlesMale)
			}
			return e.pick("female title", e.data().Person.TitlesFemale)
		},
		"titleMale": func(e *Engine, _ Args) (any, error) {
			return e.pick("male title", e.data().Person.TitlesMale)
		},
		"titleFemale": func(e *Engine, _ Args) (any, error) {
			return e.pick("female title", e.data().Person.TitlesFemale)
		},
	})
}

// gender reads the optional gender argument. An empty gender is drawn at random.
func (e *Engine) gender(a Args) (male bool, err error) {
	g, err := a.String(0, "")
	if err != nil {
		return false, err
	}
	switch g {
	case GenderMale:
		return true, nil
	case GenderFemale:
		return false, nil
	case "":
		return e.rng.IntN(2) == 0, nil
	}
	return false, invalidArg("gender %q is neither %q nor %q", g, GenderMale, GenderFemale)
}
