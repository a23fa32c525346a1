package engine

func init() {
	register("company", map[string]Formatter{
		"company": func(e *Engine, _ Args) (any, error) {
			return e.parseOne("company", e.data().Company.Formats)
		},
		"companySuffix": func(e *Engine, _ Args) (any, error) {
			return e.pick("company suffix", e.data().Company.Suffixes)
		},
		"jobTitle": func(e *Engine, _ Args) (any, error) {
			if titles := e.data().Company.JobTitles; len(titles) > 0 {
				return e.pick("job title", titles)
			}
			// gofakeit's titles are English only.
			if baseLanguage(e) != "en" {
				return nil, e.unsupported("job title")
			}
			return e.faker.JobTitle(), nil
		},
	})
}

func baseLanguage(e *Engine) string {
	base, _ := e.loc.Tag.Base()
	return base.String()
}
