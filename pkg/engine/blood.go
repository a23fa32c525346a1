package engine

func init() {
	register("blood", map[string]Formatter{
		"bloodType": func(e *Engine, _ Args) (any, error) {
			return e.pick("blood type", e.data().Blood.Types)
		},
		"bloodRh": func(e *Engine, _ Args) (any, error) {
			return e.pick("blood rh", e.data().Blood.Rh)
		},
		"bloodGroup": func(e *Engine, _ Args) (any, error) {
			t, err := e.pick("blood type", e.data().Blood.Types)
			if err != nil {
				return nil, err
			}
			rh, err := e.pick("blood rh", e.data().Blood.Rh)
			if err != nil {
				return nil, err
			}
			return t + rh, nil
		},
	})
}
