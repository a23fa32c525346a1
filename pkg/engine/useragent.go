package engine

import "fmt"

func init() {
	register("useragent", map[string]Formatter{
		"userAgent": func(e *Engine, _ Args) (any, error) {
			return e.faker.UserAgent(), nil
		},
		"chrome": func(e *Engine, _ Args) (any, error) {
			return e.faker.ChromeUserAgent(), nil
		},
		"firefox": func(e *Engine, _ Args) (any, error) {
			return e.faker.FirefoxUserAgent(), nil
		},
		"safari": func(e *Engine, _ Args) (any, error) {
			return e.faker.SafariUserAgent(), nil
		},
		"opera": func(e *Engine, _ Args) (any, error) {
			return e.faker.OperaUserAgent(), nil
		},
		"internetExplorer": func(e *Engine, _ Args) (any, error) {
			return fmt.Sprintf("Mozilla/5.0 (compatible; MSIE %d.0; Windows NT %d.%d; Trident/%d.%d)",
				e.between(5, 11), e.between(4, 6), e.between(0, 2), e.between(3, 5), e.between(0, 1)), nil
		},
		"msedge": func(e *Engine, _ Args) (any, error) {
			chrome := fmt.Sprintf("%d.0.%d.%d", e.between(79, 130), e.between(3000, 6000), e.between(0, 199))
			edge := fmt.Sprintf("%d.0.%d.%d", e.between(79, 130), e.between(1000, 3000), e.between(0, 99))
			return fmt.Sprintf("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%s Safari/537.36 Edg/%s",
				chrome, edge), nil
		},
	})
}
