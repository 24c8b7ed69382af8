package fakturoid

import (
	"io"
	"sort"

	"github.com/valyala/fasttemplate"
)

// Route template placeholder delimiters.
const (
	routeTagStart = "${"
	routeTagEnd   = "}"
)

// RouteParams maps a route template parameter name to its value.
type RouteParams map[string]string

// RouteParamProvider is implemented by entities that can contribute route
// parameters of their own, typically their id. Keeping parameter contribution
// on the entity lets nested sub-resources compose their path from the parent
// id without per-resource glue.
type RouteParamProvider interface {
	RouteParams() RouteParams
}

// ResolveRoute substitutes ${name} placeholders in template from the given
// parameter contexts, merged left to right so later contexts win. An
// unresolved placeholder returns a RouteError naming the missing parameter.
func ResolveRoute(template string, contexts ...RouteParams) (string, error) {
	merged := RouteParams{}
	for _, ctx := range contexts {
		for name, value := range ctx {
			merged[name] = value
		}
	}

	path, err := fasttemplate.ExecuteFuncStringWithErr(template, routeTagStart, routeTagEnd,
		func(w io.Writer, tag string) (int, error) {
			value, ok := merged[tag]
			if !ok {
				return 0, &RouteError{
					Template:  template,
					Parameter: tag,
					Available: paramNames(merged),
				}
			}

			return io.WriteString(w, value)
		})
	if err != nil {
		return "", err
	}

	return path, nil
}

func paramNames(params RouteParams) []string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
