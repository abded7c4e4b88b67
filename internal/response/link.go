package response

import "strings"

// Link is a navigational action attached to a response. Immutable value.
type Link struct {
	Rel     string `json:"rel"`
	Href    string `json:"href"`
	Method  string `json:"method"`
	Version string `json:"version"`
}

// ActionLinks returns the four CRUD links for a salary record with {id}
// substituted. The link whose own HTTP method matches the given method
// (case-insensitive) is relabelled "self"; the rest keep their default rel.
func ActionLinks(method, version, id string) []Link {
	links := []Link{
		{Rel: "get", Href: "/api/" + version + "/salaries", Method: "GET", Version: version},
		{Rel: "add", Href: "/api/" + version + "/salaries/add", Method: "POST", Version: version},
		{Rel: "edit", Href: "/api/" + version + "/salaries/edit/{id}", Method: "PATCH", Version: version},
		{Rel: "delete", Href: "/api/" + version + "/salaries/delete/{id}", Method: "DELETE", Version: version},
	}

	out := make([]Link, 0, len(links))
	for _, link := range links {
		href := strings.ReplaceAll(link.Href, "{id}", id)
		rel := link.Rel
		if strings.EqualFold(link.Method, method) {
			rel = "self"
		}
		out = append(out, Link{Rel: rel, Href: href, Method: link.Method, Version: link.Version})
	}
	return out
}

// ErrorLink returns a single link describing the failed action. For rel "get"
// the href is the fixed list URL and no {id} substitution happens. Note the
// asymmetry with ActionLinks: here the rel becomes "self" only when the
// method *argument* is "get", not when it matches the link's own method.
func ErrorLink(rel, method, version, id string) []Link {
	var href string
	if strings.EqualFold(rel, "get") {
		href = "/api/" + version + "/salaries"
	} else {
		href = strings.ReplaceAll("/api/"+version+"/salaries/"+rel+"/{id}", "{id}", id)
	}

	finalRel := rel
	if strings.EqualFold(method, "get") {
		finalRel = "self"
	}

	return []Link{{Rel: finalRel, Href: href, Method: method, Version: version}}
}
