package client

// Route templates shared by all accessors. Placeholders are resolved from the
// session context (slug) merged with entity-contributed parameters (id).
const (
	collectionTemplate = "/accounts/${slug}/${resource}.json"
	detailTemplate     = "/accounts/${slug}/${resource}/${id}.json"
	searchTemplate     = "/accounts/${slug}/${resource}/search.json"
	fireTemplate       = "/accounts/${slug}/${resource}/${id}/fire.json"
	basePathTemplate   = "/accounts/${slug}/${resource}"

	accountTemplate     = "/accounts/${slug}/account.json"
	currentUserTemplate = "/user.json"
)
