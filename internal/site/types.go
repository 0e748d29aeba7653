package site

// ConfigPath is where the site configuration document lives.
const ConfigPath = "data/site.json"

// Tab is one navigation entry pointing at a section id.
type Tab struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// QuickLink is a hero tile. Icon and Kind are synonyms; Icon wins.
type QuickLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Icon  string `json:"icon,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

// ExternalLink is an entry of the "elsewhere" list.
type ExternalLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Config is data/site.json.
type Config struct {
	Tabs        []Tab          `json:"tabs,omitempty"`
	QuickLinks  []QuickLink    `json:"quickLinks,omitempty"`
	Email       string         `json:"email,omitempty"`
	AddressHTML string         `json:"address_html,omitempty"`
	Elsewhere   []ExternalLink `json:"elsewhere,omitempty"`
	About       string         `json:"about,omitempty"`
}

// DefaultTabs is the navigation used when site.json has no tabs.
var DefaultTabs = []Tab{
	{ID: "home", Label: "Home"},
	{ID: "publications", Label: "Publications"},
	{ID: "cv", Label: "CV"},
	{ID: "demos", Label: "Demos"},
	{ID: "teaching", Label: "Teaching"},
	{ID: "outreach", Label: "Outreach"},
	{ID: "contact", Label: "Contact"},
}
