package forum

// CategoryType groups categories in the sidebar.
type CategoryType string

const (
	CategoryTools      CategoryType = "tools"
	CategoryOpenSource CategoryType = "opensource"
)

// Category is a forum section.
type Category struct {
	ID   string       `json:"id" yaml:"id"`
	Name string       `json:"name" yaml:"name"`
	Type CategoryType `json:"type" yaml:"type"`
}

// SearchResult is one topic matching a search.
type SearchResult struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Category     string       `json:"category"`
	Author       string       `json:"author"`
	CategoryType CategoryType `json:"categoryType"`
}

// SearchResults is the response to a search.
type SearchResults struct {
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
}
