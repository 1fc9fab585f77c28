package models

type ResourceType string

const (
	ResourceTypeArticle  ResourceType = "article"
	ResourceTypeVideo    ResourceType = "video"
	ResourceTypeTool     ResourceType = "tool"
	ResourceTypeTemplate ResourceType = "template"
)

// ResourceTypes lists the resource types in display order.
var ResourceTypes = []ResourceType{ //nolint:gochecknoglobals // constant list
	ResourceTypeArticle,
	ResourceTypeVideo,
	ResourceTypeTool,
	ResourceTypeTemplate,
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Resource is a canned learning resource.
type Resource struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Category      string       `json:"category"`
	Type          ResourceType `json:"type"`
	URL           string       `json:"url"`
	Difficulty    Difficulty   `json:"difficulty"`
	EstimatedTime string       `json:"estimatedTime"`
}

// ResourceCategories are the categories offered by the resource library filter.
var ResourceCategories = []string{ //nolint:gochecknoglobals // constant list
	"Market Research",
	"Product Development",
	"Fundraising",
	"Customer Development",
	"Finance",
	"Marketing",
}
