package config

// BlogsCollection is the collection holding blog documents.
const BlogsCollection = "blogs"

// Route path templates. Blog paths are relative to BlogsRoot.
const (
	HomeRoot = "/"

	BlogsRoot   = "/blogs"
	BlogsList   = "/list"
	BlogsGet    = "/:id"
	BlogsCreate = "/create"
	BlogsDelete = "/:id"

	HealthPath  = "/health"
	ReadyPath   = "/ready"
	MetricsPath = "/metrics"
)
