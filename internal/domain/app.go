package domain

// App represents one entry of the portfolio apps catalog
type App struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
	DemoURL     *string  `json:"demo_url"`
	GithubURL   *string  `json:"github_url"`
	ImageURL    *string  `json:"image_url"`
	Featured    bool     `json:"featured"`
}
