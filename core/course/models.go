package course

type (
	// Slide is one static presentation slide. Rendering and navigation are a
	// frontend concern; the backend only serves the catalog.
	Slide struct {
		ID               string `json:"id"`
		Title            string `json:"title"`
		Content          string `json:"content"`
		PresenterNotes   string `json:"presenter_notes,omitempty"`
		Interactive      bool   `json:"interactive,omitempty"`
		DiscussionPrompt string `json:"discussion_prompt,omitempty"`
	}

	Resource struct {
		Title       string `json:"title"`
		URL         string `json:"url"`
		Description string `json:"description"`
		Duration    string `json:"duration,omitempty"`
	}

	Resources struct {
		Videos            []Resource `json:"videos"`
		Articles          []Resource `json:"articles"`
		ResidentResources []Resource `json:"michigan_resident_resources"`
	}

	// Catalog is the immutable course content, loaded once at process start.
	Catalog struct {
		Slides    []Slide
		Resources Resources
	}
)
