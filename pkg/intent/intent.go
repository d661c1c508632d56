package intent

// Intent is a closed label classifying the purpose of a user utterance.
// Intents are compared by equality only; never by substring.
type Intent string

const (
	SearchProduct    Intent = "search_product"
	SearchCollection Intent = "search_collection"
	SearchBlog       Intent = "search_blog"
	SearchPages      Intent = "search_pages"
	Contact          Intent = "contact"
	Studio           Intent = "studio"
	Book             Intent = "book"
	ReturnsInfo      Intent = "returns_info"
	Shipping         Intent = "shipping"
	Trade            Intent = "trade"
	OurStory         Intent = "our_story"
	FAQs             Intent = "faqs"
	NotSupported     Intent = "not_supported"

	// Unknown is the zero value; the caller routes it to the generic
	// LLM-backed answer path.
	Unknown Intent = ""
)

// pageIntents map directly to a static page handle and bypass scoring.
var pageIntents = map[Intent]bool{
	Contact:     true,
	Studio:      true,
	Book:        true,
	ReturnsInfo: true,
	Shipping:    true,
	Trade:       true,
	OurStory:    true,
	SearchPages: true,
}

// IsPageIntent reports whether the intent resolves through the static page
// path (direct handle lookup or page similarity search).
func (i Intent) IsPageIntent() bool {
	return pageIntents[i]
}
