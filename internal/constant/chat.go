package constant

// Phrases that mean "show me more of the same". Checked by substring on the
// lowered message before intent classification.
var AskForMorePhrases = []string{
	"more", "show me more", "give me more", "another one", "something else",
	"share more", "display more", "share me more",
}

// Canned replies for paths that produce no ranked content.
const (
	NotSupportedReply = "Sorry, we don’t offer that kind of product. We specialize in handcrafted tiles 🧱! Let me know if you need help with something else."
	AskForMoreReply   = "Let me know what you'd like to see more of – products, blogs, or something else!"
	NoProductsReply   = "Sorry, we currently have no products available."
	NoBlogsReply      = "Sorry, no blog articles available right now."
	NoBlogMatchReply  = "No matching blog articles found at the moment."
	NoCollectionReply = "I couldn't find a matching collection, but our products might be what you're after!"
	NoPageReply       = "Sorry, I couldn’t find any relevant page for your question."
)

// Watermill topic published after every successful catalog fetch.
const TopicCatalogRefreshed = "catalog.refreshed"
