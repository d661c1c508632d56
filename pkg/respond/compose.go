// Package respond builds the HTML answers rendered by the storefront chat
// widget. Intros and summaries come from the LLM when it cooperates and
// from fixed fallback lines when it does not; a failed generation never
// fails the request.
package respond

import (
	"context"
	"fmt"
	"strings"

	"shopbot-be/pkg/llm"
)

// Fallback lines used whenever the LLM is unavailable or returns junk.
const (
	fallbackProductIntro = "Here are some great tiles you might like!"
	fallbackRandomIntro  = "Here are some great options you might like!"
	fallbackBlogIntro    = "Here are some blog articles you might find helpful:"
	fallbackSummary      = "A great choice!"
	fallbackPageShort    = "This page contains details about your request."
	fallbackPageError    = "This page contains useful information about your request."
	fallbackGeneral      = "I'm here to help! Let me know what you need assistance with. 😊"
)

// Composer generates intros and summaries. All methods are best-effort and
// always return usable text.
type Composer struct {
	provider llm.LLMProvider
}

func NewComposer(provider llm.LLMProvider) *Composer {
	return &Composer{provider: provider}
}

// ProductIntro leads into a scored product list. Early in a conversation the
// intro includes a greeting; later turns drop it.
func (c *Composer) ProductIntro(ctx context.Context, userMessage string, earlyConversation bool) string {
	greeting := "a short intro without any greeting. "
	if earlyConversation {
		greeting = "a short, friendly intro with a warm greeting. "
	}
	prompt := "You are a helpful assistant for a tile store. Based on the customer message, generate " +
		greeting +
		"Include relevant details like color, finish, shape, or usage (e.g. kitchen, bathroom), if mentioned. " +
		"Do not list products. Just introduce the upcoming list in a friendly way.\n\n" +
		"Your response must be natural and **no more than 20 words**.\n\n" +
		"Customer said: " + userMessage

	return c.generate(ctx, []llm.Message{{Role: "system", Content: prompt}},
		fallbackProductIntro, llm.WithMaxTokens(50), llm.WithTemperature(0.7))
}

// RandomIntro leads into the non-personalized fallback list.
func (c *Composer) RandomIntro(ctx context.Context, userMessage string) string {
	return c.generate(ctx, []llm.Message{
		{Role: "system", Content: "You are a friendly assistant helping a customer find the best products based on their request. Generate a short introduction that smoothly leads into product suggestions."},
		{Role: "user", Content: "The customer asked: " + userMessage},
	}, fallbackRandomIntro, llm.WithMaxTokens(50), llm.WithTemperature(0.7))
}

// BlogIntro leads into a list of blog articles.
func (c *Composer) BlogIntro(ctx context.Context, userMessage string) string {
	prompt := "You are a helpful assistant. Generate a short, friendly introduction to a list of blog articles based on the following customer message:\n\n" + userMessage
	return c.generate(ctx, []llm.Message{{Role: "system", Content: prompt}},
		fallbackBlogIntro, llm.WithMaxTokens(50), llm.WithTemperature(0.7))
}

// SummarizeProduct compresses a product description to one sentence.
func (c *Composer) SummarizeProduct(ctx context.Context, description string) string {
	if len(description) < 10 {
		return fallbackSummary
	}
	return c.generate(ctx, []llm.Message{
		{Role: "system", Content: "Summarize the following product description in one short sentence:"},
		{Role: "user", Content: description},
	}, fallbackSummary, llm.WithMaxTokens(50), llm.WithTemperature(0.5))
}

// SummarizePage condenses a static page or article into one or two friendly
// sentences. A junk generation degrades to a body prefix rather than the
// generic fallback so the customer still sees real content.
func (c *Composer) SummarizePage(ctx context.Context, content, title string) string {
	if len(content) < 20 {
		return fallbackPageShort
	}
	prompt := fmt.Sprintf("The customer is asking about: %s.\n\nPage content:\n%s", title, content)
	out, err := c.provider.Chat(ctx, []llm.Message{
		{Role: "system", Content: "You are a helpful, friendly assistant. Summarize the page below in 1-2 friendly sentences. Avoid repeating the title, and highlight any useful or unique details customers may appreciate."},
		{Role: "user", Content: prompt},
	}, llm.WithMaxTokens(180), llm.WithTemperature(0.6))
	if err != nil {
		return fallbackPageError
	}
	out = strings.TrimSpace(out)
	if len(out) < 10 {
		if len(content) > 200 {
			return content[:200] + "..."
		}
		return content
	}
	return out
}

// DescribeCollection writes a short storefront description for a collection
// from a few member titles. Returns "" on failure; callers leave the body
// empty rather than inventing one.
func (c *Composer) DescribeCollection(ctx context.Context, title string, productTitles []string) string {
	prompt := fmt.Sprintf(
		"Write one friendly sentence describing a tile collection named %q that includes products like: %s. Do not use Markdown.",
		title, strings.Join(productTitles, ", "),
	)
	out, err := c.provider.Generate(ctx, prompt, llm.WithMaxTokens(60), llm.WithTemperature(0.6))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// GeneralAnswer handles utterances no specific route claimed.
func (c *Composer) GeneralAnswer(ctx context.Context, question, shopContext string) string {
	return c.generate(ctx, []llm.Message{
		{Role: "system", Content: "You are a helpful assistant for an online store. Answer questions in a simple and friendly way, like you are talking to a customer who may not be familiar with technical terms. Do not use Markdown in your responses, only HTML."},
		{Role: "user", Content: shopContext + "\n\n" + question},
	}, fallbackGeneral, llm.WithMaxTokens(200), llm.WithTemperature(0.5))
}

func (c *Composer) generate(ctx context.Context, history []llm.Message, fallback string, opts ...llm.Option) string {
	out, err := c.provider.Chat(ctx, history, opts...)
	if err != nil {
		return fallback
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return fallback
	}
	return out
}
