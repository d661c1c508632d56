package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"shopbot-be/internal/constant"
	"shopbot-be/internal/dto"
	"shopbot-be/internal/pkg/logger"
	"shopbot-be/pkg/catalog"
	"shopbot-be/pkg/faq"
	"shopbot-be/pkg/intent"
	"shopbot-be/pkg/respond"
	"shopbot-be/pkg/scoring"
	"shopbot-be/pkg/session"
	"shopbot-be/pkg/sheets"
	"shopbot-be/pkg/textutil"
)

type IChatService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

// InteractionSink receives the interaction and unanswered-question logs.
// Satisfied by *sheets.Sink; nil disables logging.
type InteractionSink interface {
	AppendInteraction(ctx context.Context, row sheets.Row) error
	AppendUnanswered(ctx context.Context, row sheets.Row) error
}

type chatService struct {
	catalog    *catalog.Store
	client     *catalog.Client
	sessions   *session.Store
	classifier *intent.Classifier
	faqIndex   *faq.Index // nil when FAQ artifacts are absent
	composer   *respond.Composer
	sink       InteractionSink // nil when sheet logging is not configured
	logger     logger.ILogger

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewChatService(
	catalogStore *catalog.Store,
	client *catalog.Client,
	sessions *session.Store,
	classifier *intent.Classifier,
	faqIndex *faq.Index,
	composer *respond.Composer,
	sink InteractionSink,
	sysLogger logger.ILogger,
	rng *rand.Rand,
) IChatService {
	return &chatService{
		catalog:    catalogStore,
		client:     client,
		sessions:   sessions,
		classifier: classifier,
		faqIndex:   faqIndex,
		composer:   composer,
		sink:       sink,
		logger:     sysLogger,
		rng:        rng,
	}
}

func (s *chatService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	message := textutil.Normalize(req.Message)
	if message == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Message is required")
	}

	sessionID := req.SessionId
	if sessionID == "" {
		sessionID = "default"
	}

	// The log keeps the message as the user typed it; the corpus harvester
	// does its own normalization.
	rawMessage := strings.TrimSpace(req.Message)

	if isAskForMore(message) {
		res := s.replay(ctx, sessionID, message, req.UserMessageCount)
		s.logInteraction(ctx, rawMessage, res.Intent, res.Answer)
		return res, nil
	}

	detected := s.classifier.Classify(message)
	res := s.dispatch(ctx, detected, sessionID, message, req.UserMessageCount)
	s.logInteraction(ctx, rawMessage, res.Intent, res.Answer)
	return res, nil
}

// replay services "show me more" by re-running the previous query against
// the previous intent; the shown-item sets guarantee fresh results.
func (s *chatService) replay(ctx context.Context, sessionID, message string, userMessageCount int) *dto.ChatResponse {
	sess := s.sessions.Get(sessionID)
	if sess == nil || sess.LastQuery == "" {
		return &dto.ChatResponse{Answer: constant.AskForMoreReply, Intent: string(intent.Unknown)}
	}

	last := intent.Intent(sess.LastIntent)
	switch last {
	case intent.SearchProduct, intent.SearchCollection, intent.SearchBlog:
		return s.dispatch(ctx, last, sessionID, sess.LastQuery, userMessageCount)
	}
	return &dto.ChatResponse{Answer: constant.AskForMoreReply, Intent: string(intent.Unknown)}
}

func (s *chatService) dispatch(ctx context.Context, detected intent.Intent, sessionID, message string, userMessageCount int) *dto.ChatResponse {
	var answer string

	switch {
	case detected == intent.SearchProduct:
		s.rememberQuery(sessionID, detected, message)
		answer = s.handleProducts(ctx, sessionID, message, userMessageCount)

	case detected == intent.SearchCollection:
		s.rememberQuery(sessionID, detected, message)
		answer = s.handleCollections(ctx, sessionID, message)

	case detected == intent.SearchBlog:
		s.rememberQuery(sessionID, detected, message)
		answer = s.handleBlogs(ctx, sessionID, message)

	case detected.IsPageIntent():
		s.rememberQuery(sessionID, intent.SearchPages, message)
		answer = s.handlePages(ctx, message, detected)

	case detected == intent.FAQs:
		answer = s.handleFAQ(ctx, message)

	case detected == intent.NotSupported:
		answer = constant.NotSupportedReply

	default:
		answer = s.handleGeneral(ctx, message)
	}

	return &dto.ChatResponse{Answer: answer, Intent: string(detected)}
}

func (s *chatService) rememberQuery(sessionID string, detected intent.Intent, message string) {
	s.sessions.Update(sessionID, func(sess *session.Session) {
		sess.LastIntent = string(detected)
		sess.LastQuery = message
	})
}

func (s *chatService) handleProducts(ctx context.Context, sessionID, message string, userMessageCount int) string {
	snap := s.catalog.Snapshot()
	if len(snap.Products) == 0 {
		return constant.NoProductsReply
	}

	shown := s.sessions.ShownSet(sessionID, session.KindProduct)
	wasShown := func(handle string) bool { return shown[handle] }
	roomContext := scoring.DetectContext(message)

	s.rngMu.Lock()
	sel := scoring.RankProducts(snap.Products, message, roomContext, wasShown, s.rng)
	s.rngMu.Unlock()

	if sel.Promoted != nil {
		p := sel.Promoted.Product
		summary := s.composer.SummarizeProduct(ctx, textutil.StripHTML(p.BodyHTML))
		s.markShown(sessionID, session.KindProduct, p.Handle)
		return respond.PromotedProduct(p.Title, summary, s.client.ProductURL(p.Handle))
	}

	if len(sel.Listed) == 0 {
		return constant.NoProductsReply
	}

	var intro string
	if sel.Random {
		intro = s.composer.RandomIntro(ctx, message)
	} else {
		intro = s.composer.ProductIntro(ctx, message, userMessageCount < 2)
	}

	cards := make([]respond.ProductCard, 0, len(sel.Listed))
	handles := make([]string, 0, len(sel.Listed))
	for _, c := range sel.Listed {
		cards = append(cards, respond.ProductCard{
			Title:    c.Product.Title,
			Summary:  s.composer.SummarizeProduct(ctx, textutil.StripHTML(c.Product.BodyHTML)),
			URL:      s.client.ProductURL(c.Product.Handle),
			ImageURL: c.Product.Image.Src,
			Tags:     c.Product.TagList(),
		})
		handles = append(handles, c.Product.Handle)
	}
	s.markShown(sessionID, session.KindProduct, handles...)

	return respond.ProductCarousel(intro, cards)
}

func (s *chatService) handleCollections(ctx context.Context, sessionID, message string) string {
	snap := s.catalog.Snapshot()
	shown := s.sessions.ShownSet(sessionID, session.KindCollection)
	wasShown := func(handle string) bool { return shown[handle] }

	candidates := scoring.RankCollections(snap.Collections, message, wasShown)
	if len(candidates) == 0 {
		return constant.NoCollectionReply
	}

	intro := s.composer.RandomIntro(ctx, message)
	items := make([]respond.CollectionItem, 0, len(candidates))
	handles := make([]string, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, respond.CollectionItem{
			Title:   c.Collection.Title,
			Summary: s.composer.SummarizePage(ctx, textutil.StripHTML(c.Collection.BodyHTML), c.Collection.Title),
			URL:     s.client.CollectionURL(c.Collection.Handle),
			Count:   c.Collection.ProductCount,
		})
		handles = append(handles, c.Collection.Handle)
	}
	s.markShown(sessionID, session.KindCollection, handles...)

	return respond.CollectionList(intro, items)
}

func (s *chatService) handleBlogs(ctx context.Context, sessionID, message string) string {
	snap := s.catalog.Snapshot()
	if len(snap.Articles) == 0 {
		return constant.NoBlogsReply
	}

	shown := s.sessions.ShownSet(sessionID, session.KindBlog)
	wasShown := func(url string) bool { return shown[url] }

	candidates := scoring.RankBlogs(snap.Articles, message, wasShown)
	if len(candidates) == 0 {
		return constant.NoBlogMatchReply
	}

	intro := s.composer.BlogIntro(ctx, message)
	items := make([]respond.BlogItem, 0, len(candidates))
	urls := make([]string, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, respond.BlogItem{
			Title:   c.Article.Title,
			Summary: s.composer.SummarizePage(ctx, textutil.StripHTML(c.Article.Content), c.Article.Title),
			URL:     c.Article.URL,
		})
		urls = append(urls, c.Article.URL)
	}
	s.markShown(sessionID, session.KindBlog, urls...)

	return respond.BlogList(intro, items)
}

// pageBodyLimit bounds how much page text is fed to the summarizer.
const pageBodyLimit = 3000

func (s *chatService) handlePages(ctx context.Context, message string, detected intent.Intent) string {
	snap := s.catalog.Snapshot()
	page := scoring.RoutePage(snap.Pages, message, detected)
	if page == nil {
		return constant.NoPageReply
	}

	body := textutil.Truncate(textutil.StripHTML(page.BodyHTML), pageBodyLimit)
	summary := s.composer.SummarizePage(ctx, body, page.Title)
	return respond.PageAnswer(summary, s.client.PageURL(page.Handle))
}

func (s *chatService) handleFAQ(ctx context.Context, message string) string {
	if s.faqIndex != nil {
		match, err := s.faqIndex.Search(message)
		if err != nil {
			s.logger.Warn("chat", "faq search failed", map[string]interface{}{"error": err.Error()})
		}
		if match != nil {
			return respond.FAQAnswer(match.Entry.Title, match.Entry.Answer, match.Entry.URL)
		}
	}
	// Below threshold: fall through to the open-ended answer and keep the
	// question for triage.
	answer := s.handleGeneral(ctx, message)
	return answer
}

func (s *chatService) handleGeneral(ctx context.Context, message string) string {
	shop := s.catalog.Snapshot().Shop
	shopContext := fmt.Sprintf("Store name: %s, Currency: %s", shop.Name, shop.Currency)
	answer := s.composer.GeneralAnswer(ctx, message, shopContext)
	s.logUnanswered(ctx, message, answer)
	return answer
}

func (s *chatService) markShown(sessionID, kind string, handles ...string) {
	if len(handles) == 0 {
		return
	}
	s.sessions.Update(sessionID, func(sess *session.Session) {
		sess.MarkShown(kind, handles...)
	})
}

func (s *chatService) logInteraction(ctx context.Context, message, intentLabel, answer string) {
	if s.sink == nil {
		return
	}
	err := s.sink.AppendInteraction(ctx, sheets.Row{
		Timestamp: time.Now(),
		Message:   message,
		Intent:    intentLabel,
		Response:  answer,
	})
	if err != nil {
		s.logger.Warn("chat", "interaction log failed", map[string]interface{}{"error": err.Error()})
	}
}

func (s *chatService) logUnanswered(ctx context.Context, message, answer string) {
	if s.sink == nil {
		return
	}
	err := s.sink.AppendUnanswered(ctx, sheets.Row{
		Timestamp: time.Now(),
		Message:   message,
		Response:  answer,
	})
	if err != nil {
		s.logger.Warn("chat", "unanswered log failed", map[string]interface{}{"error": err.Error()})
	}
}

func isAskForMore(message string) bool {
	message = strings.ToLower(message)
	for _, phrase := range constant.AskForMorePhrases {
		if strings.Contains(message, phrase) {
			return true
		}
	}
	return false
}
