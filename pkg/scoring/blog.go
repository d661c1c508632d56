package scoring

import (
	"sort"
	"strings"

	"shopbot-be/pkg/catalog"
	"shopbot-be/pkg/similarity"
	"shopbot-be/pkg/textutil"
)

// Blog weight table. Title hits count as strong evidence.
const (
	blogTitleHit    = 6
	blogBodyHit     = 2
	blogStrongBonus = 5
)

// BlogCandidate is an article with its request-scoped scores.
type BlogCandidate struct {
	Article catalog.BlogArticle
	Candidate
}

// RankBlogs scores articles against the message and returns the top 3.
// When any article has a keyword in its title, only that subset competes
// for the cut; otherwise every scored article does.
func RankBlogs(articles []catalog.BlogArticle, userMessage string, wasShown func(url string) bool) []BlogCandidate {
	query := textutil.Normalize(userMessage)
	keywords := strings.Fields(query)

	var scored []BlogCandidate
	for _, article := range articles {
		if wasShown(article.URL) {
			continue
		}

		title := textutil.Normalize(article.Title)
		body := textutil.Normalize(textutil.StripHTML(article.Content))
		content := title + " " + body

		score := 0
		strongMatch := false
		for _, word := range keywords {
			if strings.Contains(title, word) {
				score += blogTitleHit
				strongMatch = true
			}
			if strings.Contains(body, word) {
				score += blogBodyHit
			}
		}

		if containsAllWords(title, keywords) {
			score += allWordsBonus
			strongMatch = true
		}
		if strongMatch {
			score += blogStrongBonus
		}

		scored = append(scored, BlogCandidate{
			Article:   article,
			Candidate: Candidate{MatchScore: score, Similarity: similarity.Ratio(query, content)},
		})
	}

	if len(scored) == 0 {
		return nil
	}

	// Prefer articles whose title mentions the query at all.
	var titled []BlogCandidate
	for _, c := range scored {
		title := textutil.Normalize(c.Article.Title)
		for _, word := range keywords {
			if strings.Contains(title, word) {
				titled = append(titled, c)
				break
			}
		}
	}

	pool := scored
	if len(titled) > 0 {
		pool = titled
	}

	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].MatchScore != pool[j].MatchScore {
			return pool[i].MatchScore > pool[j].MatchScore
		}
		return pool[i].Similarity > pool[j].Similarity
	})
	if len(pool) > 3 {
		pool = pool[:3]
	}
	return pool
}
