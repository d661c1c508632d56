package scoring

import (
	"sort"
	"strings"

	"shopbot-be/pkg/catalog"
	"shopbot-be/pkg/similarity"
	"shopbot-be/pkg/textutil"
)

// Collection weight table. Close to the product table but tuned
// independently; kept separate on purpose.
const (
	collectionTitleHit  = 5
	collectionMemberHit = 2
	collectionTagHit    = 3
)

// CollectionCandidate is a collection with its request-scoped scores.
type CollectionCandidate struct {
	Collection catalog.Collection
	Candidate
}

// RankCollections scores enriched collections against the message and
// returns the top 3. Empty collections never enter candidacy.
func RankCollections(collections []catalog.Collection, userMessage string, wasShown func(handle string) bool) []CollectionCandidate {
	normalizedMessage := textutil.Normalize(userMessage)
	keywords := strings.Fields(normalizedMessage)

	var candidates []CollectionCandidate
	for _, col := range collections {
		if col.ProductCount == 0 || wasShown(col.Handle) {
			continue
		}

		normalizedTitle := textutil.Normalize(col.Title)
		memberTitles := strings.ToLower(strings.Join(col.ProductTitles, " "))
		tags := textutil.SplitTags(col.Tags)

		score := 0
		for _, kw := range keywords {
			if strings.Contains(normalizedTitle, kw) {
				score += collectionTitleHit
			}
			if strings.Contains(memberTitles, kw) {
				score += collectionMemberHit
			}
			for _, tag := range tags {
				if strings.Contains(tag, kw) {
					score += collectionTagHit
					break
				}
			}
		}

		sim := 0.0
		if containsAllWords(normalizedTitle, keywords) {
			sim = 1.0
			score += allWordsBonus
		} else {
			sim = similarity.Ratio(normalizedMessage, normalizedTitle)
		}

		if score > 0 {
			candidates = append(candidates, CollectionCandidate{
				Collection: col,
				Candidate:  Candidate{MatchScore: score, Similarity: sim},
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].MatchScore != candidates[j].MatchScore {
			return candidates[i].MatchScore > candidates[j].MatchScore
		}
		return candidates[i].Similarity > candidates[j].Similarity
	})
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}
	return candidates
}
