package scoring

import (
	"testing"

	"shopbot-be/pkg/catalog"
)

func article(title, content, url string) catalog.BlogArticle {
	return catalog.BlogArticle{Title: title, Content: content, URL: url}
}

func TestRankBlogsTitleOutweighsBody(t *testing.T) {
	articles := []catalog.BlogArticle{
		article("Caring for your tiles", "General maintenance advice for natural stone.", "/blogs/news/care"),
		article("Studio news", "We published a guide about grout cleaning last week, grout is tricky.", "/blogs/news/studio"),
	}

	got := RankBlogs(articles, "grout", noneShown)
	if len(got) == 0 {
		t.Fatal("expected candidates")
	}
	// "grout" appears in neither title, so the titled-subset filter is a
	// no-op and body hits decide the order.
	if got[0].Article.URL != "/blogs/news/studio" {
		t.Errorf("more body hits should rank first, got %q", got[0].Article.URL)
	}
}

func TestRankBlogsPrefersTitledSubset(t *testing.T) {
	articles := []catalog.BlogArticle{
		article("Grout guide", "Short note.", "/blogs/news/guide"),
		article("Weekly roundup", "Everything about grout, grout and more grout in one post about grout.", "/blogs/news/roundup"),
	}

	got := RankBlogs(articles, "grout", noneShown)
	if len(got) == 0 {
		t.Fatal("expected candidates")
	}
	// The roundup has far more body hits, but only the guide mentions the
	// keyword in its title, so the titled subset wins the cut.
	if len(got) != 1 || got[0].Article.URL != "/blogs/news/guide" {
		t.Errorf("titled subset should be preferred, got %+v", got)
	}
}

func TestRankBlogsStrongMatchBonus(t *testing.T) {
	articles := []catalog.BlogArticle{
		article("Grout tips", "body", "/a"),
	}
	got := RankBlogs(articles, "grout", noneShown)
	if len(got) != 1 {
		t.Fatal("expected one candidate")
	}
	// title hit 6 + all-words 10 + strong bonus 5
	if got[0].MatchScore != 21 {
		t.Errorf("MatchScore = %d, want 21", got[0].MatchScore)
	}
}

func TestRankBlogsSessionExclusion(t *testing.T) {
	articles := []catalog.BlogArticle{
		article("Grout tips", "body", "/seen"),
		article("Grout tricks", "body", "/fresh"),
	}
	wasShown := func(url string) bool { return url == "/seen" }

	got := RankBlogs(articles, "grout", wasShown)
	for _, c := range got {
		if c.Article.URL == "/seen" {
			t.Error("shown article surfaced again")
		}
	}
	if len(got) != 1 {
		t.Errorf("want 1 candidate, got %d", len(got))
	}
}

func TestRankBlogsTopThree(t *testing.T) {
	var articles []catalog.BlogArticle
	for _, u := range []string{"/a", "/b", "/c", "/d"} {
		articles = append(articles, article("Grout story "+u, "body", u))
	}
	got := RankBlogs(articles, "grout", noneShown)
	if len(got) != 3 {
		t.Errorf("want top 3, got %d", len(got))
	}
}

func TestRankBlogsNoCandidates(t *testing.T) {
	if got := RankBlogs(nil, "grout", noneShown); got != nil {
		t.Errorf("want nil for empty input, got %+v", got)
	}
}
