// Package alwiki scrapes equipment stat pages from the Azur Lane wiki.
// It is the highest-priority source: it contributes the numerical and
// qualitative stat sections plus acquisition metadata.
package alwiki

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"aldb-backend/lib/equipment"
	"aldb-backend/lib/scrapers/session"

	"github.com/PuerkitoBio/goquery"
	"github.com/antzucaro/matchr"
	"go.opentelemetry.io/otel/codes"
)

const defaultBaseUrl = "https://azurlane.koumakan.jp"

// titles below this similarity to the requested item name are treated as
// "page not found" rather than risked as a wrong-page scrape
const minTitleSimilarity = 0.85

type Options struct {
	BaseUrl string
}

type Scraper struct {
	session *session.Session
	baseUrl string
}

func New(s *session.Session, opts Options) Scraper {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = defaultBaseUrl
	}
	return Scraper{session: s, baseUrl: baseUrl}
}

func (s Scraper) Name() string {
	return "wiki"
}

// Fetch resolves the item name to a wiki page through the opensearch
// endpoint, then scrapes the page's infobox into a fragment. An item
// without a sufficiently similar page title yields an empty fragment.
func (s Scraper) Fetch(ctx context.Context, itemName string) (equipment.Fragment, error) {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()

	title, err := s.resolveTitle(ctx, itemName)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "resolve title")
		return equipment.Fragment{}, err
	}
	if title == "" {
		slog.DebugContext(ctx, "no wiki page for item", "item", itemName)
		return equipment.Fragment{}, nil
	}

	pageUrl := fmt.Sprintf("%s/wiki/%s", s.baseUrl, url.PathEscape(strings.ReplaceAll(title, " ", "_")))
	res, err := s.session.Http.R().
		SetContext(ctx).
		Get(pageUrl)
	s.session.Politeness(ctx)
	if err != nil {
		return equipment.Fragment{}, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return equipment.Fragment{}, err
	}

	frag := ParsePage(doc)
	frag.URL = pageUrl
	return frag, nil
}

// resolveTitle asks the wiki's opensearch endpoint for candidate titles
// and fuzzy-matches the best one, the wiki's canonical names rarely equal
// the community spelling of an item exactly.
func (s Scraper) resolveTitle(ctx context.Context, itemName string) (string, error) {
	link := fmt.Sprintf("%s/w/api.php", s.baseUrl)
	res, err := s.session.Http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"action": "opensearch",
			"search": itemName,
			"limit":  "5",
			"format": "json",
		}).
		Get(link)
	s.session.Politeness(ctx)
	if err != nil {
		return "", err
	}

	// opensearch responds [query, [titles], [descriptions], [urls]]
	var payload []json.RawMessage
	err = json.Unmarshal(res.Body(), &payload)
	if err != nil {
		return "", fmt.Errorf("opensearch response: %w", err)
	}
	if len(payload) < 2 {
		return "", nil
	}
	var titles []string
	err = json.Unmarshal(payload[1], &titles)
	if err != nil {
		return "", fmt.Errorf("opensearch titles: %w", err)
	}

	best := ""
	bestSimilarity := 0.0
	for _, title := range titles {
		similarity := matchr.JaroWinkler(strings.ToLower(itemName), strings.ToLower(title), false)
		if similarity > bestSimilarity {
			bestSimilarity = similarity
			best = title
		}
	}
	if bestSimilarity < minTitleSimilarity {
		return "", nil
	}
	return best, nil
}
