// Package guides scrapes community guide pages for the derived-analysis
// section of a record: roles, strengths, weaknesses and usage notes. It
// runs after the wiki source, so its keys win conflicts in the fold.
package guides

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"aldb-backend/lib/equipment"
	"aldb-backend/lib/htmlutil"
	"aldb-backend/lib/scrapers/session"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("aldb.lib.scrapers.guides")

const defaultBaseUrl = "https://guides.azurlane.community"

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
	return "community"
}

func (s Scraper) Fetch(ctx context.Context, itemName string) (equipment.Fragment, error) {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()

	link := fmt.Sprintf("%s/equipment/%s", s.baseUrl, url.PathEscape(Slug(itemName)))
	res, err := s.session.Http.R().
		SetContext(ctx).
		Get(link)
	s.session.Politeness(ctx)
	if err != nil {
		return equipment.Fragment{}, err
	}
	if res.StatusCode() == 404 {
		slog.DebugContext(ctx, "no guide for item", "item", itemName)
		return equipment.Fragment{}, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return equipment.Fragment{}, err
	}

	frag := ParsePage(doc)
	if !frag.Empty() {
		frag.URL = link
	}
	return frag, nil
}

// ParsePage extracts the analysis sections from a guide page. Exported
// for fixture-driven tests.
func ParsePage(doc *goquery.Document) equipment.Fragment {
	var frag equipment.Fragment

	doc.Find("ul.roles li").Each(func(_ int, li *goquery.Selection) {
		frag.DerivedAnalysis.PrimaryRoles = appendClean(frag.DerivedAnalysis.PrimaryRoles, li.Text())
	})
	doc.Find("div.pros li").Each(func(_ int, li *goquery.Selection) {
		frag.DerivedAnalysis.Strengths = appendClean(frag.DerivedAnalysis.Strengths, li.Text())
	})
	doc.Find("div.cons li").Each(func(_ int, li *goquery.Selection) {
		frag.DerivedAnalysis.Weaknesses = appendClean(frag.DerivedAnalysis.Weaknesses, li.Text())
	})

	var notes []string
	doc.Find("div.verdict p").Each(func(_ int, p *goquery.Selection) {
		if text := htmlutil.CleanText(p.Text()); text != "" {
			notes = append(notes, text)
		}
	})
	frag.DerivedAnalysis.Notes = strings.Join(notes, " ")

	return frag
}

func appendClean(list []string, text string) []string {
	text = htmlutil.CleanText(text)
	if text == "" {
		return list
	}
	return append(list, text)
}

// Slug converts an item name to the guide site's URL form: lowercase,
// punctuation stripped, spaces to dashes.
func Slug(itemName string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(itemName) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
