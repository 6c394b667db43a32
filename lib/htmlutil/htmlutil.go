// Package htmlutil holds the small html/goquery helpers shared by the
// source adapters.
package htmlutil

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

// CleanText collapses runs of whitespace and trims, wiki table cells come
// with a lot of both.
func CleanText(s string) string {
	return strings.TrimSpace(innerWhitespace.ReplaceAllString(s, " "))
}

var numberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// ParseNumber pulls the first numeric token out of a stat cell like
// "45 → 120" or "8.4s", returning false when there is none.
func ParseNumber(s string) (float64, bool) {
	token := numberPattern.FindString(s)
	if token == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
