package google

import (
	"context"
	"errors"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/angeloszaimis/libtranslate/internal/language"
	"github.com/angeloszaimis/libtranslate/internal/provider"
	"github.com/angeloszaimis/libtranslate/internal/transport"
)

const mobileURL = "https://translate.google.com/m"

var errorTitle = regexp.MustCompile(`^Error (\d+) \((.*)\)!!`)

// MobileTranslate scrapes the mobile translation page. It only returns the
// translated text, and the page rejects long inputs with a 400.
type MobileTranslate struct {
	endpoint
}

// NewMobileTranslate creates the backend.
func NewMobileTranslate(client transport.Getter, opts ...Option) *MobileTranslate {
	return &MobileTranslate{endpoint: newEndpoint(client, mobileURL, opts)}
}

// Translate implements provider.Translator.
func (m *MobileTranslate) Translate(ctx context.Context, text string, source, target language.Language) (provider.Translation, error) {
	params := url.Values{}
	params.Set("hl", "en")
	params.Set("sl", source.Code())
	params.Set("tl", target.Code())
	params.Set("q", text)

	body, err := m.get(ctx, params)
	if err != nil {
		return provider.Translation{}, err
	}

	result, err := parseMobile(body)
	if err != nil {
		return provider.Translation{}, err
	}

	return provider.Translation{
		Source: language.Unknown,
		Target: target,
		Text:   result,
	}, nil
}

func parseMobile(body string) (string, error) {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return "", &provider.ParseError{Format: "html", Err: err}
	}

	container := find(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "div" && hasClass(n, "result-container")
	})
	if container == nil {
		if statusErr := errorPage(doc); statusErr != nil {
			return "", statusErr
		}
		return "", &provider.ParseError{
			Format: "html",
			Err:    errors.New(`no <div class="result-container"> element`),
		}
	}

	child := container.FirstChild
	if child == nil {
		return "", provider.ErrEmptyResult
	}
	if child.Type != html.TextNode {
		return "", unexpected(body)
	}
	if strings.TrimSpace(child.Data) == "" {
		return "", provider.ErrEmptyResult
	}

	return child.Data, nil
}

// errorPage recognises Google's "Error 400 (Bad Request)!!1" pages.
func errorPage(doc *html.Node) error {
	title := find(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "title"
	})
	if title == nil || title.FirstChild == nil {
		return nil
	}

	m := errorTitle.FindStringSubmatch(title.FirstChild.Data)
	if m == nil {
		return nil
	}

	code, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &transport.StatusError{Code: code, URL: mobileURL}
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}
