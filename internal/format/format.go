package format

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var (
	mdOnce   sync.Once
	md       goldmark.Markdown
	mdPolicy *bluemonday.Policy
)

func markdown() (goldmark.Markdown, *bluemonday.Policy) {
	mdOnce.Do(func() {
		md = goldmark.New(goldmark.WithExtensions(extension.GFM))
		mdPolicy = bluemonday.UGCPolicy()
		mdPolicy.RequireNoFollowOnLinks(true)
	})
	return md, mdPolicy
}

// Markdown renders copy written in markdown to sanitized HTML.
func Markdown(src string) (string, error) {
	conv, policy := markdown()
	var buf bytes.Buffer
	if err := conv.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("format: markdown: %w", err)
	}
	return strings.TrimSpace(policy.Sanitize(buf.String())), nil
}

// InlineMarkdown renders a single line of markdown without the wrapping paragraph.
// Multi-paragraph input is returned with its block markup intact.
func InlineMarkdown(src string) (string, error) {
	out, err := Markdown(src)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out, nil
}

// PlainText flattens markdown to its visible text, for places that cannot carry
// markup such as structured data. Raw HTML is dropped.
func PlainText(src string) string {
	conv, _ := markdown()
	source := []byte(src)
	doc := conv.Parser().Parse(text.NewReader(source))

	var sb strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock {
				sb.WriteByte(' ')
			}
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			sb.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(node.Value)
		case *ast.AutoLink:
			sb.Write(node.Label(source))
		case *ast.RawHTML, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.Join(strings.Fields(sb.String()), " ")
}

// PhoneHref builds a tel: link from a display number.
// Example: PhoneHref("(555) 555-5555") => "tel:+15555555555"
func PhoneHref(display string) string {
	var digits strings.Builder
	for _, c := range display {
		if c >= '0' && c <= '9' {
			digits.WriteRune(c)
		}
	}
	d := digits.String()
	if d == "" {
		return ""
	}
	if len(d) == 10 {
		d = "1" + d
	}
	return "tel:+" + d
}

// MailtoHref builds a mailto: link.
func MailtoHref(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return "mailto:" + email
}

// Copyright formats the footer notice.
func Copyright(year int, name string) string {
	return fmt.Sprintf("© %d %s. All rights reserved.", year, name)
}
