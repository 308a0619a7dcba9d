package content

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"rallypointwellness.com/site/internal/audit"
	"rallypointwellness.com/site/internal/brand"
	"rallypointwellness.com/site/internal/format"
	"rallypointwellness.com/site/internal/nav"
	"rallypointwellness.com/site/internal/ui"
)

// FieldError describes one rejected field.
type FieldError struct {
	Field string
	Rule  string
	Value string
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Value != "" {
			parts = append(parts, fmt.Sprintf("%s: %s (%q)", f.Field, f.Rule, f.Value))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Rule))
	}
	return "content: invalid document: " + strings.Join(parts, "; ")
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("href", func(fl validator.FieldLevel) bool {
			return validHref(fl.Field().String())
		})
		_ = v.RegisterValidation("icon", func(fl validator.FieldLevel) bool {
			return ui.HasIcon(fl.Field().String())
		})
		_ = v.RegisterValidation("hexrgb", func(fl validator.FieldLevel) bool {
			return brand.ValidHex(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// Validate checks a document. The returned error is a *ValidationError when
// fields are rejected. In-page links inside markdown copy are held to the same
// section registry as nav links.
func Validate(s *Site) error {
	if s == nil {
		return errors.New("content: nil document")
	}
	var fields []FieldError
	if err := validatorInstance().Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("content: validate: %w", err)
		}
		for _, fe := range verrs {
			fields = append(fields, FieldError{
				Field: strings.TrimPrefix(fe.Namespace(), "Site."),
				Rule:  fe.Tag(),
				Value: fmt.Sprint(fe.Value()),
			})
		}
	}
	for i, f := range s.Resources.FAQs {
		fields = append(fields, markdownAnchors(fmt.Sprintf("Resources.FAQs[%d].Answer", i), f.Answer)...)
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// markdownAnchors renders src the way the page does and rejects "#id" links
// whose id is not a page section.
func markdownAnchors(field, src string) []FieldError {
	if strings.TrimSpace(src) == "" {
		return nil
	}
	rendered, err := format.Markdown(src)
	if err != nil {
		return []FieldError{{Field: field, Rule: "markdown"}}
	}
	rep, err := audit.Anchors(strings.NewReader(rendered))
	if err != nil {
		return []FieldError{{Field: field, Rule: "markdown"}}
	}
	targets := make([]string, 0, len(rep.Links))
	for target := range rep.Links {
		targets = append(targets, target)
	}
	sort.Strings(targets)

	var out []FieldError
	for _, target := range targets {
		if !nav.IsSection(target) {
			out = append(out, FieldError{Field: field, Rule: "href", Value: nav.Anchor(target)})
		}
	}
	return out
}

// validHref accepts in-page section anchors, the bare "#" placeholder,
// site-relative paths and absolute http(s), mailto and tel links.
func validHref(href string) bool {
	href = strings.TrimSpace(href)
	switch {
	case href == "#":
		return true
	case strings.HasPrefix(href, "#"):
		return nav.IsAnchor(href)
	case strings.HasPrefix(href, "/"):
		return !strings.HasPrefix(href, "//")
	case strings.HasPrefix(href, "mailto:"), strings.HasPrefix(href, "tel:"):
		return len(href) > len("tel:")
	}
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
