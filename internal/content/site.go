// Package content models every literal on the page: copy, image URLs and the
// lists that are rendered as repeated markup. A document is loaded once from
// YAML and never mutated afterwards.
package content

import (
	"strings"

	"rallypointwellness.com/site/internal/brand"
	"rallypointwellness.com/site/internal/nav"
)

// Site is the complete content document for the page.
type Site struct {
	Brand          Brand          `yaml:"brand"`
	Contact        Contact        `yaml:"contact" validate:"required"`
	SEO            SEO            `yaml:"seo"`
	Nav            []Link         `yaml:"nav" validate:"dive"`
	BookCTA        Link           `yaml:"book_cta"`
	Hero           Hero           `yaml:"hero"`
	Services       Services       `yaml:"services"`
	Responders     Responders     `yaml:"responders"`
	Telehealth     Telehealth     `yaml:"telehealth"`
	Insurance      Insurance      `yaml:"insurance"`
	Team           Team           `yaml:"team"`
	Resources      Resources      `yaml:"resources"`
	ContactSection ContactSection `yaml:"contact_section"`
	Footer         Footer         `yaml:"footer"`
}

type Brand struct {
	Name     string        `yaml:"name"`
	Monogram string        `yaml:"monogram" validate:"omitempty,max=3"`
	Tagline  string        `yaml:"tagline"`
	Palette  brand.Palette `yaml:"palette"`
}

// Contact holds the outbound channels shown in the top bar and contact section.
type Contact struct {
	Phone  string `yaml:"phone" validate:"required"`
	Email  string `yaml:"email" validate:"required,email"`
	Region string `yaml:"region"`
}

type SEO struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image" validate:"omitempty,url"`
}

// Link is a labelled href. In-page hrefs must name a page section.
type Link struct {
	Label string `yaml:"label" validate:"required"`
	Href  string `yaml:"href" validate:"required,href"`
}

type Image struct {
	Src string `yaml:"src" validate:"omitempty,url"`
	Alt string `yaml:"alt"`
}

type Stat struct {
	Value string `yaml:"value" validate:"required"`
	Label string `yaml:"label"`
}

type Feature struct {
	Icon  string `yaml:"icon" validate:"omitempty,icon"`
	Title string `yaml:"title" validate:"required"`
	Desc  string `yaml:"desc"`
}

type Hero struct {
	Title        string `yaml:"title"`
	Highlight    string `yaml:"highlight"`
	Lede         string `yaml:"lede"`
	PrimaryCTA   Link   `yaml:"primary_cta"`
	SecondaryCTA Link   `yaml:"secondary_cta"`
	Stats        []Stat `yaml:"stats" validate:"dive"`
	Image        Image  `yaml:"image"`
	Caption      string `yaml:"caption"`
}

// Services holds the feature grid. Rows are rendered as separate grids.
type Services struct {
	Title string      `yaml:"title"`
	Lede  string      `yaml:"lede"`
	Rows  [][]Feature `yaml:"rows" validate:"dive,dive"`
}

type Responders struct {
	Title         string   `yaml:"title"`
	Lede          string   `yaml:"lede"`
	Points        []string `yaml:"points"`
	CTA           Link     `yaml:"cta"`
	ConcernsTitle string   `yaml:"concerns_title"`
	Concerns      []string `yaml:"concerns"`
}

type Telehealth struct {
	Title  string   `yaml:"title"`
	Lede   string   `yaml:"lede"`
	Image  Image    `yaml:"image"`
	Points []string `yaml:"points"`
	Note   string   `yaml:"note"`
}

type Insurance struct {
	Title string     `yaml:"title"`
	Lede  string     `yaml:"lede"`
	Cards []InfoCard `yaml:"cards" validate:"dive"`
}

// InfoCard is a titled card of short paragraphs.
type InfoCard struct {
	Title string   `yaml:"title" validate:"required"`
	Lines []string `yaml:"lines"`
}

type Team struct {
	Title   string   `yaml:"title"`
	Lede    string   `yaml:"lede"`
	Members []Member `yaml:"members" validate:"dive"`
}

// Member is a team bio card. Placeholder entries with the same name are expected.
type Member struct {
	Name  string `yaml:"name" validate:"required"`
	Role  string `yaml:"role"`
	Image string `yaml:"image" validate:"omitempty,url"`
}

type Resources struct {
	FormsTitle string `yaml:"forms_title"`
	FormsLede  string `yaml:"forms_lede"`
	Forms      []Link `yaml:"forms" validate:"dive"`
	FAQTitle   string `yaml:"faq_title"`
	FAQs       []FAQ  `yaml:"faqs" validate:"dive"`
}

// FAQ answers are markdown.
type FAQ struct {
	Question string `yaml:"question" validate:"required"`
	Answer   string `yaml:"answer"`
}

type ContactSection struct {
	Title          string `yaml:"title"`
	Lede           string `yaml:"lede"`
	Disclaimer     string `yaml:"disclaimer"`
	Submit         string `yaml:"submit"`
	Acknowledgment string `yaml:"acknowledgment"`
}

type Footer struct {
	Blurb         string `yaml:"blurb"`
	ExploreTitle  string `yaml:"explore_title"`
	Explore       []Link `yaml:"explore" validate:"dive"`
	PoliciesTitle string `yaml:"policies_title"`
	Policies      []Link `yaml:"policies" validate:"dive"`
}

const defaultAcknowledgment = "Thanks! We will contact you shortly."

// normalize trims identity fields and fills brand defaults.
func (s *Site) normalize() {
	s.Brand.Name = firstNonEmpty(s.Brand.Name, brand.Name)
	s.Brand.Monogram = firstNonEmpty(s.Brand.Monogram, brand.Monogram)
	s.Brand.Tagline = firstNonEmpty(s.Brand.Tagline, brand.Tagline)
	s.Brand.Palette = s.Brand.Palette.Merge(brand.Default)
	s.Contact.Phone = strings.TrimSpace(s.Contact.Phone)
	s.Contact.Email = strings.TrimSpace(s.Contact.Email)
	s.ContactSection.Acknowledgment = firstNonEmpty(s.ContactSection.Acknowledgment, defaultAcknowledgment)
	s.ContactSection.Submit = firstNonEmpty(s.ContactSection.Submit, "Send message")
	s.SEO.Title = firstNonEmpty(s.SEO.Title, s.Brand.Name)
	s.SEO.Description = firstNonEmpty(s.SEO.Description, s.Hero.Lede)
}

// NavItems converts the top-bar links for the nav builder.
func (s *Site) NavItems() []nav.Item {
	return toNavItems(s.Nav)
}

// ExploreItems converts the footer explore column for the nav builder.
func (s *Site) ExploreItems() []nav.Item {
	return toNavItems(s.Footer.Explore)
}

// PolicyItems converts the footer policies column for the nav builder.
func (s *Site) PolicyItems() []nav.Item {
	return toNavItems(s.Footer.Policies)
}

func toNavItems(links []Link) []nav.Item {
	out := make([]nav.Item, 0, len(links))
	for _, l := range links {
		out = append(out, nav.Item{Label: l.Label, Href: l.Href})
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
