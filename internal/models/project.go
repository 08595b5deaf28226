package models

import (
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Project represents a single entry in the portfolio catalog.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Href        string `json:"href,omitempty"`
	ImgSrc      string `json:"imgSrc,omitempty"`

	// Slug is derived from the title at load time and is not part of the
	// storage form.
	Slug string `json:"-"`
}

// ProjectList wraps the ordered catalog. Slice order is display order and is
// preserved verbatim from the storage file through rendering.
type ProjectList struct {
	Projects []Project `json:"projects"`
}

// Validate enforces the authoring contract: a card must have a title and a
// description. Broken link fields are handled separately because they are
// non-fatal.
func (p Project) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.By(notBlank("title"))),
		validation.Field(&p.Description, validation.Required, validation.By(notBlank("description"))),
	)
}

// LinkWarnings reports malformed href or imgSrc values. The record still
// renders; the link or image just won't resolve at runtime.
func (p Project) LinkWarnings() []string {
	var warns []string
	if p.Href != "" {
		u, err := url.Parse(p.Href)
		if err != nil || u.Scheme == "" || u.Host == "" {
			warns = append(warns, "href is not an absolute URL: "+p.Href)
		}
	}
	if p.ImgSrc != "" {
		if _, err := url.Parse(p.ImgSrc); err != nil {
			warns = append(warns, "imgSrc is not a valid path: "+p.ImgSrc)
		}
	}
	return warns
}

func notBlank(field string) validation.RuleFunc {
	return func(value any) error {
		if strings.TrimSpace(value.(string)) == "" {
			return validation.NewError("portfolio."+field+"_blank", field+" must not be blank")
		}
		return nil
	}
}
