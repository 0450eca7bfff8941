package profile

import (
	"fmt"
	"strings"

	"github.com/nikogura/portfolio/pkg/dates"
	"github.com/nikogura/portfolio/pkg/i18n"
	"github.com/pkg/errors"
)

// ErrInvalidProfile is the cause of every validation failure.
var ErrInvalidProfile = errors.New("invalid profile")

// problems collects validation failures so they can be reported together.
type problems struct {
	langs []i18n.Lang
	list  []string
}

func (p *problems) add(format string, args ...any) {
	p.list = append(p.list, fmt.Sprintf(format, args...))
}

func (p *problems) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		p.add("%s is required", field)
	}
}

func (p *problems) text(field string, t Text) {
	for _, lang := range p.langs {
		if strings.TrimSpace(t[lang]) == "" {
			p.add("%s has no %s text", field, lang)
		}
	}
}

func (p *problems) textList(field string, t TextList) {
	for _, lang := range p.langs {
		items := t[lang]
		if len(items) == 0 {
			p.add("%s has no %s entries", field, lang)
			continue
		}
		for i, item := range items {
			if strings.TrimSpace(item) == "" {
				p.add("%s[%d] is empty for %s", field, i, lang)
			}
		}
	}
}

func (p *problems) date(field, value string, allowed ...dates.Precision) {
	precision, err := dates.Classify(value)
	if err != nil {
		p.add("%s: %v", field, err)
		return
	}
	for _, a := range allowed {
		if precision == a {
			return
		}
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = a.String()
	}
	p.add("%s %q must be %s", field, value, strings.Join(names, " or "))
}

func (p *problems) dateRange(field, start, end string) {
	if start == "" || end == "" {
		return
	}
	n := min(len(start), len(end))
	if end[:n] < start[:n] {
		p.add("%s ends (%s) before it starts (%s)", field, end, start)
	}
}

// Validate checks that every localized field has text for each of langs and that all dates are well formed.
func (p *Profile) Validate(langs []i18n.Lang) (err error) {
	if len(langs) == 0 {
		err = errors.New("no locales to validate against")
		return err
	}

	c := &problems{langs: langs}

	c.required("name", p.Name)
	c.text("title", p.Title)
	c.text("bio", p.Bio)

	for platform := range p.Social {
		if strings.TrimSpace(platform) == "" {
			c.add("social has an empty platform name")
		}
	}

	for i, w := range p.Experience {
		field := fmt.Sprintf("experience[%d]", i)
		c.required(field+".company", w.Company)
		c.text(field+".position", w.Position)
		c.textList(field+".description", w.Description)
		c.date(field+".startDate", w.StartDate, dates.Month)
		if w.EndDate != "" {
			c.date(field+".endDate", w.EndDate, dates.Month)
		}
		c.dateRange(field, w.StartDate, w.EndDate)
	}

	for i, cert := range p.Certifications {
		field := fmt.Sprintf("certifications[%d]", i)
		c.required(field+".name", cert.Name)
		c.required(field+".issuer", cert.Issuer)
		c.date(field+".issueDate", cert.IssueDate, dates.Year, dates.Month)
		if cert.ExpiryDate != "" {
			c.date(field+".expiryDate", cert.ExpiryDate, dates.Year, dates.Month)
		}
		c.dateRange(field, cert.IssueDate, cert.ExpiryDate)
	}

	for i, s := range p.Speaking {
		field := fmt.Sprintf("speaking[%d]", i)
		c.text(field+".title", s.Title)
		c.required(field+".event", s.Event)
		c.date(field+".date", s.Date, dates.Day)
		if len(s.Description) > 0 {
			c.text(field+".description", s.Description)
		}
	}

	for i, e := range p.Education {
		field := fmt.Sprintf("education[%d]", i)
		c.required(field+".school", e.School)
		c.text(field+".degree", e.Degree)
		c.text(field+".field", e.Field)
		c.date(field+".startDate", e.StartDate, dates.Year, dates.Month)
		if e.EndDate != "" {
			c.date(field+".endDate", e.EndDate, dates.Year, dates.Month)
		}
		c.dateRange(field, e.StartDate, e.EndDate)
		if len(e.Achievements) > 0 {
			c.textList(field+".achievements", e.Achievements)
		}
	}

	for i, s := range p.Skills {
		field := fmt.Sprintf("skills[%d]", i)
		c.text(field+".name", s.Name)
		if len(s.Skills) == 0 {
			c.add("%s has no skills", field)
		}
	}

	if len(c.list) > 0 {
		err = errors.Wrapf(ErrInvalidProfile, "%d problem(s): %s", len(c.list), strings.Join(c.list, "; "))
		return err
	}

	return err
}
