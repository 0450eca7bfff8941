package profile

import (
	"github.com/nikogura/portfolio/pkg/dates"
	"github.com/nikogura/portfolio/pkg/i18n"
	"github.com/pkg/errors"
)

// ErrUnsupportedLocale is returned when the profile carries no content for a locale.
var ErrUnsupportedLocale = errors.New("unsupported locale")

// View is the profile resolved for one locale with every date pre-formatted.
// It is what page renderers consume.
type View struct {
	Lang           i18n.Lang           `json:"lang"                     yaml:"lang"`
	Name           string              `json:"name"                     yaml:"name"`
	Avatar         string              `json:"avatar,omitempty"         yaml:"avatar,omitempty"`
	Title          string              `json:"title"                    yaml:"title"`
	Bio            string              `json:"bio"                      yaml:"bio"`
	Location       string              `json:"location"                 yaml:"location"`
	Social         []SocialLink        `json:"social"                   yaml:"social"`
	Experience     []ExperienceView    `json:"experience"               yaml:"experience"`
	Certifications []CertificationView `json:"certifications"           yaml:"certifications"`
	Speaking       []SpeakingView      `json:"speaking"                 yaml:"speaking"`
	Education      []EducationView     `json:"education"                yaml:"education"`
	Skills         []SkillCategoryView `json:"skills"                   yaml:"skills"`
}

// ExperienceView is a localized WorkExperience.
type ExperienceView struct {
	Company      string   `json:"company"                yaml:"company"`
	Position     string   `json:"position"               yaml:"position"`
	Location     string   `json:"location"               yaml:"location"`
	StartDate    string   `json:"startDate"              yaml:"startDate"`
	EndDate      string   `json:"endDate,omitempty"      yaml:"endDate,omitempty"`
	Current      bool     `json:"current"                yaml:"current"`
	Period       string   `json:"period"                 yaml:"period"`
	Description  []string `json:"description"            yaml:"description"`
	Technologies []string `json:"technologies,omitempty" yaml:"technologies,omitempty"`
}

// CertificationView is a Certification with formatted dates.
type CertificationView struct {
	Name           string `json:"name"                     yaml:"name"`
	Issuer         string `json:"issuer"                   yaml:"issuer"`
	IssueDate      string `json:"issueDate"                yaml:"issueDate"`
	Issued         string `json:"issued"                   yaml:"issued"`
	ExpiryDate     string `json:"expiryDate,omitempty"     yaml:"expiryDate,omitempty"`
	Expires        string `json:"expires,omitempty"        yaml:"expires,omitempty"`
	CredentialID   string `json:"credentialId,omitempty"   yaml:"credentialId,omitempty"`
	CredentialURL  string `json:"credentialUrl,omitempty"  yaml:"credentialUrl,omitempty"`
	BadgeURL       string `json:"badgeUrl,omitempty"       yaml:"badgeUrl,omitempty"`
	CertificateURL string `json:"certificateUrl,omitempty" yaml:"certificateUrl,omitempty"`
}

// SpeakingView is a localized talk.
type SpeakingView struct {
	Title       string `json:"title"                 yaml:"title"`
	Event       string `json:"event"                 yaml:"event"`
	Date        string `json:"date"                  yaml:"date"`
	FullDate    string `json:"fullDate"              yaml:"fullDate"`
	Location    string `json:"location"              yaml:"location"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	SlidesURL   string `json:"slidesUrl,omitempty"   yaml:"slidesUrl,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty"    yaml:"videoUrl,omitempty"`
}

// EducationView is a localized degree.
type EducationView struct {
	School       string   `json:"school"                 yaml:"school"`
	Degree       string   `json:"degree"                 yaml:"degree"`
	Field        string   `json:"field"                  yaml:"field"`
	StartDate    string   `json:"startDate"              yaml:"startDate"`
	EndDate      string   `json:"endDate,omitempty"      yaml:"endDate,omitempty"`
	Period       string   `json:"period"                 yaml:"period"`
	GPA          string   `json:"gpa,omitempty"          yaml:"gpa,omitempty"`
	Achievements []string `json:"achievements,omitempty" yaml:"achievements,omitempty"`
}

// SkillCategoryView is a localized skill group.
type SkillCategoryView struct {
	Name   string   `json:"name"   yaml:"name"`
	Skills []string `json:"skills" yaml:"skills"`
}

// Localize resolves every localized field for lang, matching the tag case-insensitively.
// A locale the profile has no content for fails with ErrUnsupportedLocale.  Malformed dates fail too.
func (p *Profile) Localize(lang i18n.Lang) (view View, err error) {
	lang = i18n.Normalize(string(lang))
	if _, ok := p.Title[lang]; !ok {
		err = errors.Wrapf(ErrUnsupportedLocale, "no %q content in profile", lang)
		return view, err
	}

	view = View{
		Lang:           lang,
		Name:           p.Name,
		Avatar:         p.Avatar,
		Title:          p.Title.Get(lang),
		Bio:            p.Bio.Get(lang),
		Location:       p.Location,
		Social:         p.Social.Links(),
		Experience:     make([]ExperienceView, 0, len(p.Experience)),
		Certifications: make([]CertificationView, 0, len(p.Certifications)),
		Speaking:       make([]SpeakingView, 0, len(p.Speaking)),
		Education:      make([]EducationView, 0, len(p.Education)),
		Skills:         make([]SkillCategoryView, 0, len(p.Skills)),
	}

	for i, w := range p.Experience {
		var period string
		period, err = dates.FormatDateRange(w.StartDate, w.EndDate, lang)
		if err != nil {
			err = errors.Wrapf(err, "experience[%d] (%s)", i, w.Company)
			return view, err
		}

		view.Experience = append(view.Experience, ExperienceView{
			Company:      w.Company,
			Position:     w.Position.Get(lang),
			Location:     w.Location,
			StartDate:    w.StartDate,
			EndDate:      w.EndDate,
			Current:      w.EndDate == "",
			Period:       period,
			Description:  cloneStrings(w.Description.Get(lang)),
			Technologies: cloneStrings(w.Technologies),
		})
	}

	for i, c := range p.Certifications {
		var cv CertificationView
		cv, err = localizeCertification(c, lang)
		if err != nil {
			err = errors.Wrapf(err, "certifications[%d] (%s)", i, c.Name)
			return view, err
		}
		view.Certifications = append(view.Certifications, cv)
	}

	for i, s := range p.Speaking {
		var full string
		full, err = dates.FormatFullDate(s.Date, lang)
		if err != nil {
			err = errors.Wrapf(err, "speaking[%d] (%s)", i, s.Event)
			return view, err
		}

		view.Speaking = append(view.Speaking, SpeakingView{
			Title:       s.Title.Get(lang),
			Event:       s.Event,
			Date:        s.Date,
			FullDate:    full,
			Location:    s.Location,
			Description: s.Description.Get(lang),
			SlidesURL:   s.SlidesURL,
			VideoURL:    s.VideoURL,
		})
	}

	for i, e := range p.Education {
		var period string
		period, err = dates.FormatDateRange(e.StartDate, e.EndDate, lang)
		if err != nil {
			err = errors.Wrapf(err, "education[%d] (%s)", i, e.School)
			return view, err
		}

		view.Education = append(view.Education, EducationView{
			School:       e.School,
			Degree:       e.Degree.Get(lang),
			Field:        e.Field.Get(lang),
			StartDate:    e.StartDate,
			EndDate:      e.EndDate,
			Period:       period,
			GPA:          e.GPA,
			Achievements: cloneStrings(e.Achievements.Get(lang)),
		})
	}

	for _, s := range p.Skills {
		view.Skills = append(view.Skills, SkillCategoryView{
			Name:   s.Name.Get(lang),
			Skills: cloneStrings(s.Skills),
		})
	}

	return view, err
}

func localizeCertification(c Certification, lang i18n.Lang) (cv CertificationView, err error) {
	cv = CertificationView{
		Name:           c.Name,
		Issuer:         c.Issuer,
		IssueDate:      c.IssueDate,
		ExpiryDate:     c.ExpiryDate,
		CredentialID:   c.CredentialID,
		CredentialURL:  c.CredentialURL,
		BadgeURL:       c.BadgeURL,
		CertificateURL: c.CertificateURL,
	}

	cv.Issued, err = dates.FormatDate(c.IssueDate, lang)
	if err != nil {
		return cv, err
	}

	cv.Expires, err = dates.FormatDate(c.ExpiryDate, lang)
	if err != nil {
		err = errors.Wrapf(err, "expiry %q", c.ExpiryDate)
		return cv, err
	}

	return cv, err
}
