package profile

import (
	"sort"

	"github.com/nikogura/portfolio/pkg/i18n"
)

// Text is a string localized per locale.
type Text map[i18n.Lang]string

// TextList is a list of strings localized per locale.
type TextList map[i18n.Lang][]string

// Get returns the text for lang.
func (t Text) Get(lang i18n.Lang) (text string) {
	text = t[lang]
	return text
}

// Get returns the list for lang.
func (t TextList) Get(lang i18n.Lang) (list []string) {
	list = t[lang]
	return list
}

// Profile is the complete content record of the site.
type Profile struct {
	Name           string           `json:"name"                     yaml:"name"`
	Avatar         string           `json:"avatar,omitempty"         yaml:"avatar,omitempty"`
	Title          Text             `json:"title"                    yaml:"title"`
	Bio            Text             `json:"bio"                      yaml:"bio"`
	Location       string           `json:"location"                 yaml:"location"`
	Social         Social           `json:"social"                   yaml:"social"`
	Experience     []WorkExperience `json:"experience"               yaml:"experience"`
	Certifications []Certification  `json:"certifications"           yaml:"certifications"`
	Speaking       []Speaking       `json:"speaking"                 yaml:"speaking"`
	Education      []Education      `json:"education"                yaml:"education"`
	Skills         []SkillCategory  `json:"skills"                   yaml:"skills"`
}

// WorkExperience is a single position.  An empty EndDate means the position is current.
type WorkExperience struct {
	Company      string   `json:"company"                yaml:"company"`
	Position     Text     `json:"position"               yaml:"position"`
	Location     string   `json:"location"               yaml:"location"`
	StartDate    string   `json:"startDate"              yaml:"startDate"`
	EndDate      string   `json:"endDate,omitempty"      yaml:"endDate,omitempty"`
	Description  TextList `json:"description"            yaml:"description"`
	Technologies []string `json:"technologies,omitempty" yaml:"technologies,omitempty"`
}

// Certification is a professional certification.  An empty ExpiryDate means it does not expire.
type Certification struct {
	Name           string `json:"name"                     yaml:"name"`
	Issuer         string `json:"issuer"                   yaml:"issuer"`
	IssueDate      string `json:"issueDate"                yaml:"issueDate"`
	ExpiryDate     string `json:"expiryDate,omitempty"     yaml:"expiryDate,omitempty"`
	CredentialID   string `json:"credentialId,omitempty"   yaml:"credentialId,omitempty"`
	CredentialURL  string `json:"credentialUrl,omitempty"  yaml:"credentialUrl,omitempty"`
	BadgeURL       string `json:"badgeUrl,omitempty"       yaml:"badgeUrl,omitempty"`
	CertificateURL string `json:"certificateUrl,omitempty" yaml:"certificateUrl,omitempty"`
}

// Speaking is a talk given at an event.
type Speaking struct {
	Title       Text   `json:"title"                 yaml:"title"`
	Event       string `json:"event"                 yaml:"event"`
	Date        string `json:"date"                  yaml:"date"`
	Location    string `json:"location"              yaml:"location"`
	Description Text   `json:"description,omitempty" yaml:"description,omitempty"`
	SlidesURL   string `json:"slidesUrl,omitempty"   yaml:"slidesUrl,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty"    yaml:"videoUrl,omitempty"`
}

// Education is a degree.
type Education struct {
	School       string   `json:"school"                 yaml:"school"`
	Degree       Text     `json:"degree"                 yaml:"degree"`
	Field        Text     `json:"field"                  yaml:"field"`
	StartDate    string   `json:"startDate"              yaml:"startDate"`
	EndDate      string   `json:"endDate,omitempty"      yaml:"endDate,omitempty"`
	GPA          string   `json:"gpa,omitempty"          yaml:"gpa,omitempty"`
	Achievements TextList `json:"achievements,omitempty" yaml:"achievements,omitempty"`
}

// SkillCategory groups related skills.
type SkillCategory struct {
	Name   Text     `json:"name"   yaml:"name"`
	Skills []string `json:"skills" yaml:"skills"`
}

// Social maps a platform name to a URL or contact address.
type Social map[string]string

// SocialLink is one entry of Social in display order.
type SocialLink struct {
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url"      yaml:"url"`
}

//nolint:gochecknoglobals // Display order of well-known platforms
var platformOrder = map[string]int{
	"github":   1,
	"linkedin": 2,
	"twitter":  3,
	"youtube":  4,
	"email":    5,
	"website":  6,
}

// Links returns the non-empty entries, well-known platforms first and the rest alphabetically.
func (s Social) Links() (links []SocialLink) {
	links = make([]SocialLink, 0, len(s))
	for platform, url := range s {
		if url == "" {
			continue
		}
		links = append(links, SocialLink{Platform: platform, URL: url})
	}

	sort.Slice(links, func(i, j int) bool {
		ri, iKnown := platformOrder[links[i].Platform]
		rj, jKnown := platformOrder[links[j].Platform]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return links[i].Platform < links[j].Platform
		}
	})

	return links
}
