package models

// ClientType classifies the market a brief was generated for.
type ClientType string

const (
	ClientLocal   ClientType = "local"
	ClientForeign ClientType = "foreign"
)

// Label returns the display name shown to the user.
func (c ClientType) Label() string {
	if c == ClientForeign {
		return "دولي (Global)"
	}
	return "محلي (العرب)"
}

// Difficulty is the requested challenge level.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyProfessional Difficulty = "professional"
)

func (d Difficulty) Label() string {
	if d == DifficultyProfessional {
		return "محترف"
	}
	return "مبتدئ"
}

// Brief is a generated creative assignment. A brief is immutable once it is
// embedded in a Project; before acceptance the user may apply cosmetic text
// edits on top of it.
type Brief struct {
	ID                       string     `json:"id"`
	ProjectName              string     `json:"projectName"`
	CompanyName              string     `json:"companyName"`
	Industry                 string     `json:"industry"`
	AboutCompany             string     `json:"aboutCompany"`
	TargetAudience           string     `json:"targetAudience"`
	ProjectGoal              string     `json:"projectGoal"`
	ContentSummary           string     `json:"contentSummary"`
	RequiredDeliverables     []string   `json:"requiredDeliverables"`
	StylePreferences         string     `json:"stylePreferences"`
	SuggestedColors          []string   `json:"suggestedColors"`
	DeadlineHours            int        `json:"deadlineHours"`
	Copywriting              []string   `json:"copywriting"`
	ContactDetails           []string   `json:"contactDetails"`
	VisualReferences         []string   `json:"visualReferences"`
	ProvidedAssetDescription string     `json:"providedAssetDescription"`
	ClientType               ClientType `json:"clientType"`
	// ReferenceImage holds the uploaded base64 image in style-remix mode.
	ReferenceImage string `json:"referenceImage,omitempty"`
}
