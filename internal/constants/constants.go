package constants

// Session and context keys
const (
	SessionCookieName   = "graphico_session"
	SessionKeyUserEmail = "user_email"
	SessionKeyWizardID  = "wizard_id"
	ContextKeyUserEmail = "user_email"
)

// Defaults applied when a brand-new user registers through the login flow
const (
	DefaultUserName  = "مصمم جرافيكو"
	DefaultUserLevel = "مستوى 1"
	DefaultUserXP    = 0
)

// RandomIndustry is the sentinel an industry picker sends to let the
// generator choose a random creative niche.
const RandomIndustry = "عشوائي"
