package models

// DesignCategory identifies one of the design challenge types.
type DesignCategory string

const (
	CategoryLogo          DesignCategory = "logo"
	CategoryBrandIdentity DesignCategory = "brand-identity"
	CategoryUIUX          DesignCategory = "uiux"
	CategorySocialMedia   DesignCategory = "social-media"
	CategoryPackaging     DesignCategory = "packaging"
	CategoryIllustration  DesignCategory = "illustration"
	CategoryAdvertising   DesignCategory = "advertising"
	CategoryYouTube       DesignCategory = "youtube"
	CategoryEducation     DesignCategory = "education"
	CategoryFootball      DesignCategory = "football"
	CategoryCollage       DesignCategory = "collage"
	CategoryRemix         DesignCategory = "remix"
)

var categoryLabels = map[DesignCategory]string{
	CategoryLogo:          "تصميم شعار",
	CategoryBrandIdentity: "هوية بصرية",
	CategoryUIUX:          "واجهة وتجربة مستخدم",
	CategorySocialMedia:   "سوشيال ميديا",
	CategoryPackaging:     "عبوات وتغليف",
	CategoryIllustration:  "رسم رقمي",
	CategoryAdvertising:   "حملة إعلانية",
	CategoryYouTube:       "صورة مصغرة يوتيوب",
	CategoryEducation:     "دعاية تعليمية/مدرسين",
	CategoryFootball:      "تصاميم كرة قدم",
	CategoryCollage:       "فن الكولاج",
	CategoryRemix:         "محاكاة ستايل (Remix)",
}

// Label returns the Arabic display name used in prompts and UI.
func (c DesignCategory) Label() string {
	return categoryLabels[c]
}

// Valid reports whether c is a known category.
func (c DesignCategory) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// IsRemix reports whether the category takes the style-remix wizard path.
func (c DesignCategory) IsRemix() bool {
	return c == CategoryRemix
}

var generalIndustries = []string{
	"مطاعم وكافيهات",
	"تكنولوجيا وبرمجة",
	"عقارات وهندسة",
	"أزياء وموضة",
	"صحة ورياضة",
	"مستحضرات تجميل",
	"سياحة وسفر",
	"خدمات مالية",
	"متجر إلكتروني (E-commerce)",
}

var educationIndustries = []string{
	"دروس تقوية (رياضيات/علوم)",
	"تعليم لغات (إنجليزي/ألماني)",
	"تحفيظ قرآن كريم",
	"تأسيس أطفال (Kindergarten)",
	"دورات برمجة وجرافيك",
	"مدرب لياقة بدنية (Personal Trainer)",
	"تعليم موسيقى ورسم",
	"منصات تعليمية أونلاين",
}

var youtubeIndustries = []string{
	"Gaming (ألعاب فيديو)",
	"Vlog (يوميات وسفر)",
	"مراجعات تقنية (Tech Review)",
	"قصص ووثائقيات",
	"طبخ ووصفات",
	"بودكاست ومقابلات",
	"تحليل رياضي وكروي",
	"محتوى تعليمي وتثقيفي",
}

var footballIndustries = []string{
	"يوم المباراة (Match Day)",
	"بوستر لاعب (Player Poster)",
	"تشكيل الفريق (Lineup)",
	"أخبار الانتقالات (Transfer Market)",
	"إحصائيات وتحليل",
	"خلفيات موبايل (Wallpapers)",
	"بطولة/دوري (Tournament Branding)",
}

var collageIndustries = []string{
	"اقتباسات تحفيزية (Motivational)",
	"أحاديث نبوية وآيات",
	"شعر وأدب",
	"تاريخ وحروب",
	"سريالي (Surreal Art)",
	"مجلة قديمة (Vintage Style)",
	"بوسترات أفلام فنية",
}

// Catalog resolves the industry list offered for a category. It is built once
// at startup and injected into the controller instead of being read from
// package-level state.
type Catalog struct {
	byCategory map[DesignCategory][]string
	fallback   []string
}

// NewCatalog builds the default catalog shipped with the app.
func NewCatalog() *Catalog {
	return &Catalog{
		byCategory: map[DesignCategory][]string{
			CategoryEducation: educationIndustries,
			CategoryYouTube:   youtubeIndustries,
			CategoryFootball:  footballIndustries,
			CategoryCollage:   collageIndustries,
		},
		fallback: generalIndustries,
	}
}

// IndustriesFor returns the industry choices for a category.
func (c *Catalog) IndustriesFor(category DesignCategory) []string {
	if list, ok := c.byCategory[category]; ok {
		return list
	}
	return c.fallback
}

// Categories returns every selectable category in display order.
func (c *Catalog) Categories() []DesignCategory {
	return []DesignCategory{
		CategoryLogo,
		CategoryBrandIdentity,
		CategoryUIUX,
		CategorySocialMedia,
		CategoryPackaging,
		CategoryIllustration,
		CategoryAdvertising,
		CategoryYouTube,
		CategoryEducation,
		CategoryFootball,
		CategoryCollage,
		CategoryRemix,
	}
}
