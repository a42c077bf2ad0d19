package portfolio

// TemplateID names one of the fixed visual styles.
type TemplateID string

const (
	TemplateMinimal      TemplateID = "minimal"
	TemplateCreative     TemplateID = "creative"
	TemplateProfessional TemplateID = "professional"
	TemplateDeveloper    TemplateID = "developer"
	TemplateModern       TemplateID = "modern"
	TemplateAcademic     TemplateID = "academic"
)

// DefaultTemplate is used whenever a template id is unknown.
const DefaultTemplate = TemplateMinimal

// Theme is the parameter set a template contributes to the stylesheet.
type Theme struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	FontFamily     string `json:"font_family"`
	BorderRadius   string `json:"border_radius"`
}

// Template is a catalog entry as shown in a template gallery.
type Template struct {
	ID          TemplateID `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Thumbnail   string     `json:"thumbnail"`
	Theme       Theme      `json:"theme"`
}

// ResolveTheme returns the theme for a template id. It never fails: ids
// outside the catalog resolve to the minimal theme.
func ResolveTheme(id string) Theme {
	switch TemplateID(id) {
	case TemplateCreative:
		return Theme{"#EC4899", "#BE185D", "'Poppins', sans-serif", "12px"}
	case TemplateProfessional:
		return Theme{"#1F2937", "#111827", "'Source Sans Pro', sans-serif", "6px"}
	case TemplateDeveloper:
		return Theme{"#10B981", "#059669", "'JetBrains Mono', monospace", "8px"}
	case TemplateModern:
		return Theme{"#8B5CF6", "#6D28D9", "'DM Sans', sans-serif", "16px"}
	case TemplateAcademic:
		return Theme{"#4B5563", "#374151", "'Merriweather', serif", "4px"}
	default:
		return Theme{"#3B82F6", "#1E40AF", "'Inter', sans-serif", "4px"}
	}
}

// ParseTemplateID reports whether s names a catalog template. Unlike
// ResolveTheme it does not fall back.
func ParseTemplateID(s string) (TemplateID, bool) {
	for _, t := range catalog {
		if string(t.ID) == s {
			return t.ID, true
		}
	}
	return "", false
}

// TemplateIDs returns every catalog id in gallery order.
func TemplateIDs() []TemplateID {
	ids := make([]TemplateID, len(catalog))
	for i, t := range catalog {
		ids[i] = t.ID
	}
	return ids
}

// Catalog returns the template gallery in display order.
func Catalog() []Template {
	out := make([]Template, len(catalog))
	for i, t := range catalog {
		t.Theme = ResolveTheme(string(t.ID))
		out[i] = t
	}
	return out
}

var catalog = []Template{
	{
		ID:          TemplateMinimal,
		Name:        "Minimal",
		Description: "Clean, minimalist design with a focus on content and readability.",
		Thumbnail:   "https://images.pexels.com/photos/196644/pexels-photo-196644.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
	{
		ID:          TemplateCreative,
		Name:        "Creative",
		Description: "Bold, artistic layout ideal for designers and creative professionals.",
		Thumbnail:   "https://images.pexels.com/photos/1779487/pexels-photo-1779487.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
	{
		ID:          TemplateProfessional,
		Name:        "Professional",
		Description: "Classic, business-oriented design perfect for corporate roles.",
		Thumbnail:   "https://images.pexels.com/photos/326501/pexels-photo-326501.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
	{
		ID:          TemplateDeveloper,
		Name:        "Developer",
		Description: "Tech-focused layout with code styling and project showcases.",
		Thumbnail:   "https://images.pexels.com/photos/546819/pexels-photo-546819.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
	{
		ID:          TemplateModern,
		Name:        "Modern",
		Description: "Contemporary design with smooth animations and trendy elements.",
		Thumbnail:   "https://images.pexels.com/photos/1092644/pexels-photo-1092644.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
	{
		ID:          TemplateAcademic,
		Name:        "Academic",
		Description: "Structured layout ideal for researchers, professors, and students.",
		Thumbnail:   "https://images.pexels.com/photos/5428002/pexels-photo-5428002.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
	},
}
