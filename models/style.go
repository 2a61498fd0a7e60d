package models

// StylePreset is a catalog entry shown by the style picker.
type StylePreset struct {
	Style
	PreviewImage string `json:"previewImage"`
}

type StylesListResponse struct {
	Styles []StylePreset `json:"styles"`
}

var StylePresets = []StylePreset{
	{
		Style:        Style{ID: "business", Name: "商务正装", Description: "专业商务造型"},
		PreviewImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200&h=300&fit=crop&q=80",
	},
	{
		Style:        Style{ID: "casual", Name: "休闲时尚", Description: "轻松日常穿搭"},
		PreviewImage: "https://images.unsplash.com/photo-1552374196-1ab2a1c593e8?w=200&h=300&fit=crop&q=80",
	},
	{
		Style:        Style{ID: "sporty", Name: "运动风格", Description: "活力运动装扮"},
		PreviewImage: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=200&h=300&fit=crop&q=80",
	},
	{
		Style:        Style{ID: "elegant", Name: "优雅晚装", Description: "华丽正式场合"},
		PreviewImage: "https://images.unsplash.com/photo-1566174053879-31528523f8ae?w=200&h=300&fit=crop&q=80",
	},
	{
		Style:        Style{ID: "streetwear", Name: "街头潮流", Description: "前卫街头风格"},
		PreviewImage: "https://images.unsplash.com/photo-1509631179647-0177331693ae?w=200&h=300&fit=crop&q=80",
	},
	{
		Style:        Style{ID: "vintage", Name: "复古经典", Description: "经典复古造型"},
		PreviewImage: "https://images.unsplash.com/photo-1529139574466-a303027c1d8b?w=200&h=300&fit=crop&q=80",
	},
}

// FindStylePreset looks a preset up by id.
func FindStylePreset(id string) (StylePreset, bool) {
	for _, preset := range StylePresets {
		if preset.ID == id {
			return preset, true
		}
	}
	return StylePreset{}, false
}

// ResolveStyle fills name and description from the catalog when the client only sent an id.
// Styles that already carry a name are returned untouched.
func ResolveStyle(style Style) Style {
	if style.Name != "" {
		return style
	}
	preset, ok := FindStylePreset(style.ID)
	if !ok {
		return style
	}
	if style.Description == "" {
		style.Description = preset.Description
	}
	style.Name = preset.Name
	return style
}
