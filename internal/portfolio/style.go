package portfolio

import "strings"

// RenderStyle builds the stylesheet for a theme. It does not look at profile
// data, so every profile rendered with the same theme shares one stylesheet.
func RenderStyle(t Theme) string {
	return strings.NewReplacer(
		"{{.PrimaryColor}}", t.PrimaryColor,
		"{{.SecondaryColor}}", t.SecondaryColor,
		"{{.FontFamily}}", t.FontFamily,
		"{{.BorderRadius}}", t.BorderRadius,
	).Replace(styleTemplate)
}
