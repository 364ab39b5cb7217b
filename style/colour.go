package style

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ParseColour parses an SVG colour name ("steelblue") or a hex colour
// ("#36c", "#3366cc", "#3366cc80"). An empty string yields a nil colour.
func ParseColour(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if s[0] == '#' {
		hex := s[1:]
		switch len(hex) {
		case 3, 4, 6, 8:
		default:
			return nil, fmt.Errorf("style: bad hex colour %q", s)
		}
		for _, r := range hex {
			if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
				return nil, fmt.Errorf("style: bad hex colour %q", s)
			}
		}
		return gg.Hex(hex).Color(), nil
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return nil, fmt.Errorf("style: unknown colour %q", s)
	}
	return c, nil
}
