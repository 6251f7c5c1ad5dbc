package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/mentimath/mentimath/internal/ui/theme"
)

const bannerArt = `
███╗   ███╗███████╗███╗   ██╗████████╗██╗███╗   ███╗ █████╗ ████████╗██╗  ██╗
████╗ ████║██╔════╝████╗  ██║╚══██╔══╝██║████╗ ████║██╔══██╗╚══██╔══╝██║  ██║
██╔████╔██║█████╗  ██╔██╗ ██║   ██║   ██║██╔████╔██║███████║   ██║   ███████║
██║╚██╔╝██║██╔══╝  ██║╚██╗██║   ██║   ██║██║╚██╔╝██║██╔══██║   ██║   ██╔══██║
██║ ╚═╝ ██║███████╗██║ ╚████║   ██║   ██║██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║
╚═╝     ╚═╝╚══════╝╚═╝  ╚═══╝   ╚═╝   ╚═╝╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝`

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 77

const bannerCompact = "M E N T I M A T H"

// RenderBanner returns the banner styled in the primary color, falling back
// to spaced letters when the art would not fit.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
