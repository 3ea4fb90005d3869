package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-site/internal/types"
)

// References renders enabled references as mailto links labeled "name (title)"
func (r *Renderer) References(refs []types.Reference) string {
	refs = types.FilterEnabled(refs, func(ref types.Reference) types.Switch { return ref.Enabled })
	if len(refs) == 0 {
		return fmt.Sprintf("<p class='reference-none' style='%s'>%s</p>", noneStyle, NoReferencesMessage)
	}

	var sb strings.Builder
	sb.WriteString("<ul class='reference-list'>")
	for _, ref := range refs {
		fmt.Fprintf(&sb, "<li><a class='reference-link' href='mailto:%s'>%s (%s)</a></li>",
			EscapeHTML(strings.TrimSpace(ref.Email.String())), EscapeHTML(ref.Name.String()), EscapeHTML(ref.Title.String()))
	}
	sb.WriteString("</ul>")
	return sb.String()
}
