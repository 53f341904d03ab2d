package loader

import (
	"strings"

	"genhost/pkg/types"
)

// renderPrompt flattens a conversation into the plain role-prefixed prompt
// used by GGUF chat models without a chat template. Images are passed as
// references since text-only runtimes cannot consume them.
func renderPrompt(turns []types.ChatTurn) string {
	var b strings.Builder
	for _, t := range turns {
		role := strings.TrimSpace(t.Role)
		if role == "" {
			role = "user"
		}
		b.WriteString(strings.ToUpper(role[:1]) + role[1:])
		b.WriteString(": ")
		b.WriteString(strings.Join(t.Text, "\n"))
		for _, img := range t.Images {
			b.WriteString("\n[image: ")
			b.WriteString(img)
			b.WriteString("]")
		}
		b.WriteString("\n")
	}
	b.WriteString("Assistant:")
	return b.String()
}
