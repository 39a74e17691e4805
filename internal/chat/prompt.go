package chat

import (
	"fmt"
	"strings"

	"github.com/Yao1yuan/Tastegent/internal/menu"
)

// BuildSystemPrompt serializes the current menu into the fixed agent
// instruction. The dispatcher passes the result to every provider.
func BuildSystemPrompt(items []menu.Item) string {
	var b strings.Builder

	b.WriteString("You are a helpful restaurant agent for Tastegent. ")
	b.WriteString("Answer questions about the menu, recommend dishes, ")
	b.WriteString("and always be polite and concise.\n\n")
	b.WriteString("Current menu:\n")

	if len(items) == 0 {
		b.WriteString("(the menu is currently empty)\n")
		return b.String()
	}

	for _, it := range items {
		fmt.Fprintf(&b, "- %s ($%.2f): %s", it.Name, it.Price, it.Description)
		if len(it.Tags) > 0 {
			fmt.Fprintf(&b, " [%s]", strings.Join(it.Tags, ", "))
		}
		b.WriteString("\n")
	}

	return b.String()
}
