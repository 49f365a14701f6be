package content

import "strings"

// SanitizeCode reduces generated "pure code" output to executable lines:
// markdown code fences are dropped, comment-only lines in the common
// syntaxes (#, //, --, /* ... */) are removed, and stray fence markers are
// discarded.
func SanitizeCode(raw string) string {
	var kept []string
	inBlockComment := false

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)

		if inBlockComment {
			if i := strings.Index(trimmed, "*/"); i >= 0 {
				inBlockComment = false
				rest := strings.TrimSpace(trimmed[i+2:])
				if rest != "" {
					kept = append(kept, rest)
				}
			}
			continue
		}

		if strings.HasPrefix(trimmed, "```") {
			continue
		}
		if trimmed == "```" || trimmed == "~~~" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") ||
			strings.HasPrefix(trimmed, "//") ||
			strings.HasPrefix(trimmed, "--") {
			continue
		}
		if strings.HasPrefix(trimmed, "/*") {
			if !strings.Contains(trimmed, "*/") {
				inBlockComment = true
			}
			continue
		}
		if strings.Contains(line, "```") {
			line = strings.ReplaceAll(line, "```", "")
			if strings.TrimSpace(line) == "" {
				continue
			}
		}
		kept = append(kept, line)
	}

	return strings.TrimSpace(strings.Join(kept, "\n"))
}
