package telegram

import "strings"

// ParseChannelIdentifier extracts a chat identifier usable with the Bot API
// from a share link. Private links (t.me/c/<num>/...) become the numeric
// "-100<num>" form, public links become "@handle". The second return value
// is false for unrecognized input.
func ParseChannelIdentifier(link string) (string, bool) {
	link = strings.TrimSpace(link)
	if strings.Contains(link, "t.me/") {
		if strings.Contains(link, "t.me/c/") {
			rest := link[strings.Index(link, "t.me/c/")+len("t.me/c/"):]
			num, _, _ := strings.Cut(rest, "/")
			if !isDigits(num) {
				return "", false
			}
			return "-100" + num, true
		}
		handle := strings.TrimRight(link, "/")
		handle = handle[strings.LastIndex(handle, "/")+1:]
		if handle == "" {
			return "", false
		}
		if strings.HasPrefix(handle, "@") {
			return handle, true
		}
		return "@" + handle, true
	}
	if strings.HasPrefix(link, "@") {
		return link, true
	}
	return "", false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
