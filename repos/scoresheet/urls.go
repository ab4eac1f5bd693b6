package scoresheet

import "strings"

// ValueFromURL extracts the path value following a named segment, e.g.
// ValueFromURL("http://host/api/matches/12/games/3/", "matches") == "12".
// Returns "" when the segment is absent. The API identifies resources by
// URL, so this is how primary keys and usernames are recovered from refs.
func ValueFromURL(rawURL, segment string) string {
	trimmed := strings.TrimSuffix(rawURL, "/")
	parts := strings.Split(trimmed, "/")
	for i, part := range parts {
		if part == segment && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}
