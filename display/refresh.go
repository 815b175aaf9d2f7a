package display

// ShouldRefresh implements §4.4 "Concurrency": refreshes are skipped if
// keystrokes are pending (typeahead) and the update isn't forced.
func ShouldRefresh(typeaheadPending bool, forced bool) bool {
	return forced || !typeaheadPending
}

// SearchProgressLine formats the periodic status line a long search or
// replace posts instead of partial redisplay, once its character-scan
// count passes the configured threshold (§4.4 "Concurrency").
func SearchProgressLine(scanned int) string {
	return "Searching..."
}
