package notifications

// Annotate applies a read state to notifications, producing view rows.
// Pure: the inputs are not mutated and identical inputs yield identical
// output.
func Annotate(items []Notification, state ReadState) []View {
	views := make([]View, 0, len(items))
	for _, n := range items {
		views = append(views, View{Notification: n, Read: state.Contains(n.ID)})
	}
	return views
}

// UnreadCount counts notifications not yet acknowledged.
func UnreadCount(items []Notification, state ReadState) int {
	count := 0
	for _, n := range items {
		if !state.Contains(n.ID) {
			count++
		}
	}
	return count
}
