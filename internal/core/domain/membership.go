package domain

// ToggleMembership flips the presence of id in set: present, it is removed
// (one occurrence — sets built through this function never hold duplicates);
// absent, it is appended. Toggling twice restores the original membership.
// The same operation backs project likes, article likes, and article saves.
func ToggleMembership(set []string, id string) []string {
	for i, member := range set {
		if member == id {
			return append(set[:i:i], set[i+1:]...)
		}
	}
	return append(set, id)
}

// Contains reports whether id is a member of set.
func Contains(set []string, id string) bool {
	for _, member := range set {
		if member == id {
			return true
		}
	}
	return false
}
