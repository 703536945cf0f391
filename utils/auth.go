package utils

// contains checks if a slice of strings contains an element.
func contains(slice []string, item string) bool {
	for _, a := range slice {
		if a == item {
			return true
		}
	}
	return false
}

// IsModerator reports whether any of the member's roles is on the
// guild's moderator role list.
func IsModerator(memberRoleIDs, moderatorRoleIDs []string) bool {
	for _, roleID := range memberRoleIDs {
		if contains(moderatorRoleIDs, roleID) {
			return true
		}
	}
	return false
}
