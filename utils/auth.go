package utils

import (
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/Faithful-Resource-Pack/Submission-Bot/config"
)

// CheckAuth reports whether a user counts as an administrator: either a
// configured developer or a holder of a configured admin role.
func CheckAuth(userID string, roles []string) bool {
	authConfig := config.Cfg.Auth

	if slices.Contains(authConfig.Developers, userID) {
		return true
	}

	for _, role := range roles {
		if slices.Contains(authConfig.AdminRoles, role) {
			return true
		}
	}

	return false
}

// HasReviewCapability reports whether a member may take council-level actions
// (instapass, invalidate). Administrators always qualify; otherwise one of the
// member's roles must carry the council keyword in its name.
func HasReviewCapability(s *discordgo.Session, guildID string, member *discordgo.Member) bool {
	if member == nil {
		return false
	}
	if CheckAuth(member.User.ID, member.Roles) {
		return true
	}

	keyword := strings.ToLower(config.Cfg.Auth.CouncilRoleKeyword)
	if keyword == "" {
		return false
	}

	for _, roleID := range member.Roles {
		role, err := s.State.Role(guildID, roleID)
		if err != nil || role == nil {
			continue
		}
		if strings.Contains(strings.ToLower(role.Name), keyword) {
			return true
		}
	}

	return false
}
