package converter

import (
	"safetytips/internal/entity/db"
	"safetytips/internal/entity/dto"
)

// UserToSummary converts a db.User to dto.UserSummary.
func UserToSummary(u *db.User) dto.UserSummary {
	if u == nil {
		return dto.UserSummary{}
	}
	return dto.UserSummary{
		ID:        u.ID,
		Username:  u.Username,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

// UsersToSummaries converts a slice of db.User to dto.UserSummary.
func UsersToSummaries(users []db.User) []dto.UserSummary {
	summaries := make([]dto.UserSummary, len(users))
	for i := range users {
		summaries[i] = UserToSummary(&users[i])
	}
	return summaries
}
