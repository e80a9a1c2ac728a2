// internal/domain/analytics/leaderboard.go
package analytics

import (
	"sort"

	"github.com/campushq/societyhub/internal/domain/models"
)

// LeaderboardEntry is one ranked row of the points leaderboard.
type LeaderboardEntry struct {
	User     models.User `json:"user"`
	Rank     int         `json:"rank"`
	Points   int64       `json:"points"`
	TopThree bool        `json:"top_three"`
}

// ComputeLeaderboard ranks users by points descending. Ties keep the input
// order (stable sort), so the store's natural order is the tie-break.
// Ranks are 1-based; ranks 1-3 are flagged for distinct presentation.
// Pure function over the snapshot: recompute on every change notification.
func ComputeLeaderboard(users []models.User) []LeaderboardEntry {
	sorted := make([]models.User, len(users))
	copy(sorted, users)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Points > sorted[j].Points
	})

	entries := make([]LeaderboardEntry, len(sorted))
	for i, u := range sorted {
		rank := i + 1
		entries[i] = LeaderboardEntry{
			User:     u,
			Rank:     rank,
			Points:   u.Points,
			TopThree: rank <= 3,
		}
	}
	return entries
}
