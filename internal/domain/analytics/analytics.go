// Package analytics computes per-member performance summaries and the
// points leaderboard. Every function here is pure: it takes immutable
// snapshots of the relevant collections and returns a computed value,
// so the same code serves page loads, live recomputation, and exports.
package analytics

import (
	"sort"
	"strings"

	"github.com/campushq/societyhub/internal/domain/models"
)

// Performance tier labels derived from rates via fixed threshold bands.
const (
	TierExcellent        = "Excellent"
	TierGood             = "Good"
	TierNeedsImprovement = "Needs Improvement"

	EngagementActive   = "Active"
	EngagementModerate = "Moderate"
	EngagementLow      = "Low"
)

// UserAnalytics is the computed performance summary for one member.
// Rates are percentages in [0,100], defined as 0 when the denominator is 0
// so "no activity" never divides by zero.
type UserAnalytics struct {
	TotalTasks         int     `json:"total_tasks"`
	CompletedTasks     int     `json:"completed_tasks"`
	PendingTasks       int     `json:"pending_tasks"`
	TaskCompletionRate float64 `json:"task_completion_rate"`

	TotalAttendance int     `json:"total_attendance"`
	AttendedEvents  int     `json:"attended_events"`
	AttendanceRate  float64 `json:"attendance_rate"`

	TotalFeedbacks int `json:"total_feedbacks"`

	TaskTier           string `json:"task_tier"`
	AttendanceTier     string `json:"attendance_tier"`
	FeedbackEngagement string `json:"feedback_engagement"`
}

// UserWithAnalytics pairs a member with their computed summary, used by the
// all-members view.
type UserWithAnalytics struct {
	User      models.User   `json:"user"`
	Analytics UserAnalytics `json:"analytics"`
}

// ComputeUserAnalytics joins the task, attendance, and feedback snapshots
// against the user's email (case-insensitive) and computes the summary.
// The input slices may contain records for any number of users; only the
// matching ones count.
func ComputeUserAnalytics(user models.User, tasks []models.Task, attendance []models.Attendance, feedback []models.Feedback) UserAnalytics {
	email := strings.ToLower(user.Email)

	var a UserAnalytics

	for _, t := range tasks {
		if t.AssignedToEmail == "" || strings.ToLower(t.AssignedToEmail) != email {
			continue
		}
		a.TotalTasks++
		if t.Status == models.TaskCompleted {
			a.CompletedTasks++
		}
	}
	a.PendingTasks = a.TotalTasks - a.CompletedTasks
	a.TaskCompletionRate = rate(a.CompletedTasks, a.TotalTasks)

	for _, rec := range attendance {
		if strings.ToLower(rec.UserEmail) != email {
			continue
		}
		a.TotalAttendance++
		if rec.Status == models.AttendancePresent {
			a.AttendedEvents++
		}
	}
	a.AttendanceRate = rate(a.AttendedEvents, a.TotalAttendance)

	for _, f := range feedback {
		if strings.ToLower(f.UserEmail) == email {
			a.TotalFeedbacks++
		}
	}

	a.TaskTier = TaskTier(a.TaskCompletionRate)
	a.AttendanceTier = AttendanceTier(a.AttendanceRate)
	a.FeedbackEngagement = FeedbackEngagement(a.TotalFeedbacks)

	return a
}

// ComputeAllUsersAnalytics applies ComputeUserAnalytics to every user and
// orders the result by organizational role (EB, EC, Core, Member, unknown),
// stable within equal roles. This ordering is deliberately independent of
// the points-based leaderboard ordering.
func ComputeAllUsersAnalytics(users []models.User, tasks []models.Task, attendance []models.Attendance, feedback []models.Feedback) []UserWithAnalytics {
	out := make([]UserWithAnalytics, 0, len(users))
	for _, u := range users {
		out = append(out, UserWithAnalytics{
			User:      u,
			Analytics: ComputeUserAnalytics(u, tasks, attendance, feedback),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return RolePriority(out[i].User.Role) < RolePriority(out[j].User.Role)
	})

	return out
}

// RolePriority returns the fixed ordering weight for a role:
// EB(0) < EC(1) < Core(2) < Member(3) < anything else(4).
func RolePriority(role string) int {
	switch role {
	case models.RoleEB:
		return 0
	case models.RoleEC:
		return 1
	case models.RoleCore:
		return 2
	case models.RoleMember:
		return 3
	}
	return 4
}

// TaskTier maps a task completion rate to its qualitative tier.
// Thresholds are inclusive lower bounds: >=75 Excellent, >=50 Good.
func TaskTier(completionRate float64) string {
	switch {
	case completionRate >= 75:
		return TierExcellent
	case completionRate >= 50:
		return TierGood
	}
	return TierNeedsImprovement
}

// AttendanceTier maps an attendance rate to its qualitative tier.
// Thresholds are inclusive lower bounds: >=80 Excellent, >=60 Good.
func AttendanceTier(attendanceRate float64) string {
	switch {
	case attendanceRate >= 80:
		return TierExcellent
	case attendanceRate >= 60:
		return TierGood
	}
	return TierNeedsImprovement
}

// FeedbackEngagement maps a feedback count to its engagement label:
// >=5 Active, >=3 Moderate, else Low.
func FeedbackEngagement(count int) string {
	switch {
	case count >= 5:
		return EngagementActive
	case count >= 3:
		return EngagementModerate
	}
	return EngagementLow
}

// rate returns qualifying/total as a percentage, 0 when total is 0.
func rate(qualifying, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(qualifying) / float64(total) * 100
}
