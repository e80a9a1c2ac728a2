// internal/app/features/analytics/export.go
package analytics

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/campushq/societyhub/internal/app/system/timeouts"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ServeExport handles GET /analytics/users/export, gated EB/EC by the
// route group's middleware. The CSV carries the same rows as ServeAll,
// one member per line, and is built in full before any byte is written
// so a fetch failure is still a clean 500 JSON error.
func (h *Handler) ServeExport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	all, err := h.fetchAll(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "analytics: export fetch failed", err, "Unable to export member analytics.")
		return
	}

	filename := fmt.Sprintf("member-analytics-%s.csv", uuid.NewString())
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	cw := csv.NewWriter(w)
	header := []string{
		"Name", "Email", "Role", "Points",
		"Total Tasks", "Completed Tasks", "Pending Tasks", "Task Completion Rate", "Task Tier",
		"Total Attendance", "Attended Events", "Attendance Rate", "Attendance Tier",
		"Total Feedbacks", "Feedback Engagement",
	}
	if err := cw.Write(header); err != nil {
		h.Log.Warn("analytics: export write failed", zap.Error(err))
		return
	}
	for _, row := range all {
		a := row.Analytics
		record := []string{
			row.User.Name,
			row.User.Email,
			row.User.Role,
			strconv.FormatInt(row.User.Points, 10),
			strconv.Itoa(a.TotalTasks),
			strconv.Itoa(a.CompletedTasks),
			strconv.Itoa(a.PendingTasks),
			strconv.FormatFloat(a.TaskCompletionRate, 'f', 1, 64),
			a.TaskTier,
			strconv.Itoa(a.TotalAttendance),
			strconv.Itoa(a.AttendedEvents),
			strconv.FormatFloat(a.AttendanceRate, 'f', 1, 64),
			a.AttendanceTier,
			strconv.Itoa(a.TotalFeedbacks),
			a.FeedbackEngagement,
		}
		if err := cw.Write(record); err != nil {
			h.Log.Warn("analytics: export write failed", zap.Error(err))
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.Log.Warn("analytics: export flush failed", zap.Error(err))
	}
}
