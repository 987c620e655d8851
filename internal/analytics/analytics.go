// Package analytics computes the read-only dashboard views over the store.
package analytics

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/austintylerallen/civicstack/internal/models"
)

// Summary is the dashboard payload.
type Summary struct {
	TotalIssues        int64               `json:"totalIssues"`
	IssuesByStatus     map[string]int64    `json:"issuesByStatus"`
	IssuesByDepartment map[string]int64    `json:"issuesByDepartment"`
	IssuesByPriority   map[string]int64    `json:"issuesByPriority"`
	RecentIssues       []RecentIssue       `json:"recentIssues"`
	AvgResolutionTime  string              `json:"avgResolutionTime"`
	IssueTrend         []TrendBucket       `json:"issueTrend"`
	TotalForms         int64               `json:"totalForms"`
	FormsByType        map[string]int64    `json:"formsByType"`
	FormsByStatus      map[string]int64    `json:"formsByStatus"`
	RecentActivity     []ActivityEntry     `json:"recentActivity"`
	DepartmentSummary  []DepartmentSummary `json:"departmentSummary"`
}

type RecentIssue struct {
	Title      string    `json:"title"`
	Department string    `json:"department"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TrendBucket counts submissions on one calendar day. Days without
// submissions are omitted, not zero-filled.
type TrendBucket struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type ActivityEntry struct {
	Action    string    `json:"action"`
	User      string    `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

type DepartmentSummary struct {
	Department string `json:"department"`
	OpenIssues int64  `json:"openIssues"`
	FormCount  int64  `json:"formCount"`
}

// SweepArchive flips archived on every issue older than one year. Idempotent;
// returns the number of issues newly archived. Called from the issue-list and
// analytics read paths and from the daily scheduler.
func SweepArchive(db *gorm.DB) (int64, error) {
	cutoff := time.Now().AddDate(-1, 0, 0)
	res := db.Model(&models.Issue{}).
		Where("created_at < ? AND archived = ?", cutoff, false).
		Update("archived", true)
	return res.RowsAffected, res.Error
}

// Aggregate computes the full dashboard summary. The archival sweep runs
// first, so every analytics read is also a maintenance pass.
func Aggregate(db *gorm.DB) (*Summary, error) {
	if _, err := SweepArchive(db); err != nil {
		return nil, err
	}

	s := &Summary{}

	live := func() *gorm.DB {
		return db.Model(&models.Issue{}).Where("archived = ?", false)
	}

	if err := live().Count(&s.TotalIssues).Error; err != nil {
		return nil, err
	}

	var err error
	if s.IssuesByStatus, err = groupCount(live(), "status"); err != nil {
		return nil, err
	}
	if s.IssuesByDepartment, err = groupCount(live(), "department"); err != nil {
		return nil, err
	}
	if s.IssuesByPriority, err = groupCount(live(), "priority"); err != nil {
		return nil, err
	}

	var recent []models.Issue
	if err := db.Where("archived = ?", false).
		Order("created_at desc").
		Limit(3).
		Find(&recent).Error; err != nil {
		return nil, err
	}
	for _, issue := range recent {
		s.RecentIssues = append(s.RecentIssues, RecentIssue{
			Title:      issue.Title,
			Department: issue.Department,
			Status:     string(issue.Status),
			CreatedAt:  issue.CreatedAt,
		})
	}

	if s.AvgResolutionTime, err = avgResolutionTime(db); err != nil {
		return nil, err
	}
	if s.IssueTrend, err = issueTrend(db); err != nil {
		return nil, err
	}

	if err := db.Model(&models.FormRequest{}).Count(&s.TotalForms).Error; err != nil {
		return nil, err
	}
	if s.FormsByType, err = groupCount(db.Model(&models.FormRequest{}), "type"); err != nil {
		return nil, err
	}
	if s.FormsByStatus, err = groupCount(db.Model(&models.FormRequest{}), "status"); err != nil {
		return nil, err
	}

	var activity []models.AuditLog
	if err := db.Preload("User").
		Order("created_at desc").
		Limit(5).
		Find(&activity).Error; err != nil {
		return nil, err
	}
	for _, entry := range activity {
		name := ""
		if entry.User != nil {
			name = entry.User.Name
		}
		s.RecentActivity = append(s.RecentActivity, ActivityEntry{
			Action:    entry.Action,
			User:      name,
			CreatedAt: entry.CreatedAt,
		})
	}

	// One row per department in the fixed input order, zero counts included.
	for _, dept := range models.Departments {
		row := DepartmentSummary{Department: dept}
		if err := live().Where("department = ?", dept).Count(&row.OpenIssues).Error; err != nil {
			return nil, err
		}
		if err := db.Model(&models.FormRequest{}).
			Where("department = ?", dept).
			Count(&row.FormCount).Error; err != nil {
			return nil, err
		}
		s.DepartmentSummary = append(s.DepartmentSummary, row)
	}

	return s, nil
}

func groupCount(q *gorm.DB, column string) (map[string]int64, error) {
	var rows []struct {
		Name  string
		Count int64
	}
	if err := q.Select(column + " AS name, count(*) AS count").
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Name] = r.Count
	}
	return out, nil
}

func avgResolutionTime(db *gorm.DB) (string, error) {
	var resolved []models.Issue
	if err := db.Where("archived = ? AND status IN ? AND resolved_at IS NOT NULL",
		false, []string{"Resolved", "Closed"}).
		Find(&resolved).Error; err != nil {
		return "", err
	}
	if len(resolved) == 0 {
		return "N/A", nil
	}

	var total time.Duration
	for _, issue := range resolved {
		total += issue.ResolvedAt.Sub(issue.CreatedAt)
	}
	return FormatResolution(total / time.Duration(len(resolved))), nil
}

// FormatResolution renders a duration as days, hours or minutes: "2.5d",
// "3.2h", "45m".
func FormatResolution(d time.Duration) string {
	days := d.Hours() / 24
	hours := d.Hours()
	minutes := d.Minutes()

	switch {
	case days >= 1:
		return fmt.Sprintf("%.1fd", days)
	case hours >= 1:
		return fmt.Sprintf("%.1fh", hours)
	default:
		return fmt.Sprintf("%.0fm", minutes)
	}
}

func issueTrend(db *gorm.DB) ([]TrendBucket, error) {
	since := time.Now().Add(-14 * 24 * time.Hour)

	var issues []models.Issue
	if err := db.Select("created_at").
		Where("created_at >= ? AND archived = ?", since, false).
		Order("created_at asc").
		Find(&issues).Error; err != nil {
		return nil, err
	}

	// Bucketing happens here rather than in SQL so the date math is the same
	// on every supported database.
	counts := map[string]int64{}
	var order []string
	for _, issue := range issues {
		day := issue.CreatedAt.Format("2006-01-02")
		if _, seen := counts[day]; !seen {
			order = append(order, day)
		}
		counts[day]++
	}

	buckets := make([]TrendBucket, 0, len(order))
	for _, day := range order {
		buckets = append(buckets, TrendBucket{Date: day, Count: counts[day]})
	}
	return buckets, nil
}
