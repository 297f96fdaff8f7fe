// Package report renders a user's CE records and status for export. It only
// consumes data produced by the CE service; it never talks to storage.
package report

import "github.com/dmorgachev/ce-tracker/internal/domain"

// Row is one record prepared for export, with the course id resolved to its
// display title.
type Row struct {
	CourseTitle   string
	DateCompleted string
	Hours         int
	Notes         string
}

const dateLayout = "2006-01-02"

// BuildRows pairs records with course titles. A record whose course is
// missing from the reference list keeps its raw id so the row is never
// silently dropped.
func BuildRows(records []domain.CERecord, courses []domain.Course) []Row {
	titles := make(map[string]string, len(courses))
	for _, c := range courses {
		titles[c.ID] = c.Title
	}

	rows := make([]Row, 0, len(records))
	for _, r := range records {
		title, ok := titles[r.CourseID]
		if !ok {
			title = r.CourseID
		}

		notes := ""
		if r.Notes != nil {
			notes = *r.Notes
		}

		rows = append(rows, Row{
			CourseTitle:   title,
			DateCompleted: r.DateCompleted.Format(dateLayout),
			Hours:         r.HoursEarned,
			Notes:         notes,
		})
	}
	return rows
}
