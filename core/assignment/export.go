package assignment

import (
	"fmt"
	"time"
)

const assignmentTitle = "Assignment 1: Michigan Historical Analysis"

type (
	Statistics struct {
		TotalConsultations   int      `json:"total_consultations"`
		TotalReflections     int      `json:"total_reflections"`
		CompletedSpecialists []string `json:"completed_specialists"`
	}

	// Document is the downloadable assignment-results artifact.
	Document struct {
		Assignment     string                        `json:"assignment"`
		CompletionDate time.Time                     `json:"completion_date"`
		Consultations  map[string][]ReceivedResponse `json:"consultations"`
		Notes          map[string]string             `json:"notes"`
		Reflections    map[string]string             `json:"reflections"`
		Statistics     Statistics                    `json:"statistics"`
	}
)

// Export serializes the session's progress into the downloadable document.
func Export(prog *Progress, now time.Time) Document {
	doc := Document{
		Assignment:     assignmentTitle,
		CompletionDate: now.UTC(),
		Consultations:  make(map[string][]ReceivedResponse, len(prog.ids)),
		Notes:          make(map[string]string, len(prog.ids)),
		Reflections:    make(map[string]string, len(prog.ids)),
	}
	completed := make([]string, 0, len(prog.ids))
	for _, id := range prog.ids {
		rec := prog.records[id]
		received := make([]ReceivedResponse, len(rec.received))
		copy(received, rec.received)
		doc.Consultations[id] = received
		doc.Notes[id] = rec.notes
		doc.Reflections[id] = rec.essay
		if rec.completed {
			completed = append(completed, id)
		}
	}
	total, _ := prog.Overall()
	doc.Statistics = Statistics{
		TotalConsultations:   total,
		TotalReflections:     len(completed),
		CompletedSpecialists: completed,
	}
	return doc
}

// ExportFilename names the download with the current date.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("michigan_history_assignment1_%s.json", now.Format("20060102"))
}
