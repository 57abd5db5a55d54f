package dto

// ImportReport summarizes one roster import run. Warnings carry per-row
// problems; a warning never aborts the batch.
type ImportReport struct {
	BatchID  string   `json:"batch_id"`
	Rows     int      `json:"rows"`
	Created  int      `json:"created"`
	Updated  int      `json:"updated"`
	Warnings []string `json:"warnings,omitempty"`
}

// HoursReport summarizes one hours-award run against a target activity.
type HoursReport struct {
	BatchID  string   `json:"batch_id"`
	Rows     int      `json:"rows"`
	Updated  int      `json:"updated"`
	Skipped  int      `json:"skipped"`
	Warnings []string `json:"warnings,omitempty"`
}
