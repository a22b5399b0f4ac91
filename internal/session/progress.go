package session

// TableResult tracks answer accuracy for one table within a session.
type TableResult struct {
	TableID   string
	TableName string
	Attempted int
	Correct   int
	Accuracy  float64 // Correct / Attempted (computed)
}

// Record adds a new answer result to the progress.
func (tr *TableResult) Record(correct bool) {
	tr.Attempted++
	if correct {
		tr.Correct++
	}
	if tr.Attempted > 0 {
		tr.Accuracy = float64(tr.Correct) / float64(tr.Attempted)
	}
}
