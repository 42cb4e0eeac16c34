package mongo

const (
	store       = "transcription"
	statusTable = "status"
	resultTable = "result"
)

var indexData = []IndexData{
	newIndexData(statusTable, "ID", true),
	newIndexData(resultTable, "ID", true)}
