package status

//Status represents client visible job status
type Status int

const (
	//Pending - the job is submitted but not finished yet
	Pending Status = iota + 1
	//Success - the job finished and a transcription is available
	Success
	//Failure - the job finished with an error
	Failure
)

var (
	statusName = map[Status]string{Pending: "pending", Success: "success", Failure: "failure"}
	nameStatus = map[string]Status{"pending": Pending, "success": Success, "failure": Failure}
)

//Name returns string representation of status
func Name(st Status) string {
	return statusName[st]
}

//From parses status from string
func From(st string) Status {
	return nameStatus[st]
}
