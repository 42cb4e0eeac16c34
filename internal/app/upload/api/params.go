package api

const (
	//PrmFile parameter
	PrmFile = "file"
)

const (
	//ProfileEnglish is the default recognition profile
	ProfileEnglish = "english"
	//ProfileGeorgian is the Georgian recognition profile
	ProfileGeorgian = "georgian"
)
