package domain

// Session is the serialized form of the local auth state. It is the
// contract between the session store and its file on disk: either all
// fields are populated or none are.
type Session struct {
	User            *Admin `json:"user"`
	Token           string `json:"token"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}
