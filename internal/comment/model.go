// Package comment provides the comment record and the FIFO queue that holds them.
package comment

// Comment is a single submitted comment. Fields are taken as given;
// nothing is validated.
type Comment struct {
	ID     int32  `json:"id"`
	Author string `json:"author"`
	Text   string `json:"text"`
}
