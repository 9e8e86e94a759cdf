package catalog

// Activity records a single completed item. Entries are never mutated after
// creation; ContentTitle is a snapshot of the item title at completion time,
// not a reference, so deleting the source item later leaves the log intact.
type Activity struct {
	ID           string    `json:"id"`
	ContentTitle string    `json:"contentTitle"`
	Action       Action    `json:"action"`
	Timestamp    Timestamp `json:"timestamp"`
}
