package holiday

import "time"

type Holiday struct {
	ID        string
	Name      string
	Date      time.Time // date only, midnight UTC
	CreatedAt time.Time
}
