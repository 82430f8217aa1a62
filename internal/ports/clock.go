package ports

import "github.com/golang-sql/civil"

// Clock supplies "today" as a calendar date.
type Clock interface {
	Today() civil.Date
}
