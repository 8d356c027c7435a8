// Package ids generates unique identifiers for stored entities.
package ids

import "github.com/google/uuid"

func New() string {
	return uuid.NewString()
}
