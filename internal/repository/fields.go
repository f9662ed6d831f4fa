package repository

import "errors"

// ErrNoUpdatableFields is returned when an update carries no field the
// entity allows to change.
var ErrNoUpdatableFields = errors.New("no valid fields to update")

func filterFields(fields map[string]interface{}, allowed map[string]struct{}) map[string]interface{} {
	updates := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if _, ok := allowed[k]; ok {
			updates[k] = v
		}
	}
	return updates
}
