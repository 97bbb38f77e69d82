package assignment

import "strings"

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidAssignmentID(id int64) bool {
	return id > 0
}
