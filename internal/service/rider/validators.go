package rider

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidStatus(status string) bool {
	switch status {
	case "available", "busy", "offline":
		return true
	default:
		return false
	}
}

func isValidVehicle(vehicle string) bool {
	switch vehicle {
	case "bicycle", "motorcycle", "car":
		return true
	default:
		return false
	}
}

func isValidCapacity(capacity int) bool {
	return capacity >= 1
}
