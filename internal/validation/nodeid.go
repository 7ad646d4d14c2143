package validation

import (
	"fmt"
	"regexp"
)

// NodeIDPattern определяет допустимый формат идентификатора реплики.
// Латинские буквы, цифры, дефис и нижнее подчеркивание, длина 1-64 символа.
// Под формат попадают как UUID устройств, так и человекочитаемые имена узлов.
var NodeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// MaxNodeIDLen максимальная длина идентификатора реплики
const MaxNodeIDLen = 64

// ValidateNodeID проверяет, что идентификатор реплики соответствует формату.
func ValidateNodeID(nodeID string) error {
	if nodeID == "" {
		return fmt.Errorf("node id cannot be empty")
	}

	if len(nodeID) > MaxNodeIDLen {
		return fmt.Errorf("node id must not exceed %d characters", MaxNodeIDLen)
	}

	if !NodeIDPattern.MatchString(nodeID) {
		return fmt.Errorf("node id can only contain letters (a-z, A-Z), numbers (0-9), hyphens (-), and underscores (_)")
	}

	return nil
}
