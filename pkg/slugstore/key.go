package slugstore

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// keyString renders a record key for registries that store keys as strings.
func keyString(key any) string {
	switch k := key.(type) {
	case nil:
		return ""
	case string:
		return k
	case []byte:
		return string(k)
	case int:
		return strconv.Itoa(k)
	case int32:
		return strconv.FormatInt(int64(k), 10)
	case int64:
		return strconv.FormatInt(k, 10)
	case uint64:
		return strconv.FormatUint(k, 10)
	case uuid.UUID:
		return k.String()
	case fmt.Stringer:
		return k.String()
	default:
		return fmt.Sprint(k)
	}
}

func validIdentifiers(table, column string) error {
	if table == "" || column == "" {
		return ErrInvalidIdentifier
	}
	return nil
}
