package repositories

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// stringListToJSON marshals a string slice into a jsonb column value.
// A nil slice becomes an empty JSON array, never SQL NULL.
func stringListToJSON(list []string) datatypes.JSON {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}

// jsonToStringList unmarshals a jsonb column into a string slice
func jsonToStringList(data datatypes.JSON) []string {
	if len(data) == 0 {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return []string{}
	}
	return list
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
