package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Number is a float64 that unmarshals from either a JSON number or a
// numeric string, so `72` and `"72"` are the same answer.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		var unquoted string
		if err := json.Unmarshal(data, &unquoted); err != nil {
			return err
		}
		s = strings.TrimSpace(unquoted)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*n = Number(f)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(n))
}

// Float64 returns the underlying value.
func (n Number) Float64() float64 {
	return float64(n)
}
