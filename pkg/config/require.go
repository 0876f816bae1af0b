package config

import (
	"fmt"
	"strings"
)

// Required collects the names of required variables that came back empty.
type Required struct {
	missing []string
}

func (r *Required) String(value, envName string) string {
	if value == "" {
		r.missing = append(r.missing, envName)
	}
	return value
}

func (r *Required) Err() error {
	if len(r.missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required env %s", strings.Join(r.missing, ", "))
}
