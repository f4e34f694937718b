package validation

import (
	"strings"
	"time"

	"github.com/bnema/dumbtop/internal/domain/entity"
)

var layoutProbe = time.Date(2009, time.November, 10, 23, 7, 9, 0, time.UTC)

// ValidateTimeLayout rejects empty layouts and layouts without any time element.
func ValidateTimeLayout(field, layout string) []string {
	if strings.TrimSpace(layout) == "" {
		return []string{field + " cannot be empty"}
	}
	if layoutProbe.Format(layout) == layout {
		return []string{field + " must be a Go time layout such as 15:04 or Jan 2"}
	}
	return nil
}

// ValidateAppKinds reports unknown or repeated app kinds.
func ValidateAppKinds(field string, kinds []string) []string {
	var errs []string
	seen := make(map[entity.AppKind]bool, len(kinds))
	for _, raw := range kinds {
		kind, err := entity.ParseAppKind(raw)
		if err != nil {
			errs = append(errs, field+": "+err.Error())
			continue
		}
		if seen[kind] {
			errs = append(errs, field+": duplicate app "+kind.String())
		}
		seen[kind] = true
	}
	return errs
}
