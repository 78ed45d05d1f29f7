package entity

import (
	"sort"
	"strings"

	"github.com/akmalhzn/portfolio-api/pkg/apperr"
)

// fieldErrors collects per-field validation problems before any store access.
type fieldErrors map[string]string

func (fe fieldErrors) require(field, value string) {
	if strings.TrimSpace(value) == "" {
		fe[field] = "is required"
	}
}

func (fe fieldErrors) requireList(field string, values []string) {
	if len(values) == 0 {
		fe[field] = "is required"
		return
	}
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			fe[field] = "must not contain empty entries"
			return
		}
	}
}

func (fe fieldErrors) err() error {
	if len(fe) == 0 {
		return nil
	}
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+" "+fe[f])
	}
	return apperr.Validation(strings.Join(parts, "; "))
}

func trim(s string) string { return strings.TrimSpace(s) }

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}
