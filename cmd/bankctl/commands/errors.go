package commands

import (
	"fmt"
	"sort"
	"strings"

	apperrors "bankagent/internal/errors"
)

// describe expands a domain error with its field messages.
func describe(err error) error {
	de, ok := apperrors.AsDomain(err)
	if !ok || len(de.Fields) == 0 {
		return err
	}

	fields := make([]string, 0, len(de.Fields))
	for f := range de.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString(de.Message)
	for _, f := range fields {
		fmt.Fprintf(&b, "\n  %s: %s", f, de.Fields[f])
	}
	return fmt.Errorf("%s", b.String())
}
