package service

import (
	"time"

	"github.com/suteetoe/jobboard/internal/apperror"
	"gorm.io/datatypes"
)

// MsgInvalidDate is returned for a date in none of the accepted layouts
const MsgInvalidDate = "Invalid date, expected YYYY-MM-DD"

var dateLayouts = []string{"2006-01-02", "2006-01", time.RFC3339}

// ParseDate reads a calendar date written as 2006-01-02, 2006-01 (first of the
// month) or an RFC 3339 timestamp
func ParseDate(s string) (datatypes.Date, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)), nil
		}
	}
	return datatypes.Date{}, apperror.NewValidation(MsgInvalidDate)
}

// parseOptionalDate treats nil and "" as no date
func parseOptionalDate(s *string) (*datatypes.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
