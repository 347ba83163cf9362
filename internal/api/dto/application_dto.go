package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID accepts a positive integer sent either as a JSON number or a numeric string.
type ID int64

func (id *ID) UnmarshalJSON(data []byte) error {
	n, err := parseFlexibleInt(data)
	if err != nil {
		return err
	}
	*id = ID(n)
	return nil
}

// parseFlexibleInt reads a JSON number or numeric string. null and "" read as 0.
func parseFlexibleInt(data []byte) (int64, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return 0, nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, err
		}
		if s == "" {
			return 0, nil
		}
		data = []byte(s)
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", data)
	}
	return n, nil
}

// ApplyRequest payload for POST /api/applications.
type ApplyRequest struct {
	JobID       ID      `json:"jobId" validate:"required"`
	ResumeURL   *string `json:"resume_url" validate:"omitempty,max=2048"`
	CoverLetter *string `json:"cover_letter"`
}
