package services

import (
	"errors"
	"testing"
)

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "bare array",
			raw:  `[{"name":"rice"}]`,
			want: `[{"name":"rice"}]`,
		},
		{
			name: "json fenced",
			raw:  "```json\n[{\"name\":\"rice\"}]\n```",
			want: `[{"name":"rice"}]`,
		},
		{
			name: "plain fenced",
			raw:  "```\n[1,2]\n```",
			want: `[1,2]`,
		},
		{
			name: "surrounded by prose",
			raw:  "Here is what I found:\n[1,2]\nLet me know if that helps!",
			want: `[1,2]`,
		},
		{
			name: "two arrays merge into one span",
			raw:  `first [1,2] and second [3,4] done`,
			want: `[1,2] and second [3,4]`,
		},
		{
			name:    "no array",
			raw:     "I could not identify any food.",
			wantErr: true,
		},
		{
			name:    "closing bracket before opening",
			raw:     "] nothing here [",
			wantErr: true,
		},
		{
			name:    "empty input",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONArray(tt.raw)
			if tt.wantErr {
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("want ParseError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "fenced object",
			raw:  "```json\n{\"calories\":120}\n```",
			want: `{"calories":120}`,
		},
		{
			name: "object in prose",
			raw:  "The macros are {\"calories\":120} approximately.",
			want: `{"calories":120}`,
		},
		{
			name:    "no object",
			raw:     "sorry, no data",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONObject(tt.raw)
			if tt.wantErr {
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("want ParseError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
