package models

import (
	"strings"
	"testing"
	"time"
)

func valid() *Performance {
	return &Performance{
		Identifier: "id-1",
		StartVerse: 10,
		EndVerse:   5,
		VerseCount: 6,
		Source:     SourceCLI,
		SungAt:     time.Now(),
	}
}

func TestPerformanceValidate(t *testing.T) {
	tc := []struct {
		name    string
		mutate  func(*Performance)
		wantErr string
	}{
		{name: "valid", mutate: func(p *Performance) {}, wantErr: ""},
		{name: "missing id", mutate: func(p *Performance) { p.Identifier = "" }, wantErr: "missing id"},
		{name: "start out of range", mutate: func(p *Performance) { p.StartVerse = 100 }, wantErr: "out of range"},
		{name: "inverted range", mutate: func(p *Performance) { p.StartVerse = 3; p.EndVerse = 8 }, wantErr: "inverted"},
		{name: "unknown source", mutate: func(p *Performance) { p.Source = "radio" }, wantErr: "unknown performance source"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(p)

			err := p.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected valid performance, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
