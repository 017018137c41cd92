package paging

import (
	"net/http/httptest"
	"reflect"
	"testing"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name      string
		rows      int
		start     int
		size      int
		wantRows  []int
		wantRange Range
	}{
		{
			name:      "no results",
			rows:      0,
			start:     1,
			size:      10,
			wantRows:  []int{},
			wantRange: Range{Total: 0, PrevStart: 1, NextStart: 1},
		},
		{
			name:      "first page full",
			rows:      25,
			start:     1,
			size:      10,
			wantRows:  seq(10),
			wantRange: Range{Start: 1, End: 10, Total: 25, PrevStart: 1, NextStart: 11, HasNext: true},
		},
		{
			name:      "last page partial",
			rows:      25,
			start:     21,
			size:      10,
			wantRows:  []int{21, 22, 23, 24, 25},
			wantRange: Range{Start: 21, End: 25, Total: 25, PrevStart: 11, NextStart: 26, HasPrev: true},
		},
		{
			name:      "start past the end",
			rows:      5,
			start:     9,
			size:      10,
			wantRows:  []int{},
			wantRange: Range{Total: 5, PrevStart: 1, NextStart: 1, HasPrev: true},
		},
		{
			name:      "zero start is the first row",
			rows:      3,
			start:     0,
			size:      10,
			wantRows:  []int{1, 2, 3},
			wantRange: Range{Start: 1, End: 3, Total: 3, PrevStart: 1, NextStart: 4},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, r := Window(seq(tt.rows), tt.start, tt.size)
			if len(got) != len(tt.wantRows) || (len(got) > 0 && !reflect.DeepEqual(got, tt.wantRows)) {
				t.Errorf("rows = %v, want %v", got, tt.wantRows)
			}
			if r != tt.wantRange {
				t.Errorf("range = %+v, want %+v", r, tt.wantRange)
			}
		})
	}
}

func TestParseStartAndLimit(t *testing.T) {
	tests := []struct {
		target    string
		wantStart int
		wantLimit int
	}{
		{"/x", 1, PageSize},
		{"/x?start=11&limit=10", 11, 10},
		{"/x?start=-4&limit=abc", 1, PageSize},
		{"/x?limit=100000", 1, MaxPageSize},
	}
	for _, tt := range tests {
		r := httptest.NewRequest("GET", tt.target, nil)
		if got := ParseStart(r); got != tt.wantStart {
			t.Errorf("%s: start = %d, want %d", tt.target, got, tt.wantStart)
		}
		if got := ParseLimit(r); got != tt.wantLimit {
			t.Errorf("%s: limit = %d, want %d", tt.target, got, tt.wantLimit)
		}
	}
}
